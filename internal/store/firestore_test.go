package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace-bff/internal/marketerrors"
)

// Runs only against the Firestore emulator (e.g. FIRESTORE_EMULATOR_HOST=localhost:8081).
func TestFirestoreStore_Emulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := OpenFirestore(ctx, "marketplace-bff-test")
	require.NoError(t, err)
	defer s.Close()

	created, err := s.Create(ctx, "shops", Document{
		"name":     "Old",
		"metadata": map[string]any{"website": "a.example", "gst": "GST1"},
	})
	require.NoError(t, err)
	id := created["id"].(string)
	require.IsType(t, time.Time{}, created["createdAt"])

	updated, err := s.Update(ctx, "shops", id, map[string]any{
		"name":         "New",
		"metadata.gst": "GST2",
	})
	require.NoError(t, err)
	require.Equal(t, "New", updated["name"])
	require.Equal(t, map[string]any{"website": "a.example", "gst": "GST2"}, updated["metadata"])

	docs, err := s.List(ctx, "shops", Query{Field: "id", Value: id, Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = s.Get(ctx, "shops", "does-not-exist")
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	_, err = s.Update(ctx, "shops", "does-not-exist", map[string]any{"name": "x"})
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
}
