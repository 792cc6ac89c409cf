package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, log.DebugLevel, log.GetLevel())

	require.Error(t, SetLevel("chatty"))
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestInfo_WritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stdout) })

	Info("document created", map[string]any{"resource": "bids", "id": "b1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "document created", entry["msg"])
	require.Equal(t, "bids", entry["resource"])
	require.Equal(t, "info", entry["level"])
}

func TestDebug_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(log.InfoLevel)
	})

	log.SetLevel(log.InfoLevel)
	Debug("documents listed", map[string]any{"collection": "orders"})
	require.Zero(t, buf.Len())

	require.NoError(t, SetLevel("debug"))
	Debug("documents listed", map[string]any{"collection": "orders"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "orders", entry["collection"])
}
