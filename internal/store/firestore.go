package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/utils"
)

// FirestoreStore is a DocumentStore backed by Cloud Firestore. Collections
// map one to one onto Firestore collections.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an open client
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// OpenFirestore dials Firestore for projectID. FIRESTORE_EMULATOR_HOST is
// honoured by the client library.
func OpenFirestore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("open firestore project %s: %w", projectID, err)
	}
	return NewFirestoreStore(client), nil
}

// Close releases the underlying client
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// Get reads one document
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, mapFirestoreError(err))
	}
	return snapshotDocument(snap), nil
}

// List runs q against the collection
func (s *FirestoreStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	query := s.client.Collection(collection).Query
	if q.Field != "" {
		query = query.Where(q.Field, "==", q.Value)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	out := make([]Document, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, mapFirestoreError(err))
		}
		out = append(out, snapshotDocument(snap))
	}
	return out, nil
}

// Create writes doc under a new id with server-assigned createdAt and
// updatedAt, then reads it back so the caller sees the resolved times.
func (s *FirestoreStore) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	id := utils.NewDocumentID()
	data := make(map[string]any, len(doc)+3)
	for k, v := range doc {
		data[k] = v
	}
	data["id"] = id
	data["createdAt"] = firestore.ServerTimestamp
	data["updatedAt"] = firestore.ServerTimestamp

	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Create(ctx, data); err != nil {
		return nil, fmt.Errorf("create %s: %w", collection, mapFirestoreError(err))
	}
	return s.Get(ctx, collection, id)
}

// Update applies patch as Firestore field-path updates. The write fails
// with NotFound when the document does not exist.
func (s *FirestoreStore) Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error) {
	updates := make([]firestore.Update, 0, len(patch)+1)
	for path, v := range patch {
		updates = append(updates, firestore.Update{Path: path, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, mapFirestoreError(err))
	}
	return s.Get(ctx, collection, id)
}

func snapshotDocument(snap *firestore.DocumentSnapshot) Document {
	doc := Document(snap.Data())
	if doc == nil {
		doc = Document{}
	}
	doc["id"] = snap.Ref.ID
	return doc
}

func mapFirestoreError(err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %v", marketerrors.ErrNotFound, err)
	}
	return err
}
