package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/utils"
)

// MemoryStore is a concurrency-safe in-memory implementation of DocumentStore
type MemoryStore struct {
	mu    sync.RWMutex
	clock clock.Clock
	docs  map[string]map[string]Document // key: collection -> id -> document
	order map[string][]string            // key: collection -> ids in insertion order
}

// NewMemoryStore creates a new in-memory store stamping documents with clk
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock: clk,
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
	}
}

// Get returns a copy of the document with the given id
func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, marketerrors.ErrNotFound)
	}
	return copyDocument(doc), nil
}

// List returns the documents of a collection in insertion order
func (s *MemoryStore) List(_ context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		doc := s.docs[collection][id]
		if q.Field != "" && !reflect.DeepEqual(doc[q.Field], q.Value) {
			continue
		}
		out = append(out, copyDocument(doc))
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

// Create stores doc under a new id and stamps createdAt and updatedAt
func (s *MemoryStore) Create(_ context.Context, collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	stored := copyDocument(doc)
	stored["id"] = utils.NewDocumentID()
	stored["createdAt"] = now
	stored["updatedAt"] = now

	s.put(collection, stored)
	return copyDocument(stored), nil
}

// Update writes every patch value at its field path, creating the
// intermediate maps a dotted path needs.
func (s *MemoryStore) Update(_ context.Context, collection, id string, patch map[string]any) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, marketerrors.ErrNotFound)
	}

	for path, v := range patch {
		setPath(doc, strings.Split(path, "."), copyValue(v))
	}
	doc["updatedAt"] = s.clock.Now()
	return copyDocument(doc), nil
}

// Put stores doc as is, keeping its own id. Used for seeding fixtures.
func (s *MemoryStore) Put(collection string, doc Document) error {
	id, _ := doc["id"].(string)
	if id == "" {
		return fmt.Errorf("put %s: document has no id", collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, copyDocument(doc))
	return nil
}

func (s *MemoryStore) put(collection string, doc Document) {
	id := doc["id"].(string)
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]Document)
	}
	if _, exists := s.docs[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.docs[collection][id] = doc
}

func setPath(dst map[string]any, path []string, v any) {
	if len(path) == 1 {
		dst[path[0]] = v
		return
	}
	sub, ok := asMap(dst[path[0]])
	if !ok {
		sub = make(map[string]any)
	}
	setPath(sub, path[1:], v)
	dst[path[0]] = sub
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	}
	return nil, false
}

func copyDocument(doc Document) Document {
	return Document(copyValue(map[string]any(doc)).(map[string]any))
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = copyValue(val)
		}
		return out
	case Document:
		return copyValue(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = copyValue(val)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
