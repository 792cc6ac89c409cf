// Package store holds the backend documents the view layer reads and writes.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Document is one backend record as the store returns it.
type Document map[string]any

// Query narrows a List call. A zero Query lists the whole collection.
type Query struct {
	Field string
	Value any
	Limit int
}

// DocumentStore defines the document storage interface for the marketplace.
// Update patch keys are field paths: "metadata.gst" addresses the gst entry
// of the metadata map. Each value replaces whatever is at its path, and a
// missing document is ErrNotFound.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, q Query) ([]Document, error)
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error)
}

// Decode fills out from doc through its JSON tags, so timestamp and
// optional-field decoding stays with the entity types.
func Decode(doc Document, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// Encode turns a request struct into a Document.
func Encode(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}
