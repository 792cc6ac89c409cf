// Package viewservice serves marketplace documents as UI-ready view-models.
package viewservice

import (
	"context"
	"fmt"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/internal/store"
	"marketplace-bff/internal/transforms/category"
	"marketplace-bff/utils"
)

// DefaultListLimit caps list calls when no limit is configured.
const DefaultListLimit = 50

// Scope carries the caller-specific inputs of one request.
type Scope struct {
	ActingUserID string
	Params       map[string]string
	Limit        int
}

// ViewService defines the read and write operations over marketplace resources
type ViewService struct {
	store     store.DocumentStore
	clock     clock.Clock
	listLimit int
}

// NewViewService creates a new ViewService instance
func NewViewService(s store.DocumentStore, clk clock.Clock, listLimit int) *ViewService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &ViewService{
		store:     s,
		clock:     clk,
		listLimit: listLimit,
	}
}

// Get returns the detail view of one document
func (s *ViewService) Get(ctx context.Context, name, id string, scope Scope) (any, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if res.detail == nil {
		return nil, fmt.Errorf("service: get %s: %w", name, marketerrors.ErrUnsupported)
	}
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty %s id", marketerrors.ErrInvalidPayload, name)
	}

	doc, err := s.store.Get(ctx, res.collection, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get %s %s: %w", name, id, err)
	}

	view, err := res.detail(doc, s.frame(scope))
	if err != nil {
		return nil, fmt.Errorf("service: failed to render %s %s: %w", name, id, err)
	}
	return view, nil
}

// List returns the card views of a collection, narrowed by the first
// recognised filter in scope.Params
func (s *ViewService) List(ctx context.Context, name string, scope Scope) (any, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if res.cards == nil {
		return nil, fmt.Errorf("service: list %s: %w", name, marketerrors.ErrUnsupported)
	}

	q := store.Query{Limit: s.limit(scope.Limit)}
	for _, field := range res.filters {
		if v, ok := scope.Params[field]; ok && v != "" {
			q.Field, q.Value = field, v
			break
		}
	}

	docs, err := s.store.List(ctx, res.collection, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list %s: %w", name, err)
	}
	utils.Debug("documents listed", map[string]any{
		"collection": res.collection,
		"field":      q.Field,
		"limit":      q.Limit,
		"count":      len(docs),
	})

	views, err := res.cards(docs, s.frame(scope))
	if err != nil {
		return nil, fmt.Errorf("service: failed to render %s: %w", name, err)
	}
	return views, nil
}

// Create converts a form body into a backend request, stores it and
// returns the detail view of the stored document
func (s *ViewService) Create(ctx context.Context, name string, body []byte, scope Scope) (any, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if res.create == nil {
		return nil, fmt.Errorf("service: create %s: %w", name, marketerrors.ErrUnsupported)
	}

	doc, err := res.create(body)
	if err != nil {
		return nil, fmt.Errorf("service: invalid %s form: %w", name, err)
	}
	if res.parent != "" {
		parentID := scope.Params[res.parent]
		if parentID == "" {
			return nil, fmt.Errorf("service: %w - missing %s", marketerrors.ErrInvalidPayload, res.parent)
		}
		doc[res.parent] = parentID
	}
	if res.owner != "" && scope.ActingUserID != "" {
		if v, _ := doc[res.owner].(string); v == "" {
			doc[res.owner] = scope.ActingUserID
		}
	}

	stored, err := s.store.Create(ctx, res.collection, doc)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create %s: %w", name, err)
	}
	utils.Info("document created", map[string]any{"resource": name, "id": stored["id"]})

	return s.render(res, name, stored, scope)
}

// Update applies the sparse patch built from a form body and returns the
// detail view of the updated document
func (s *ViewService) Update(ctx context.Context, name, id string, body []byte, scope Scope) (any, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if res.update == nil {
		return nil, fmt.Errorf("service: update %s: %w", name, marketerrors.ErrUnsupported)
	}
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty %s id", marketerrors.ErrInvalidPayload, name)
	}

	patch, err := res.update(body)
	if err != nil {
		return nil, fmt.Errorf("service: invalid %s update: %w", name, err)
	}

	stored, err := s.store.Update(ctx, res.collection, id, patch)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update %s %s: %w", name, id, err)
	}
	utils.Info("document updated", map[string]any{"resource": name, "id": id, "fields": len(patch)})

	return s.render(res, name, stored, scope)
}

// CategoryTree returns every category arranged as a forest
func (s *ViewService) CategoryTree(ctx context.Context) ([]category.Node, error) {
	docs, err := s.store.List(ctx, resources["categories"].collection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}

	flat := make([]category.CategoryFE, 0, len(docs))
	for _, doc := range docs {
		var be category.CategoryBE
		if err := store.Decode(doc, &be); err != nil {
			return nil, fmt.Errorf("service: failed to render category %v: %w", doc["id"], err)
		}
		flat = append(flat, category.ToFE(be))
	}
	return category.BuildTree(flat), nil
}

func (s *ViewService) render(res resource, name string, doc store.Document, scope Scope) (any, error) {
	if res.detail == nil {
		return doc, nil
	}
	view, err := res.detail(doc, s.frame(scope))
	if err != nil {
		return nil, fmt.Errorf("service: failed to render %s: %w", name, err)
	}
	return view, nil
}

func (s *ViewService) frame(scope Scope) frame {
	return frame{now: s.clock.Now(), actingUserID: scope.ActingUserID}
}

func (s *ViewService) limit(requested int) int {
	if requested <= 0 || requested > s.listLimit {
		return s.listLimit
	}
	return requested
}

func lookup(name string) (resource, error) {
	res, ok := resources[name]
	if !ok {
		return resource{}, fmt.Errorf("service: %w - %q", marketerrors.ErrUnknownResource, name)
	}
	return res, nil
}
