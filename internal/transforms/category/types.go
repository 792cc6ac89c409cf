package category

import (
	"encoding/json"
	"time"

	"marketplace-bff/internal/timestamp"
)

// CategoryBE is the category document in canonical camelCase form.
// Decoding also accepts snake_case keys and a singular parent id.
type CategoryBE struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description"`
	ParentIDs    []string        `json:"parentIds"`
	ProductCount int             `json:"productCount"`
	IsLeaf       bool            `json:"isLeaf"`
	Featured     bool            `json:"featured"`
	SortOrder    int             `json:"sortOrder"`
	Icon         *string         `json:"icon"`
	Image        *string         `json:"image"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    timestamp.Time  `json:"createdAt"`
	UpdatedAt    *timestamp.Time `json:"updatedAt"`
}

// wireCategory holds every key spelling seen from producers.
type wireCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`

	ParentIDs         []string        `json:"parentIds"`
	ParentIDsSnake    []string        `json:"parent_ids"`
	ParentID          *string         `json:"parentId"`
	ParentIDSnake     *string         `json:"parent_id"`
	ProductCount      *int            `json:"productCount"`
	ProductCountSnake *int            `json:"product_count"`
	IsLeaf            *bool           `json:"isLeaf"`
	IsLeafSnake       *bool           `json:"is_leaf"`
	SortOrder         *int            `json:"sortOrder"`
	SortOrderSnake    *int            `json:"sort_order"`
	IsActive          *bool           `json:"isActive"`
	IsActiveSnake     *bool           `json:"is_active"`
	CreatedAt         *timestamp.Time `json:"createdAt"`
	CreatedAtSnake    *timestamp.Time `json:"created_at"`
	UpdatedAt         *timestamp.Time `json:"updatedAt"`
	UpdatedAtSnake    *timestamp.Time `json:"updated_at"`
}

// UnmarshalJSON normalises camelCase and snake_case documents. camelCase
// wins when both spellings are present.
func (c *CategoryBE) UnmarshalJSON(b []byte) error {
	var w wireCategory
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*c = CategoryBE{
		ID:           w.ID,
		Name:         w.Name,
		Slug:         w.Slug,
		Description:  w.Description,
		Icon:         w.Icon,
		Image:        w.Image,
		Featured:     deref(w.Featured),
		ParentIDs:    parents(w),
		ProductCount: deref(first(w.ProductCount, w.ProductCountSnake)),
		IsLeaf:       deref(first(w.IsLeaf, w.IsLeafSnake)),
		SortOrder:    deref(first(w.SortOrder, w.SortOrderSnake)),
		IsActive:     deref(first(w.IsActive, w.IsActiveSnake)),
		UpdatedAt:    first(w.UpdatedAt, w.UpdatedAtSnake),
	}
	if created := first(w.CreatedAt, w.CreatedAtSnake); created != nil {
		c.CreatedAt = *created
	}
	return nil
}

func parents(w wireCategory) []string {
	switch {
	case w.ParentIDs != nil:
		return w.ParentIDs
	case w.ParentIDsSnake != nil:
		return w.ParentIDsSnake
	}
	if id := first(w.ParentID, w.ParentIDSnake); id != nil && *id != "" {
		return []string{*id}
	}
	return nil
}

func first[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// CategoryFE is the category view-model.
type CategoryFE struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       string     `json:"description"`
	ParentIDs         []string   `json:"parentIds"`
	ParentID          string     `json:"parentId"`
	ProductCount      int        `json:"productCount"`
	ProductCountLabel string     `json:"productCountLabel"`
	IsLeaf            bool       `json:"isLeaf"`
	IsRoot            bool       `json:"isRoot"`
	HasProducts       bool       `json:"hasProducts"`
	Featured          bool       `json:"featured"`
	SortOrder         int        `json:"sortOrder"`
	Icon              string     `json:"icon"`
	Image             string     `json:"image"`
	IsActive          bool       `json:"isActive"`
	URL               string     `json:"url"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt"`
	Badges            []string   `json:"badges"`
}

// CategoryCardFE is the navigation tile.
type CategoryCardFE struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Icon              string   `json:"icon"`
	Image             string   `json:"image"`
	ProductCountLabel string   `json:"productCountLabel"`
	URL               string   `json:"url"`
	Badges            []string `json:"badges"`
}

// Node is a category with its nested children.
type Node struct {
	CategoryFE
	Children []Node `json:"children"`
}

// CategoryFormFE is the create form.
type CategoryFormFE struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ParentIDs   []string `json:"parentIds"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
	IsActive    bool     `json:"isActive"`
}

// CreateCategoryRequestBE is the creation payload.
type CreateCategoryRequestBE struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description,omitempty"`
	ParentIDs   []string `json:"parentIds"`
	Icon        *string  `json:"icon,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
	IsActive    bool     `json:"isActive"`
}

// CategoryUpdateFormFE is the partial edit form.
type CategoryUpdateFormFE struct {
	Name        *string   `json:"name"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	ParentIDs   *[]string `json:"parentIds"`
	Icon        *string   `json:"icon"`
	Image       *string   `json:"image"`
	Featured    *bool     `json:"featured"`
	SortOrder   *int      `json:"sortOrder"`
	IsActive    *bool     `json:"isActive"`
}
