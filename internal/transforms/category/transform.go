package category

import (
	"sort"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

func isFeatured(c CategoryBE) bool { return c.Featured }

var badges = []shared.BadgeRule[CategoryBE]{
	{Label: "Featured", Applies: isFeatured},
}

// ToFE builds the category view-model.
func ToFE(be CategoryBE) CategoryFE {
	parentID := shared.FirstString(be.ParentIDs)
	return CategoryFE{
		ID:                be.ID,
		Name:              be.Name,
		Slug:              be.Slug,
		Description:       shared.Str(be.Description),
		ParentIDs:         shared.Strings(be.ParentIDs),
		ParentID:          parentID,
		ProductCount:      be.ProductCount,
		ProductCountLabel: productCountLabel(be.ProductCount),
		IsLeaf:            be.IsLeaf,
		IsRoot:            parentID == "",
		HasProducts:       be.ProductCount > 0,
		Featured:          be.Featured,
		SortOrder:         be.SortOrder,
		Icon:              shared.Str(be.Icon),
		Image:             shared.Str(be.Image),
		IsActive:          be.IsActive,
		URL:               URL(be.Slug),
		CreatedAt:         be.CreatedAt.Time,
		UpdatedAt:         timestamp.Ptr(be.UpdatedAt),
		Badges:            shared.Badges(be, badges),
	}
}

// ToCard builds the navigation tile.
func ToCard(be CategoryBE) CategoryCardFE {
	return CategoryCardFE{
		ID:                be.ID,
		Name:              be.Name,
		Slug:              be.Slug,
		Icon:              shared.Str(be.Icon),
		Image:             shared.Str(be.Image),
		ProductCountLabel: productCountLabel(be.ProductCount),
		URL:               URL(be.Slug),
		Badges:            shared.Badges(be, badges),
	}
}

// ToFEs maps a batch of categories.
func ToFEs(in []CategoryBE) []CategoryFE {
	return shared.Map(in, ToFE)
}

// ToCards maps a batch of categories to tiles.
func ToCards(in []CategoryBE) []CategoryCardFE {
	return shared.Map(in, ToCard)
}

// BuildTree nests categories under their first parent. Categories whose
// parent is not in the input are treated as roots. Siblings are ordered
// by sortOrder, then name. Categories caught in a parent cycle are
// appended as extra roots so every input appears exactly once.
func BuildTree(in []CategoryFE) []Node {
	known := make(map[string]bool, len(in))
	for _, c := range in {
		known[c.ID] = true
	}

	children := make(map[string][]CategoryFE)
	var roots []CategoryFE
	for _, c := range in {
		if c.ParentID == "" || !known[c.ParentID] || c.ParentID == c.ID {
			roots = append(roots, c)
			continue
		}
		children[c.ParentID] = append(children[c.ParentID], c)
	}

	visited := make(map[string]bool, len(in))
	var build func(level []CategoryFE) []Node
	build = func(level []CategoryFE) []Node {
		sortSiblings(level)
		nodes := make([]Node, 0, len(level))
		for _, c := range level {
			// Guards against parent cycles in bad data.
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			nodes = append(nodes, Node{CategoryFE: c, Children: build(children[c.ID])})
		}
		return nodes
	}
	forest := build(roots)

	var stranded []CategoryFE
	for _, c := range in {
		if !visited[c.ID] {
			stranded = append(stranded, c)
		}
	}
	sortSiblings(stranded)
	for _, c := range stranded {
		if !visited[c.ID] {
			forest = append(forest, build([]CategoryFE{c})...)
		}
	}
	return forest
}

// ToBECreateRequest converts the create form.
func ToBECreateRequest(form CategoryFormFE) CreateCategoryRequestBE {
	return CreateCategoryRequestBE{
		Name:        form.Name,
		Slug:        form.Slug,
		Description: shared.OptString(form.Description),
		ParentIDs:   shared.Strings(form.ParentIDs),
		Icon:        shared.OptString(form.Icon),
		Image:       shared.OptString(form.Image),
		Featured:    form.Featured,
		SortOrder:   form.SortOrder,
		IsActive:    form.IsActive,
	}
}

// ToBEUpdateRequest builds a sparse patch.
func ToBEUpdateRequest(form CategoryUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "name", form.Name)
	shared.Set(p, "slug", form.Slug)
	shared.Set(p, "description", form.Description)
	shared.Set(p, "parentIds", form.ParentIDs)
	shared.Set(p, "icon", form.Icon)
	shared.Set(p, "image", form.Image)
	shared.Set(p, "featured", form.Featured)
	shared.Set(p, "sortOrder", form.SortOrder)
	shared.Set(p, "isActive", form.IsActive)
	return p
}

// URL is the storefront path of a category.
func URL(slug string) string {
	return "/categories/" + slug
}

func productCountLabel(n int) string {
	if n <= 0 {
		return "No products"
	}
	return format.Plural(n, "product", "products")
}

func sortSiblings(cs []CategoryFE) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].SortOrder != cs[j].SortOrder {
			return cs[i].SortOrder < cs[j].SortOrder
		}
		return cs[i].Name < cs[j].Name
	})
}
