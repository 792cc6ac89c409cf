package product

import (
	"fmt"
	"math"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// ToFE builds the product detail view as seen by actingUserID at now.
func ToFE(be ProductBE, now time.Time, actingUserID string) ProductFE {
	st := state{product: be, now: now}
	fe := ProductFE{
		ID:                be.ID,
		ShopID:            be.ShopID,
		SellerID:          be.SellerID,
		CategoryID:        be.CategoryID,
		Name:              be.Name,
		Slug:              be.Slug,
		Description:       be.Description,
		SKU:               shared.Str(be.SKU),
		Brand:             shared.Str(be.Brand),
		Price:             be.Price,
		CompareAtPrice:    be.CompareAtPrice,
		StockCount:        be.StockCount,
		LowStockThreshold: lowStockThreshold(be),
		Weight:            be.Weight,
		Dimensions:        be.Dimensions,
		Images:            shared.Strings(be.Images),
		PrimaryImage:      shared.FirstString(be.Images),
		Tags:              shared.Strings(be.Tags),
		Condition:         be.Condition,
		Status:            be.Status,
		Featured:          be.Featured,
		Rating:            shared.Float(be.Rating),
		ReviewCount:       be.ReviewCount,
		ViewCount:         be.ViewCount,
		SalesCount:        be.SalesCount,
		CreatedAt:         be.CreatedAt.Time,
		UpdatedAt:         be.UpdatedAt.Time,
		PublishedAt:       timestamp.Ptr(be.PublishedAt),

		FormattedPrice:          format.INR(be.Price),
		FormattedCompareAtPrice: formattedCompareAt(be),
		FormattedCreatedAt:      format.Date(be.CreatedAt.Time),
		RatingDisplay:           RatingDisplay(be.Rating, be.ReviewCount),
		StockLabel:              stockLabel(st),

		DiscountPercentage: discountPercentage(be),
		HasDiscount:        hasDiscount(st),
		IsOutOfStock:       isOutOfStock(st),
		IsLowStock:         isLowStock(st),
		IsPublished:        be.Status == StatusPublished,
		IsNew:              isNew(st),
		IsYourProduct:      actingUserID != "" && be.SellerID == actingUserID,
		Badges:             shared.Badges(st, detailBadges),
	}
	return fe
}

// ToCard builds the grid card at now.
func ToCard(be ProductBE, now time.Time) ProductCardFE {
	st := state{product: be, now: now}
	return ProductCardFE{
		ID:                      be.ID,
		Name:                    be.Name,
		Slug:                    be.Slug,
		Image:                   shared.FirstString(be.Images),
		ShopID:                  be.ShopID,
		Price:                   be.Price,
		FormattedPrice:          format.INR(be.Price),
		FormattedCompareAtPrice: formattedCompareAt(be),
		DiscountPercentage:      discountPercentage(be),
		Rating:                  shared.Float(be.Rating),
		RatingDisplay:           RatingDisplay(be.Rating, be.ReviewCount),
		IsOutOfStock:            isOutOfStock(st),
		Badges:                  shared.Badges(st, cardBadges),
	}
}

// ToFEs maps a batch of products.
func ToFEs(in []ProductBE, now time.Time, actingUserID string) []ProductFE {
	return shared.Map(in, func(be ProductBE) ProductFE { return ToFE(be, now, actingUserID) })
}

// ToCards maps a batch of products to cards.
func ToCards(in []ProductBE, now time.Time) []ProductCardFE {
	return shared.Map(in, func(be ProductBE) ProductCardFE { return ToCard(be, now) })
}

// ToBECreateRequest converts the create form. New products start as drafts
// on the backend, so no status is sent.
func ToBECreateRequest(form ProductFormFE) CreateProductRequestBE {
	return CreateProductRequestBE{
		ShopID:            form.ShopID,
		CategoryID:        form.CategoryID,
		Name:              form.Name,
		Slug:              form.Slug,
		Description:       form.Description,
		SKU:               shared.OptString(form.SKU),
		Brand:             shared.OptString(form.Brand),
		Price:             form.Price,
		CompareAtPrice:    form.CompareAtPrice,
		StockCount:        form.StockCount,
		LowStockThreshold: form.LowStockThreshold,
		Weight:            form.Weight,
		Dimensions:        form.Dimensions,
		Images:            shared.Strings(form.Images),
		Tags:              shared.Strings(form.Tags),
		Condition:         form.Condition,
		Featured:          form.Featured,
	}
}

// ToBEUpdateRequest builds a sparse patch.
func ToBEUpdateRequest(form ProductUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "name", form.Name)
	shared.Set(p, "slug", form.Slug)
	shared.Set(p, "description", form.Description)
	shared.Set(p, "categoryId", form.CategoryID)
	shared.Set(p, "sku", form.SKU)
	shared.Set(p, "brand", form.Brand)
	shared.Set(p, "price", form.Price)
	shared.Set(p, "compareAtPrice", form.CompareAtPrice)
	shared.Set(p, "stockCount", form.StockCount)
	shared.Set(p, "lowStockThreshold", form.LowStockThreshold)
	shared.Set(p, "images", form.Images)
	shared.Set(p, "tags", form.Tags)
	shared.Set(p, "condition", form.Condition)
	shared.Set(p, "status", form.Status)
	shared.Set(p, "featured", form.Featured)
	shared.Set(p, "dimensions", form.Dimensions)
	return p
}

// RatingDisplay renders "4.5 (12 reviews)" or "No reviews".
func RatingDisplay(rating *float64, reviews int) string {
	if rating == nil || reviews == 0 {
		return "No reviews"
	}
	return fmt.Sprintf("%.1f (%s)", *rating, format.Plural(reviews, "review", "reviews"))
}

func discountPercentage(be ProductBE) int {
	if be.CompareAtPrice == nil || *be.CompareAtPrice <= be.Price || *be.CompareAtPrice <= 0 {
		return 0
	}
	return int(math.Round((*be.CompareAtPrice - be.Price) / *be.CompareAtPrice * 100))
}

func lowStockThreshold(be ProductBE) int {
	if be.LowStockThreshold == nil {
		return defaultLowStockThreshold
	}
	return *be.LowStockThreshold
}

func formattedCompareAt(be ProductBE) string {
	if discountPercentage(be) == 0 {
		return ""
	}
	return format.INR(*be.CompareAtPrice)
}

func stockLabel(s state) string {
	switch {
	case isOutOfStock(s):
		return "Out of stock"
	case isLowStock(s):
		return fmt.Sprintf("Only %d left", s.product.StockCount)
	default:
		return "In stock"
	}
}
