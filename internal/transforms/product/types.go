package product

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Status is the listing state.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPublished  Status = "published"
	StatusArchived   Status = "archived"
	StatusOutOfStock Status = "out_of_stock"
)

// Condition is the item condition.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// DimensionsBE is the parcel size in centimetres.
type DimensionsBE struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ProductBE is the product document.
type ProductBE struct {
	ID                string          `json:"id"`
	ShopID            string          `json:"shopId"`
	SellerID          string          `json:"sellerId"`
	CategoryID        string          `json:"categoryId"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	Description       string          `json:"description"`
	SKU               *string         `json:"sku"`
	Brand             *string         `json:"brand"`
	Price             float64         `json:"price"`
	CompareAtPrice    *float64        `json:"compareAtPrice"`
	StockCount        int             `json:"stockCount"`
	LowStockThreshold *int            `json:"lowStockThreshold"`
	Weight            *float64        `json:"weight"`
	Dimensions        *DimensionsBE   `json:"dimensions"`
	Images            []string        `json:"images"`
	Tags              []string        `json:"tags"`
	Condition         Condition       `json:"condition"`
	Status            Status          `json:"status"`
	Featured          bool            `json:"featured"`
	Rating            *float64        `json:"rating"`
	ReviewCount       int             `json:"reviewCount"`
	ViewCount         int             `json:"viewCount"`
	SalesCount        int             `json:"salesCount"`
	CreatedAt         timestamp.Time  `json:"createdAt"`
	UpdatedAt         timestamp.Time  `json:"updatedAt"`
	PublishedAt       *timestamp.Time `json:"publishedAt"`
}

// ProductFE is the product detail view-model.
type ProductFE struct {
	ID                string        `json:"id"`
	ShopID            string        `json:"shopId"`
	SellerID          string        `json:"sellerId"`
	CategoryID        string        `json:"categoryId"`
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	Description       string        `json:"description"`
	SKU               string        `json:"sku"`
	Brand             string        `json:"brand"`
	Price             float64       `json:"price"`
	CompareAtPrice    *float64      `json:"compareAtPrice"`
	StockCount        int           `json:"stockCount"`
	LowStockThreshold int           `json:"lowStockThreshold"`
	Weight            *float64      `json:"weight"`
	Dimensions        *DimensionsBE `json:"dimensions"`
	Images            []string      `json:"images"`
	PrimaryImage      string        `json:"primaryImage"`
	Tags              []string      `json:"tags"`
	Condition         Condition     `json:"condition"`
	Status            Status        `json:"status"`
	Featured          bool          `json:"featured"`
	Rating            float64       `json:"rating"`
	ReviewCount       int           `json:"reviewCount"`
	ViewCount         int           `json:"viewCount"`
	SalesCount        int           `json:"salesCount"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	PublishedAt       *time.Time    `json:"publishedAt"`

	FormattedPrice          string `json:"formattedPrice"`
	FormattedCompareAtPrice string `json:"formattedCompareAtPrice"`
	FormattedCreatedAt      string `json:"formattedCreatedAt"`
	RatingDisplay           string `json:"ratingDisplay"`
	StockLabel              string `json:"stockLabel"`

	DiscountPercentage int      `json:"discountPercentage"`
	HasDiscount        bool     `json:"hasDiscount"`
	IsOutOfStock       bool     `json:"isOutOfStock"`
	IsLowStock         bool     `json:"isLowStock"`
	IsPublished        bool     `json:"isPublished"`
	IsNew              bool     `json:"isNew"`
	IsYourProduct      bool     `json:"isYourProduct"`
	Badges             []string `json:"badges"`
}

// ProductCardFE is the grid card.
type ProductCardFE struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Slug                    string   `json:"slug"`
	Image                   string   `json:"image"`
	ShopID                  string   `json:"shopId"`
	Price                   float64  `json:"price"`
	FormattedPrice          string   `json:"formattedPrice"`
	FormattedCompareAtPrice string   `json:"formattedCompareAtPrice"`
	DiscountPercentage      int      `json:"discountPercentage"`
	Rating                  float64  `json:"rating"`
	RatingDisplay           string   `json:"ratingDisplay"`
	IsOutOfStock            bool     `json:"isOutOfStock"`
	Badges                  []string `json:"badges"`
}

// ProductFormFE is the create form.
type ProductFormFE struct {
	ShopID            string        `json:"shopId"`
	CategoryID        string        `json:"categoryId"`
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	Description       string        `json:"description"`
	SKU               string        `json:"sku"`
	Brand             string        `json:"brand"`
	Price             float64       `json:"price"`
	CompareAtPrice    *float64      `json:"compareAtPrice"`
	StockCount        int           `json:"stockCount"`
	LowStockThreshold *int          `json:"lowStockThreshold"`
	Weight            *float64      `json:"weight"`
	Dimensions        *DimensionsBE `json:"dimensions"`
	Images            []string      `json:"images"`
	Tags              []string      `json:"tags"`
	Condition         Condition     `json:"condition"`
	Featured          bool          `json:"featured"`
}

// CreateProductRequestBE is the creation payload.
type CreateProductRequestBE struct {
	ShopID            string        `json:"shopId"`
	CategoryID        string        `json:"categoryId"`
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	Description       string        `json:"description"`
	SKU               *string       `json:"sku,omitempty"`
	Brand             *string       `json:"brand,omitempty"`
	Price             float64       `json:"price"`
	CompareAtPrice    *float64      `json:"compareAtPrice,omitempty"`
	StockCount        int           `json:"stockCount"`
	LowStockThreshold *int          `json:"lowStockThreshold,omitempty"`
	Weight            *float64      `json:"weight,omitempty"`
	Dimensions        *DimensionsBE `json:"dimensions,omitempty"`
	Images            []string      `json:"images"`
	Tags              []string      `json:"tags"`
	Condition         Condition     `json:"condition"`
	Featured          bool          `json:"featured"`
}

// ProductUpdateFormFE is the partial edit form.
type ProductUpdateFormFE struct {
	Name              *string       `json:"name"`
	Slug              *string       `json:"slug"`
	Description       *string       `json:"description"`
	CategoryID        *string       `json:"categoryId"`
	SKU               *string       `json:"sku"`
	Brand             *string       `json:"brand"`
	Price             *float64      `json:"price"`
	CompareAtPrice    *float64      `json:"compareAtPrice"`
	StockCount        *int          `json:"stockCount"`
	LowStockThreshold *int          `json:"lowStockThreshold"`
	Images            *[]string     `json:"images"`
	Tags              *[]string     `json:"tags"`
	Condition         *Condition    `json:"condition"`
	Status            *Status       `json:"status"`
	Featured          *bool         `json:"featured"`
	Dimensions        *DimensionsBE `json:"dimensions"`
}
