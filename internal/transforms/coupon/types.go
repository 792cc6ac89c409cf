package coupon

import (
	"time"

	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// Type is the discount mechanism.
type Type string

const (
	TypePercentage   Type = "percentage"
	TypeFlat         Type = "flat"
	TypeFreeShipping Type = "free_shipping"
	TypeBOGO         Type = "bogo"
	TypeTiered       Type = "tiered"
)

// Status is the coupon state set by its owner.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// TierBE is one step of a tiered discount.
type TierBE struct {
	MinAmount float64 `json:"minAmount"`
	Discount  float64 `json:"discount"`
}

// CouponBE is the coupon document.
type CouponBE struct {
	ID                    string          `json:"id"`
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	Description           *string         `json:"description"`
	ShopID                *string         `json:"shopId"`
	Type                  Type            `json:"type"`
	DiscountValue         float64         `json:"discountValue"`
	MaxDiscountAmount     *float64        `json:"maxDiscountAmount"`
	MinPurchaseAmount     *float64        `json:"minPurchaseAmount"`
	Tiers                 []TierBE        `json:"tiers"`
	UsageLimit            *int            `json:"usageLimit"`
	UsageCount            int             `json:"usageCount"`
	PerUserLimit          *int            `json:"perUserLimit"`
	ApplicableCategoryIDs []string        `json:"applicableCategoryIds"`
	ApplicableProductIDs  []string        `json:"applicableProductIds"`
	Status                Status          `json:"status"`
	StartDate             timestamp.Time  `json:"startDate"`
	EndDate               timestamp.Time  `json:"endDate"`
	CreatedAt             timestamp.Time  `json:"createdAt"`
	UpdatedAt             *timestamp.Time `json:"updatedAt"`
}

// TierFE is a formatted tier.
type TierFE struct {
	MinAmount          float64 `json:"minAmount"`
	Discount           float64 `json:"discount"`
	FormattedMinAmount string  `json:"formattedMinAmount"`
	Label              string  `json:"label"`
}

// CouponFE is the coupon detail view-model.
type CouponFE struct {
	ID                    string     `json:"id"`
	Code                  string     `json:"code"`
	Name                  string     `json:"name"`
	Description           string     `json:"description"`
	ShopID                string     `json:"shopId"`
	Type                  Type       `json:"type"`
	DiscountValue         float64    `json:"discountValue"`
	MaxDiscountAmount     *float64   `json:"maxDiscountAmount"`
	MinPurchaseAmount     *float64   `json:"minPurchaseAmount"`
	Tiers                 []TierFE   `json:"tiers"`
	UsageLimit            *int       `json:"usageLimit"`
	UsageCount            int        `json:"usageCount"`
	PerUserLimit          *int       `json:"perUserLimit"`
	ApplicableCategoryIDs []string   `json:"applicableCategoryIds"`
	ApplicableProductIDs  []string   `json:"applicableProductIds"`
	Status                Status     `json:"status"`
	StartDate             time.Time  `json:"startDate"`
	EndDate               time.Time  `json:"endDate"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             *time.Time `json:"updatedAt"`

	FormattedDiscount    string `json:"formattedDiscount"`
	FormattedMinPurchase string `json:"formattedMinPurchase"`
	FormattedStartDate   string `json:"formattedStartDate"`
	FormattedEndDate     string `json:"formattedEndDate"`
	ValidityLabel        string `json:"validityLabel"`
	UsageLabel           string `json:"usageLabel"`

	IsExpired       bool         `json:"isExpired"`
	IsUsedUp        bool         `json:"isUsedUp"`
	IsActive        bool         `json:"isActive"`
	CanBeUsed       bool         `json:"canBeUsed"`
	RemainingUses   *int         `json:"remainingUses"`
	UsagePercentage float64      `json:"usagePercentage"`
	StatusBadge     shared.Badge `json:"statusBadge"`
}

// CouponCardFE is the coupon list row.
type CouponCardFE struct {
	ID                string       `json:"id"`
	Code              string       `json:"code"`
	Name              string       `json:"name"`
	Type              Type         `json:"type"`
	FormattedDiscount string       `json:"formattedDiscount"`
	FormattedEndDate  string       `json:"formattedEndDate"`
	UsageLabel        string       `json:"usageLabel"`
	CanBeUsed         bool         `json:"canBeUsed"`
	StatusBadge       shared.Badge `json:"statusBadge"`
}

// CouponFormFE is the create form.
type CouponFormFE struct {
	Code                  string         `json:"code"`
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	ShopID                string         `json:"shopId"`
	Type                  Type           `json:"type"`
	DiscountValue         float64        `json:"discountValue"`
	MaxDiscountAmount     *float64       `json:"maxDiscountAmount"`
	MinPurchaseAmount     *float64       `json:"minPurchaseAmount"`
	Tiers                 []TierBE       `json:"tiers"`
	UsageLimit            *int           `json:"usageLimit"`
	PerUserLimit          *int           `json:"perUserLimit"`
	ApplicableCategoryIDs []string       `json:"applicableCategoryIds"`
	ApplicableProductIDs  []string       `json:"applicableProductIds"`
	StartDate             timestamp.Time `json:"startDate"`
	EndDate               timestamp.Time `json:"endDate"`
}

// CreateCouponRequestBE is the creation payload.
type CreateCouponRequestBE struct {
	Code                  string   `json:"code"`
	Name                  string   `json:"name"`
	Description           *string  `json:"description,omitempty"`
	ShopID                *string  `json:"shopId,omitempty"`
	Type                  Type     `json:"type"`
	DiscountValue         float64  `json:"discountValue"`
	MaxDiscountAmount     *float64 `json:"maxDiscountAmount,omitempty"`
	MinPurchaseAmount     *float64 `json:"minPurchaseAmount,omitempty"`
	Tiers                 []TierBE `json:"tiers,omitempty"`
	UsageLimit            *int     `json:"usageLimit,omitempty"`
	PerUserLimit          *int     `json:"perUserLimit,omitempty"`
	ApplicableCategoryIDs []string `json:"applicableCategoryIds"`
	ApplicableProductIDs  []string `json:"applicableProductIds"`
	StartDate             string   `json:"startDate"`
	EndDate               string   `json:"endDate"`
}

// CouponUpdateFormFE is the partial edit form.
type CouponUpdateFormFE struct {
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	DiscountValue     *float64        `json:"discountValue"`
	MaxDiscountAmount *float64        `json:"maxDiscountAmount"`
	MinPurchaseAmount *float64        `json:"minPurchaseAmount"`
	Tiers             *[]TierBE       `json:"tiers"`
	UsageLimit        *int            `json:"usageLimit"`
	PerUserLimit      *int            `json:"perUserLimit"`
	Status            *Status         `json:"status"`
	StartDate         *timestamp.Time `json:"startDate"`
	EndDate           *timestamp.Time `json:"endDate"`
}
