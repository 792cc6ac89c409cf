package shop

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Status is the shop lifecycle state. Archived also marks a banned shop.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// Keys of the free-form metadata bag that carry extended shop fields.
const (
	metaWebsite     = "website"
	metaGST         = "gst"
	metaPAN         = "pan"
	metaSocialLinks = "socialLinks"
	metaBankDetails = "bankDetails"
)

// ShopBE is the shop document.
type ShopBE struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"ownerId"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   *string         `json:"description"`
	Logo          *string         `json:"logo"`
	Banner        *string         `json:"banner"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Address       *string         `json:"address"`
	Status        Status          `json:"status"`
	IsVerified    bool            `json:"isVerified"`
	Rating        *float64        `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	TotalProducts int             `json:"totalProducts"`
	TotalSales    float64         `json:"totalSales"`
	Metadata      map[string]any  `json:"metadata"`
	CreatedAt     timestamp.Time  `json:"createdAt"`
	UpdatedAt     *timestamp.Time `json:"updatedAt"`
}

// SocialLinks are the shop's social profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// BankDetails is the payout account.
type BankDetails struct {
	AccountHolderName string `json:"accountHolderName,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty"`
	BankName          string `json:"bankName,omitempty"`
}

// ShopFE is the shop detail view-model.
type ShopFE struct {
	ID            string      `json:"id"`
	OwnerID       string      `json:"ownerId"`
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description"`
	Logo          string      `json:"logo"`
	Banner        string      `json:"banner"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Status        Status      `json:"status"`
	Rating        float64     `json:"rating"`
	ReviewCount   int         `json:"reviewCount"`
	TotalProducts int         `json:"totalProducts"`
	TotalSales    float64     `json:"totalSales"`
	Website       string      `json:"website"`
	GST           string      `json:"gst"`
	PAN           string      `json:"pan"`
	SocialLinks   SocialLinks `json:"socialLinks"`
	BankDetails   BankDetails `json:"bankDetails"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt"`

	URL                 string `json:"url"`
	RatingDisplay       string `json:"ratingDisplay"`
	ProductCountLabel   string `json:"productCountLabel"`
	FormattedTotalSales string `json:"formattedTotalSales"`
	MemberSince         string `json:"memberSince"`

	IsActive   bool     `json:"isActive"`
	IsVerified bool     `json:"isVerified"`
	IsBanned   bool     `json:"isBanned"`
	IsYourShop bool     `json:"isYourShop"`
	Badges     []string `json:"badges"`
}

// ShopCardFE is the shop directory tile.
type ShopCardFE struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Logo              string   `json:"logo"`
	URL               string   `json:"url"`
	RatingDisplay     string   `json:"ratingDisplay"`
	ProductCountLabel string   `json:"productCountLabel"`
	IsVerified        bool     `json:"isVerified"`
	Badges            []string `json:"badges"`
}

// ShopFormFE is the create form.
type ShopFormFE struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Logo        string      `json:"logo"`
	Banner      string      `json:"banner"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Website     string      `json:"website"`
	GST         string      `json:"gst"`
	PAN         string      `json:"pan"`
	SocialLinks SocialLinks `json:"socialLinks"`
	BankDetails BankDetails `json:"bankDetails"`
}

// CreateShopRequestBE is the creation payload. Extended fields travel in
// Metadata.
type CreateShopRequestBE struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description,omitempty"`
	Logo        *string        `json:"logo,omitempty"`
	Banner      *string        `json:"banner,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Address     *string        `json:"address,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ShopUpdateFormFE is the partial edit form.
type ShopUpdateFormFE struct {
	Name        *string      `json:"name"`
	Slug        *string      `json:"slug"`
	Description *string      `json:"description"`
	Logo        *string      `json:"logo"`
	Banner      *string      `json:"banner"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	Address     *string      `json:"address"`
	Status      *Status      `json:"status"`
	IsVerified  *bool        `json:"isVerified"`
	Website     *string      `json:"website"`
	GST         *string      `json:"gst"`
	PAN         *string      `json:"pan"`
	SocialLinks *SocialLinks `json:"socialLinks"`
	BankDetails *BankDetails `json:"bankDetails"`
}
