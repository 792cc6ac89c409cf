package auction

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Status is the auction lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Type is the bidding mechanism.
type Type string

const (
	TypeRegular Type = "regular"
	TypeReverse Type = "reverse"
	TypeSilent  Type = "silent"
)

// AuctionBE is the auction document as stored by the backend.
type AuctionBE struct {
	ID              string          `json:"id"`
	ShopID          string          `json:"shopId"`
	SellerID        string          `json:"sellerId"`
	CategoryID      *string         `json:"categoryId"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	Type            Type            `json:"type"`
	Status          Status          `json:"status"`
	StartingPrice   float64         `json:"startingPrice"`
	CurrentPrice    float64         `json:"currentPrice"`
	ReservePrice    *float64        `json:"reservePrice"`
	BuyNowPrice     *float64        `json:"buyNowPrice"`
	BidIncrement    float64         `json:"bidIncrement"`
	ReserveMet      bool            `json:"reserveMet"`
	TotalBids       int             `json:"totalBids"`
	UniqueBidders   int             `json:"uniqueBidders"`
	HighestBidderID *string         `json:"highestBidderId"`
	WinnerID        *string         `json:"winnerId"`
	Featured        bool            `json:"featured"`
	ViewCount       int             `json:"viewCount"`
	WatchCount      int             `json:"watchCount"`
	StartTime       timestamp.Time  `json:"startTime"`
	EndTime         timestamp.Time  `json:"endTime"`
	CreatedAt       timestamp.Time  `json:"createdAt"`
	UpdatedAt       timestamp.Time  `json:"updatedAt"`
	EndedAt         *timestamp.Time `json:"endedAt"`
}

// AuctionListItemBE is the reduced document returned by list queries.
type AuctionListItemBE struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Image        string         `json:"image"`
	Status       Status         `json:"status"`
	CurrentPrice float64        `json:"currentPrice"`
	BuyNowPrice  *float64       `json:"buyNowPrice"`
	TotalBids    int            `json:"totalBids"`
	Featured     bool           `json:"featured"`
	ShopID       string         `json:"shopId"`
	EndTime      timestamp.Time `json:"endTime"`
}

// AuctionFE is the auction detail view-model.
type AuctionFE struct {
	ID              string     `json:"id"`
	ShopID          string     `json:"shopId"`
	SellerID        string     `json:"sellerId"`
	CategoryID      string     `json:"categoryId"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	Images          []string   `json:"images"`
	PrimaryImage    string     `json:"primaryImage"`
	Type            Type       `json:"type"`
	Status          Status     `json:"status"`
	StartingPrice   float64    `json:"startingPrice"`
	CurrentPrice    float64    `json:"currentPrice"`
	ReservePrice    *float64   `json:"reservePrice"`
	BuyNowPrice     *float64   `json:"buyNowPrice"`
	BidIncrement    float64    `json:"bidIncrement"`
	MinimumBid      float64    `json:"minimumBid"`
	ReserveMet      bool       `json:"reserveMet"`
	TotalBids       int        `json:"totalBids"`
	UniqueBidders   int        `json:"uniqueBidders"`
	HighestBidderID string     `json:"highestBidderId"`
	WinnerID        string     `json:"winnerId"`
	Featured        bool       `json:"featured"`
	ViewCount       int        `json:"viewCount"`
	WatchCount      int        `json:"watchCount"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	EndedAt         *time.Time `json:"endedAt"`

	FormattedStartingPrice string `json:"formattedStartingPrice"`
	FormattedCurrentPrice  string `json:"formattedCurrentPrice"`
	FormattedReservePrice  string `json:"formattedReservePrice"`
	FormattedBuyNowPrice   string `json:"formattedBuyNowPrice"`
	FormattedBidIncrement  string `json:"formattedBidIncrement"`
	FormattedMinimumBid    string `json:"formattedMinimumBid"`
	FormattedStartTime     string `json:"formattedStartTime"`
	FormattedEndTime       string `json:"formattedEndTime"`

	SecondsRemaining int64  `json:"secondsRemaining"`
	TimeRemaining    string `json:"timeRemaining"`

	IsActive      bool   `json:"isActive"`
	IsUpcoming    bool   `json:"isUpcoming"`
	IsLive        bool   `json:"isLive"`
	IsEnded       bool   `json:"isEnded"`
	IsEndingSoon  bool   `json:"isEndingSoon"`
	CanBid        bool   `json:"canBid"`
	CanBuyNow     bool   `json:"canBuyNow"`
	IsYourAuction bool   `json:"isYourAuction"`
	IsYouWinning  bool   `json:"isYouWinning"`
	IsYouWinner   bool   `json:"isYouWinner"`
	ReserveStatus string `json:"reserveStatus"`

	Badges        []string `json:"badges"`
	PriceProgress float64  `json:"priceProgress"`
	BidProgress   float64  `json:"bidProgress"`
	TimeProgress  float64  `json:"timeProgress"`
}

// AuctionCardFE is the list/grid projection.
type AuctionCardFE struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Slug                  string    `json:"slug"`
	Image                 string    `json:"image"`
	Status                Status    `json:"status"`
	ShopID                string    `json:"shopId"`
	CurrentPrice          float64   `json:"currentPrice"`
	FormattedCurrentPrice string    `json:"formattedCurrentPrice"`
	TotalBids             int       `json:"totalBids"`
	BidsLabel             string    `json:"bidsLabel"`
	EndTime               time.Time `json:"endTime"`
	TimeRemaining         string    `json:"timeRemaining"`
	IsEndingSoon          bool      `json:"isEndingSoon"`
	HasBuyNow             bool      `json:"hasBuyNow"`
	Badges                []string  `json:"badges"`
}

// AuctionFormFE collects seller input for creating an auction.
type AuctionFormFE struct {
	ShopID        string         `json:"shopId"`
	CategoryID    string         `json:"categoryId"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Images        []string       `json:"images"`
	Type          Type           `json:"type"`
	StartingPrice float64        `json:"startingPrice"`
	ReservePrice  *float64       `json:"reservePrice"`
	BuyNowPrice   *float64       `json:"buyNowPrice"`
	BidIncrement  float64        `json:"bidIncrement"`
	StartTime     timestamp.Time `json:"startTime"`
	EndTime       timestamp.Time `json:"endTime"`
	Featured      bool           `json:"featured"`
}

// CreateAuctionRequestBE is the creation payload.
type CreateAuctionRequestBE struct {
	ShopID        string   `json:"shopId"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description,omitempty"`
	Images        []string `json:"images"`
	Type          Type     `json:"type"`
	StartingPrice float64  `json:"startingPrice"`
	ReservePrice  *float64 `json:"reservePrice,omitempty"`
	BuyNowPrice   *float64 `json:"buyNowPrice,omitempty"`
	BidIncrement  float64  `json:"bidIncrement"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Featured      bool     `json:"featured"`
}

// AuctionUpdateFormFE is a partial edit; nil fields are untouched.
type AuctionUpdateFormFE struct {
	Name         *string         `json:"name"`
	Slug         *string         `json:"slug"`
	Description  *string         `json:"description"`
	CategoryID   *string         `json:"categoryId"`
	Images       *[]string       `json:"images"`
	Status       *Status         `json:"status"`
	ReservePrice *float64        `json:"reservePrice"`
	BuyNowPrice  *float64        `json:"buyNowPrice"`
	BidIncrement *float64        `json:"bidIncrement"`
	StartTime    *timestamp.Time `json:"startTime"`
	EndTime      *timestamp.Time `json:"endTime"`
	Featured     *bool           `json:"featured"`
}

// BidBE is a bid document.
type BidBE struct {
	ID               string         `json:"id"`
	AuctionID        string         `json:"auctionId"`
	UserID           string         `json:"userId"`
	UserName         *string        `json:"userName"`
	Amount           float64        `json:"amount"`
	IsAutoBid        bool           `json:"isAutoBid"`
	MaxAutoBidAmount *float64       `json:"maxAutoBidAmount"`
	IsWinning        bool           `json:"isWinning"`
	CreatedAt        timestamp.Time `json:"createdAt"`
}

// BidFE is the bid history row.
type BidFE struct {
	ID              string    `json:"id"`
	AuctionID       string    `json:"auctionId"`
	UserID          string    `json:"userId"`
	BidderName      string    `json:"bidderName"`
	Amount          float64   `json:"amount"`
	FormattedAmount string    `json:"formattedAmount"`
	IsAutoBid       bool      `json:"isAutoBid"`
	IsWinning       bool      `json:"isWinning"`
	IsYourBid       bool      `json:"isYourBid"`
	CreatedAt       time.Time `json:"createdAt"`
	TimeAgo         string    `json:"timeAgo"`
}

// BidFormFE is the place-bid form.
type BidFormFE struct {
	AuctionID        string   `json:"auctionId"`
	Amount           float64  `json:"amount"`
	IsAutoBid        bool     `json:"isAutoBid"`
	MaxAutoBidAmount *float64 `json:"maxAutoBidAmount"`
}

// PlaceBidRequestBE is the place-bid payload.
type PlaceBidRequestBE struct {
	AuctionID        string   `json:"auctionId"`
	Amount           float64  `json:"amount"`
	IsAutoBid        bool     `json:"isAutoBid"`
	MaxAutoBidAmount *float64 `json:"maxAutoBidAmount,omitempty"`
}
