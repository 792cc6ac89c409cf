package riplimit

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// TransactionType is the ledger entry kind.
type TransactionType string

const (
	TxPurchase       TransactionType = "purchase"
	TxBidBlock       TransactionType = "bid_block"
	TxBidRelease     TransactionType = "bid_release"
	TxAuctionPayment TransactionType = "auction_payment"
	TxRefund         TransactionType = "refund"
	TxWithdrawal     TransactionType = "withdrawal"
)

// BalanceBE is a user's RipLimit account.
type BalanceBE struct {
	UserID            string          `json:"userId"`
	AvailableBalance  int64           `json:"availableBalance"`
	BlockedBalance    int64           `json:"blockedBalance"`
	TotalBalance      int64           `json:"totalBalance"`
	HasUnpaidAuctions bool            `json:"hasUnpaidAuctions"`
	UnpaidAuctionIDs  []string        `json:"unpaidAuctionIds"`
	IsBlocked         bool            `json:"isBlocked"`
	UpdatedAt         *timestamp.Time `json:"updatedAt"`
}

// BalanceFE is the wallet view-model.
type BalanceFE struct {
	UserID            string     `json:"userId"`
	AvailableBalance  int64      `json:"availableBalance"`
	BlockedBalance    int64      `json:"blockedBalance"`
	TotalBalance      int64      `json:"totalBalance"`
	HasUnpaidAuctions bool       `json:"hasUnpaidAuctions"`
	UnpaidAuctionIDs  []string   `json:"unpaidAuctionIds"`
	IsBlocked         bool       `json:"isBlocked"`
	UpdatedAt         *time.Time `json:"updatedAt"`

	FormattedAvailable string  `json:"formattedAvailable"`
	FormattedBlocked   string  `json:"formattedBlocked"`
	FormattedTotal     string  `json:"formattedTotal"`
	AvailableInRupees  float64 `json:"availableInRupees"`
	TotalInRupees      float64 `json:"totalInRupees"`
	FormattedRupees    string  `json:"formattedRupees"`

	CanBid bool `json:"canBid"`
}

// TransactionBE is one ledger entry. Amount is signed: credits are positive.
type TransactionBE struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balanceAfter"`
	Description  *string         `json:"description"`
	AuctionID    *string         `json:"auctionId"`
	OrderID      *string         `json:"orderId"`
	CreatedAt    timestamp.Time  `json:"createdAt"`
}

// TransactionFE is a rendered ledger row.
type TransactionFE struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	Type                  TransactionType `json:"type"`
	TypeLabel             string          `json:"typeLabel"`
	Amount                int64           `json:"amount"`
	BalanceAfter          int64           `json:"balanceAfter"`
	Description           string          `json:"description"`
	AuctionID             string          `json:"auctionId"`
	OrderID               string          `json:"orderId"`
	CreatedAt             time.Time       `json:"createdAt"`
	IsCredit              bool            `json:"isCredit"`
	FormattedAmount       string          `json:"formattedAmount"`
	FormattedBalanceAfter string          `json:"formattedBalanceAfter"`
	FormattedDate         string          `json:"formattedDate"`
	TimeAgo               string          `json:"timeAgo"`
}

// PurchaseFormFE is the buy-RipLimit form.
type PurchaseFormFE struct {
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
}

// PurchaseRequestBE is the purchase command.
type PurchaseRequestBE struct {
	Amount        int64   `json:"amount"`
	RupeeAmount   float64 `json:"rupeeAmount"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// WithdrawFormFE is the cash-out form.
type WithdrawFormFE struct {
	Amount        int64  `json:"amount"`
	BankAccountID string `json:"bankAccountId"`
	Reason        string `json:"reason"`
}

// WithdrawRequestBE is the withdrawal command.
type WithdrawRequestBE struct {
	Amount        int64   `json:"amount"`
	RupeeAmount   float64 `json:"rupeeAmount"`
	BankAccountID *string `json:"bankAccountId,omitempty"`
	Reason        *string `json:"reason,omitempty"`
}
