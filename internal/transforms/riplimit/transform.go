// Package riplimit maps the RipLimit bidding-currency wallet and ledger.
package riplimit

import (
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// PerRupee is the fixed exchange rate: 1 rupee buys 20 RL.
const PerRupee = 20

var typeLabels = map[TransactionType]string{
	TxPurchase:       "Purchase",
	TxBidBlock:       "Bid Blocked",
	TxBidRelease:     "Bid Released",
	TxAuctionPayment: "Auction Payment",
	TxRefund:         "Refund",
	TxWithdrawal:     "Withdrawal",
}

// TypeLabel returns the display label of t; unknown values pass through.
func TypeLabel(t TransactionType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ToRupees converts an RL amount to rupees.
func ToRupees(amount int64) float64 {
	return float64(amount) / PerRupee
}

// ToBalanceFE builds the wallet view.
func ToBalanceFE(be BalanceBE) BalanceFE {
	return BalanceFE{
		UserID:            be.UserID,
		AvailableBalance:  be.AvailableBalance,
		BlockedBalance:    be.BlockedBalance,
		TotalBalance:      be.TotalBalance,
		HasUnpaidAuctions: be.HasUnpaidAuctions,
		UnpaidAuctionIDs:  shared.Strings(be.UnpaidAuctionIDs),
		IsBlocked:         be.IsBlocked,
		UpdatedAt:         timestamp.Ptr(be.UpdatedAt),

		FormattedAvailable: format.RipLimit(be.AvailableBalance),
		FormattedBlocked:   format.RipLimit(be.BlockedBalance),
		FormattedTotal:     format.RipLimit(be.TotalBalance),
		AvailableInRupees:  ToRupees(be.AvailableBalance),
		TotalInRupees:      ToRupees(be.TotalBalance),
		FormattedRupees:    format.INR(ToRupees(be.AvailableBalance)),

		CanBid: !be.IsBlocked && !be.HasUnpaidAuctions,
	}
}

// EmptyBalance is the zero wallet shown while the real one loads.
func EmptyBalance() BalanceFE {
	return ToBalanceFE(BalanceBE{})
}

// ToTransactionFE renders a ledger row at now.
func ToTransactionFE(be TransactionBE, now time.Time) TransactionFE {
	return TransactionFE{
		ID:                    be.ID,
		UserID:                be.UserID,
		Type:                  be.Type,
		TypeLabel:             TypeLabel(be.Type),
		Amount:                be.Amount,
		BalanceAfter:          be.BalanceAfter,
		Description:           shared.Str(be.Description),
		AuctionID:             shared.Str(be.AuctionID),
		OrderID:               shared.Str(be.OrderID),
		CreatedAt:             be.CreatedAt.Time,
		IsCredit:              be.Amount > 0,
		FormattedAmount:       signedAmount(be.Amount),
		FormattedBalanceAfter: format.RipLimit(be.BalanceAfter),
		FormattedDate:         format.DateTime(be.CreatedAt.Time),
		TimeAgo:               format.Compact(be.CreatedAt.Time, now),
	}
}

// ToTransactionFEs maps a ledger page.
func ToTransactionFEs(in []TransactionBE, now time.Time) []TransactionFE {
	return shared.Map(in, func(be TransactionBE) TransactionFE { return ToTransactionFE(be, now) })
}

// ToBEPurchaseRequest converts the buy form into a purchase command.
func ToBEPurchaseRequest(form PurchaseFormFE) PurchaseRequestBE {
	return PurchaseRequestBE{
		Amount:        form.Amount,
		RupeeAmount:   ToRupees(form.Amount),
		PaymentMethod: shared.OptString(form.PaymentMethod),
	}
}

// ToBEWithdrawRequest converts the cash-out form into a withdrawal command.
func ToBEWithdrawRequest(form WithdrawFormFE) WithdrawRequestBE {
	return WithdrawRequestBE{
		Amount:        form.Amount,
		RupeeAmount:   ToRupees(form.Amount),
		BankAccountID: shared.OptString(form.BankAccountID),
		Reason:        shared.OptString(form.Reason),
	}
}

// signedAmount prefixes credits with "+"; debits already carry their sign.
func signedAmount(amount int64) string {
	if amount > 0 {
		return "+" + format.RipLimit(amount)
	}
	return format.RipLimit(amount)
}
