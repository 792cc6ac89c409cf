package riplimit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-bff/internal/timestamp"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestEmptyBalance(t *testing.T) {
	b := EmptyBalance()
	assert.Equal(t, int64(0), b.AvailableBalance)
	assert.Equal(t, int64(0), b.BlockedBalance)
	assert.Equal(t, int64(0), b.TotalBalance)
	assert.Equal(t, 0.0, b.AvailableInRupees)
	assert.Equal(t, "0 RL", b.FormattedAvailable)
	assert.Equal(t, "0 RL", b.FormattedBlocked)
	assert.Equal(t, "0 RL", b.FormattedTotal)
	assert.Equal(t, "₹0", b.FormattedRupees)
	assert.True(t, b.CanBid)
	assert.NotNil(t, b.UnpaidAuctionIDs)
}

func TestToBalanceFE(t *testing.T) {
	b := ToBalanceFE(BalanceBE{UserID: "u1", AvailableBalance: 5000, BlockedBalance: 150000, TotalBalance: 155000})
	assert.Equal(t, "5,000 RL", b.FormattedAvailable)
	assert.Equal(t, "1,50,000 RL", b.FormattedBlocked)
	assert.Equal(t, 250.0, b.AvailableInRupees)
	assert.Equal(t, "₹250", b.FormattedRupees)
	assert.Equal(t, 7750.0, b.TotalInRupees)
	assert.True(t, b.CanBid)
}

func TestCanBid(t *testing.T) {
	tests := []struct {
		name    string
		blocked bool
		unpaid  bool
		canBid  bool
	}{
		{name: "clear", canBid: true},
		{name: "blocked", blocked: true},
		{name: "unpaid auctions", unpaid: true},
		{name: "both", blocked: true, unpaid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ToBalanceFE(BalanceBE{IsBlocked: tt.blocked, HasUnpaidAuctions: tt.unpaid})
			assert.Equal(t, tt.canBid, b.CanBid)
		})
	}
}

func TestTransactions(t *testing.T) {
	txs := ToTransactionFEs([]TransactionBE{
		{ID: "t1", Type: TxPurchase, Amount: 5000, BalanceAfter: 5000, CreatedAt: timestamp.Of(now.Add(-5 * time.Minute))},
		{ID: "t2", Type: TxBidBlock, Amount: -1200, BalanceAfter: 3800, CreatedAt: timestamp.Of(now.Add(-2 * 24 * time.Hour))},
		{ID: "t3", Type: "bonus", Amount: 0},
	}, now)

	require.Len(t, txs, 3)
	assert.True(t, txs[0].IsCredit)
	assert.Equal(t, "+5,000 RL", txs[0].FormattedAmount)
	assert.Equal(t, "Purchase", txs[0].TypeLabel)
	assert.Equal(t, "5m ago", txs[0].TimeAgo)

	assert.False(t, txs[1].IsCredit)
	assert.Equal(t, "-1,200 RL", txs[1].FormattedAmount)
	assert.Equal(t, "3,800 RL", txs[1].FormattedBalanceAfter)
	assert.Equal(t, "Bid Blocked", txs[1].TypeLabel)
	assert.Equal(t, "2d ago", txs[1].TimeAgo)

	assert.False(t, txs[2].IsCredit)
	assert.Equal(t, "0 RL", txs[2].FormattedAmount)
	assert.Equal(t, "bonus", txs[2].TypeLabel)

	assert.Empty(t, ToTransactionFEs(nil, now))
}

func TestTotality(t *testing.T) {
	var doc BalanceBE
	require.NoError(t, json.Unmarshal([]byte(`{"userId":"u","unpaidAuctionIds":null,"updatedAt":null}`), &doc))
	fe := ToBalanceFE(doc)
	assert.NotNil(t, fe.UnpaidAuctionIDs)
	assert.Nil(t, fe.UpdatedAt)

	var tx TransactionBE
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t","description":null,"createdAt":"2024-06-01T11:00:00.000Z"}`), &tx))
	assert.Equal(t, "", ToTransactionFE(tx, now).Description)
}

func TestCommands(t *testing.T) {
	p := ToBEPurchaseRequest(PurchaseFormFE{Amount: 2000})
	assert.Equal(t, int64(2000), p.Amount)
	assert.Equal(t, 100.0, p.RupeeAmount)
	assert.Nil(t, p.PaymentMethod)

	w := ToBEWithdrawRequest(WithdrawFormFE{Amount: 1000, BankAccountID: "acct-1"})
	assert.Equal(t, 50.0, w.RupeeAmount)
	assert.Equal(t, "acct-1", *w.BankAccountID)

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "reason")
}
