package coupon

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newCoupon() CouponBE {
	return CouponBE{
		ID:            "cp-1",
		Code:          "SUMMER20",
		Name:          "Summer sale",
		Type:          TypePercentage,
		DiscountValue: 20,
		UsageLimit:    ptr(100),
		UsageCount:    40,
		Status:        StatusActive,
		StartDate:     timestamp.Of(now.Add(-24 * time.Hour)),
		EndDate:       timestamp.Of(now.Add(10 * 24 * time.Hour)),
		CreatedAt:     timestamp.Of(now.Add(-48 * time.Hour)),
	}
}

func TestToFE_UsedUpScenario(t *testing.T) {
	c := newCoupon()
	c.UsageCount = 100

	fe := ToFE(c, now)
	assert.True(t, fe.IsUsedUp)
	assert.False(t, fe.IsActive)
	assert.False(t, fe.CanBeUsed)
	assert.Equal(t, shared.Badge{Text: "Used Up", Variant: "error"}, fe.StatusBadge)
	require.NotNil(t, fe.RemainingUses)
	assert.Equal(t, 0, *fe.RemainingUses)
	assert.Equal(t, 100.0, fe.UsagePercentage)
}

func TestStatusBadgePriority(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CouponBE)
		badge  shared.Badge
	}{
		{name: "active", mutate: func(*CouponBE) {}, badge: shared.Badge{Text: "Active", Variant: "success"}},
		{name: "inactive", mutate: func(c *CouponBE) { c.Status = StatusInactive }, badge: shared.Badge{Text: "Inactive", Variant: "default"}},
		{
			name: "expired beats used up",
			mutate: func(c *CouponBE) {
				c.EndDate = timestamp.Of(now.Add(-time.Hour))
				c.UsageCount = 100
			},
			badge: shared.Badge{Text: "Expired", Variant: "error"},
		},
		{
			name: "used up beats inactive",
			mutate: func(c *CouponBE) {
				c.Status = StatusInactive
				c.UsageCount = 120
			},
			badge: shared.Badge{Text: "Used Up", Variant: "error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCoupon()
			tt.mutate(&c)
			assert.Equal(t, tt.badge, ToFE(c, now).StatusBadge)
			assert.Equal(t, tt.badge, ToCard(c, now).StatusBadge)
		})
	}
}

func TestFlags(t *testing.T) {
	fe := ToFE(newCoupon(), now)
	assert.True(t, fe.IsActive)
	assert.True(t, fe.CanBeUsed)
	assert.Equal(t, 60, *fe.RemainingUses)
	assert.Equal(t, 40.0, fe.UsagePercentage)
	assert.Equal(t, "40 / 100 used", fe.UsageLabel)

	future := newCoupon()
	future.StartDate = timestamp.Of(now.Add(time.Hour))
	fe = ToFE(future, now)
	assert.True(t, fe.IsActive)
	assert.False(t, fe.CanBeUsed)
	assert.Equal(t, "Starts 1 Jun 2024", fe.ValidityLabel)

	unlimited := newCoupon()
	unlimited.UsageLimit = nil
	fe = ToFE(unlimited, now)
	assert.Nil(t, fe.RemainingUses)
	assert.Equal(t, 0.0, fe.UsagePercentage)
	assert.False(t, fe.IsUsedUp)
	assert.Equal(t, "40 used", fe.UsageLabel)
}

func TestFormatDiscount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   CouponBE
		expected string
	}{
		{name: "percentage", coupon: CouponBE{Type: TypePercentage, DiscountValue: 20}, expected: "20% off"},
		{name: "percentage capped", coupon: CouponBE{Type: TypePercentage, DiscountValue: 20, MaxDiscountAmount: ptr(500.0)}, expected: "20% off, max ₹500"},
		{name: "fractional percentage", coupon: CouponBE{Type: TypePercentage, DiscountValue: 12.5}, expected: "12.5% off"},
		{name: "flat", coupon: CouponBE{Type: TypeFlat, DiscountValue: 100}, expected: "₹100 off"},
		{name: "free shipping", coupon: CouponBE{Type: TypeFreeShipping}, expected: "Free Shipping"},
		{name: "bogo", coupon: CouponBE{Type: TypeBOGO}, expected: "Buy One Get One"},
		{name: "tiered", coupon: CouponBE{Type: TypeTiered}, expected: "Tiered Discount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDiscount(tt.coupon))
		})
	}
}

func TestTwoDecimalAmounts(t *testing.T) {
	c := newCoupon()
	c.Type = TypeTiered
	c.MinPurchaseAmount = ptr(1500.0)
	c.Tiers = []TierBE{{MinAmount: 1000, Discount: 5}, {MinAmount: 250000, Discount: 10}}

	fe := ToFE(c, now)
	assert.Equal(t, "Min. purchase ₹1,500.00", fe.FormattedMinPurchase)
	require.Len(t, fe.Tiers, 2)
	assert.Equal(t, "₹1,000.00", fe.Tiers[0].FormattedMinAmount)
	assert.Equal(t, "Spend ₹2,50,000.00, get 10% off", fe.Tiers[1].Label)
}

func TestTotality(t *testing.T) {
	var doc CouponBE
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c","usageLimit":null,"tiers":null,"endDate":{"seconds":1717243200},"startDate":"2024-05-01"}`), &doc))
	fe := ToFE(doc, now)
	assert.NotNil(t, fe.Tiers)
	assert.NotNil(t, fe.ApplicableProductIDs)
	assert.Equal(t, "", fe.FormattedMinPurchase)
	assert.Nil(t, fe.RemainingUses)
	assert.Empty(t, ToFEs(nil, now))
	assert.Empty(t, ToCards(nil, now))
}

func TestToBECreateRequest(t *testing.T) {
	req := ToBECreateRequest(CouponFormFE{
		Code:      "  summer20 ",
		Name:      "Summer",
		Type:      TypeFlat,
		StartDate: timestamp.Of(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		EndDate:   timestamp.Of(time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)),
	})
	assert.Equal(t, "SUMMER20", req.Code)
	assert.Equal(t, "2024-01-15T10:00:00.000Z", req.StartDate)
	assert.Nil(t, req.ShopID)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"status"`)
	assert.NotContains(t, string(b), `"shopId"`)
	assert.NotContains(t, string(b), `"tiers"`)
}

func TestToBEUpdateRequest(t *testing.T) {
	inactive := StatusInactive
	end := timestamp.Of(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	p := ToBEUpdateRequest(CouponUpdateFormFE{Status: &inactive, EndDate: &end})
	require.Len(t, p, 2)
	assert.Equal(t, StatusInactive, p["status"])
	assert.Equal(t, "2024-07-01T00:00:00.000Z", p["endDate"])
}
