package product

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-bff/internal/timestamp"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newProduct() ProductBE {
	return ProductBE{
		ID:          "p1",
		ShopID:      "shop-1",
		SellerID:    "seller-1",
		Name:        "Handloom Saree",
		Slug:        "handloom-saree",
		Price:       800,
		StockCount:  20,
		Images:      []string{"a.jpg", "b.jpg"},
		Condition:   ConditionNew,
		Status:      StatusPublished,
		Rating:      ptr(4.5),
		ReviewCount: 12,
		CreatedAt:   timestamp.Of(now.Add(-30 * 24 * time.Hour)),
		UpdatedAt:   timestamp.Of(now.Add(-time.Hour)),
	}
}

func TestToFE_Discount(t *testing.T) {
	p := newProduct()
	p.CompareAtPrice = ptr(1000.0)

	fe := ToFE(p, now, "")
	assert.Equal(t, 20, fe.DiscountPercentage)
	assert.True(t, fe.HasDiscount)
	assert.Equal(t, "₹1,000", fe.FormattedCompareAtPrice)
	assert.Equal(t, []string{"20% OFF"}, fe.Badges)

	p.CompareAtPrice = ptr(500.0)
	fe = ToFE(p, now, "")
	assert.Equal(t, 0, fe.DiscountPercentage)
	assert.Equal(t, "", fe.FormattedCompareAtPrice)
}

func TestStock(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		threshold  *int
		status     Status
		outOfStock bool
		lowStock   bool
		label      string
	}{
		{name: "plenty", stock: 20, status: StatusPublished, label: "In stock"},
		{name: "low default threshold", stock: 5, status: StatusPublished, lowStock: true, label: "Only 5 left"},
		{name: "custom threshold", stock: 8, threshold: ptr(10), status: StatusPublished, lowStock: true, label: "Only 8 left"},
		{name: "empty", stock: 0, status: StatusPublished, outOfStock: true, label: "Out of stock"},
		{name: "status out of stock", stock: 3, status: StatusOutOfStock, outOfStock: true, lowStock: true, label: "Out of stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProduct()
			p.StockCount = tt.stock
			p.LowStockThreshold = tt.threshold
			p.Status = tt.status
			fe := ToFE(p, now, "")
			assert.Equal(t, tt.outOfStock, fe.IsOutOfStock)
			assert.Equal(t, tt.lowStock, fe.IsLowStock)
			assert.Equal(t, tt.label, fe.StockLabel)
		})
	}
}

func TestRatingDisplay(t *testing.T) {
	assert.Equal(t, "4.5 (12 reviews)", RatingDisplay(ptr(4.5), 12))
	assert.Equal(t, "5.0 (1 review)", RatingDisplay(ptr(5.0), 1))
	assert.Equal(t, "No reviews", RatingDisplay(nil, 12))
	assert.Equal(t, "No reviews", RatingDisplay(ptr(4.0), 0))
}

func TestBadges_Order(t *testing.T) {
	p := newProduct()
	p.Featured = true
	p.CompareAtPrice = ptr(1000.0)
	p.CreatedAt = timestamp.Of(now.Add(-2 * 24 * time.Hour))
	p.StockCount = 2
	p.Condition = ConditionRefurbished

	assert.Equal(t, []string{"Featured", "20% OFF", "New", "Low Stock", "Refurbished"}, ToFE(p, now, "").Badges)
	assert.Equal(t, []string{"Featured", "20% OFF", "New"}, ToCard(p, now).Badges)

	p.StockCount = 0
	p.Condition = ConditionUsed
	assert.Equal(t, []string{"Featured", "20% OFF", "New", "Out of Stock", "Used"}, ToFE(p, now, "").Badges)
}

func TestToFE_Ownership(t *testing.T) {
	assert.True(t, ToFE(newProduct(), now, "seller-1").IsYourProduct)
	assert.False(t, ToFE(newProduct(), now, "buyer").IsYourProduct)
	assert.False(t, ToFE(ProductBE{}, now, "").IsYourProduct)
}

func TestTotality(t *testing.T) {
	var doc ProductBE
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p","tags":null,"rating":null,"compareAtPrice":null,"createdAt":"2024-05-01T00:00:00Z"}`), &doc))
	fe := ToFE(doc, now, "")
	assert.NotNil(t, fe.Tags)
	assert.NotNil(t, fe.Images)
	assert.Equal(t, "No reviews", fe.RatingDisplay)
	assert.Equal(t, 5, fe.LowStockThreshold)
	assert.True(t, fe.IsOutOfStock)
	assert.Nil(t, fe.PublishedAt)

	card := ToCard(doc, now)
	assert.Equal(t, "", card.Image)
	assert.Empty(t, ToCards(nil, now))
	assert.Empty(t, ToFEs(nil, now, ""))
}

func TestToBECreateRequest(t *testing.T) {
	req := ToBECreateRequest(ProductFormFE{Name: "Lamp", Price: 500, SKU: "", Brand: "Acme"})
	assert.Nil(t, req.SKU)
	assert.Equal(t, "Acme", *req.Brand)
	assert.NotNil(t, req.Tags)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"sku"`)
	assert.NotContains(t, string(b), `"status"`)
	assert.NotContains(t, string(b), `"id"`)
}

func TestToBEUpdateRequest(t *testing.T) {
	tags := []string{"cotton"}
	p := ToBEUpdateRequest(ProductUpdateFormFE{Price: ptr(750.0), Tags: &tags, Featured: ptr(false)})
	require.Len(t, p, 3)
	assert.Equal(t, 750.0, p["price"])
	assert.Equal(t, tags, p["tags"])
	assert.Equal(t, false, p["featured"])
}
