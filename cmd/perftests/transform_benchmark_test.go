package perftests

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/auction"
	"marketplace-bff/internal/transforms/category"
	"marketplace-bff/internal/transforms/product"
)

var benchNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Benchmark 1: single auction detail view
func Benchmark_AuctionToFE(b *testing.B) {
	be := auction.AuctionBE{
		ID:            "auc-1",
		SellerID:      "seller-1",
		Name:          "Vintage Camera",
		Status:        auction.StatusActive,
		StartingPrice: 1000,
		CurrentPrice:  125000,
		BidIncrement:  500,
		TotalBids:     25,
		Images:        []string{"a.jpg"},
		StartTime:     timestamp.Of(benchNow.Add(-time.Hour)),
		EndTime:       timestamp.Of(benchNow.Add(30 * time.Minute)),
		CreatedAt:     timestamp.Of(benchNow.Add(-2 * time.Hour)),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = auction.ToFE(be, benchNow, "user-1")
	}
}

// Benchmark 2: decode a page of raw product documents and build cards
func Benchmark_ProductPage_DecodeAndCard(b *testing.B) {
	docs := make([][]byte, 50)
	for i := range docs {
		docs[i] = []byte(fmt.Sprintf(
			`{"id":"p%d","name":"Item %d","price":%d,"compareAtPrice":%d,"stockCount":%d,"status":"published","createdAt":{"_seconds":%d}}`,
			i, i, 1000+i, 1500+i, i%7, benchNow.Add(-time.Duration(i)*time.Hour).Unix(),
		))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, raw := range docs {
			var be product.ProductBE
			if err := json.Unmarshal(raw, &be); err != nil {
				b.Fatalf("decode: %v", err)
			}
			_ = product.ToCard(be, benchNow)
		}
	}
}

// Benchmark 3: category forest over a wide, shallow catalogue
func Benchmark_CategoryBuildTree(b *testing.B) {
	flat := make([]category.CategoryFE, 0, 1000)
	for i := 0; i < 1000; i++ {
		parent := ""
		if i >= 10 {
			parent = fmt.Sprintf("c%d", i%10)
		}
		flat = append(flat, category.CategoryFE{ID: fmt.Sprintf("c%d", i), Name: fmt.Sprintf("Cat %d", i), ParentID: parent})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = category.BuildTree(flat)
	}
}

// Benchmark 4: Indian-grouped currency formatting
func Benchmark_FormatINR(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = format.INR(float64(i) * 1234.5)
	}
}
