package product

import (
	"fmt"
	"time"

	"marketplace-bff/internal/transforms/shared"
)

const (
	defaultLowStockThreshold = 5
	newProductWindow         = 7 * 24 * time.Hour
)

type state struct {
	product ProductBE
	now     time.Time
}

func isFeatured(s state) bool { return s.product.Featured }

func hasDiscount(s state) bool { return discountPercentage(s.product) > 0 }

func isNew(s state) bool { return shared.Since(s.product.CreatedAt.Time, s.now, newProductWindow) }

func isLowStock(s state) bool {
	return s.product.StockCount > 0 && s.product.StockCount <= lowStockThreshold(s.product)
}

func isOutOfStock(s state) bool {
	return s.product.StockCount <= 0 || s.product.Status == StatusOutOfStock
}

func isUsed(s state) bool { return s.product.Condition == ConditionUsed }

func isRefurbished(s state) bool { return s.product.Condition == ConditionRefurbished }

func discountLabel(s state) string {
	return fmt.Sprintf("%d%% OFF", discountPercentage(s.product))
}

var detailBadges = []shared.BadgeRule[state]{
	{Label: "Featured", Applies: isFeatured},
	{Text: discountLabel, Applies: hasDiscount},
	{Label: "New", Applies: isNew},
	{Label: "Low Stock", Applies: isLowStock},
	{Label: "Out of Stock", Applies: isOutOfStock},
	{Label: "Used", Applies: isUsed},
	{Label: "Refurbished", Applies: isRefurbished},
}

var cardBadges = []shared.BadgeRule[state]{
	{Label: "Featured", Applies: isFeatured},
	{Text: discountLabel, Applies: hasDiscount},
	{Label: "New", Applies: isNew},
	{Label: "Out of Stock", Applies: isOutOfStock},
}
