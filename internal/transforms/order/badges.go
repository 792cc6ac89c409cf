package order

import "marketplace-bff/internal/transforms/shared"

func isCOD(be OrderBE) bool { return be.PaymentMethod == PaymentCOD }
func isExpress(be OrderBE) bool { return be.ShippingMethod == ShippingExpress }
func isOvernight(be OrderBE) bool { return be.ShippingMethod == ShippingOvernight }
func isCancelled(be OrderBE) bool { return be.Status == StatusCancelled }
func isRefunded(be OrderBE) bool { return be.Status == StatusRefunded }
func hasCoupon(be OrderBE) bool { return shared.Present(be.CouponCode) }

var detailBadges = []shared.BadgeRule[OrderBE]{
	{Label: "COD", Applies: isCOD},
	{Label: "Express", Applies: isExpress},
	{Label: "Overnight", Applies: isOvernight},
	{Label: "Cancelled", Applies: isCancelled},
	{Label: "Refunded", Applies: isRefunded},
	{Label: "Coupon Applied", Applies: hasCoupon},
}

// History rows only flag payment and delivery speed; status already has its
// own column there.
var cardBadges = []shared.BadgeRule[OrderBE]{
	{Label: "COD", Applies: isCOD},
	{Label: "Express", Applies: isExpress},
	{Label: "Overnight", Applies: isOvernight},
}
