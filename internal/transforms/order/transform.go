package order

import (
	"fmt"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

var progressByStatus = map[Status]int{
	StatusPending:    10,
	StatusConfirmed:  25,
	StatusProcessing: 50,
	StatusShipped:    75,
	StatusDelivered:  100,
	StatusCancelled:  0,
	StatusRefunded:   0,
}

var statusLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusConfirmed:  "Confirmed",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
	StatusRefunded:   "Refunded",
}

// stepOrder lists the fulfilment steps; a status's ordinal is its index.
var stepOrder = []Status{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered}

var stepLabels = []string{"Order Placed", "Confirmed", "Processing", "Shipped", "Delivered"}

// ToFE builds the order detail view at now.
func ToFE(be OrderBE, now time.Time) OrderFE {
	fe := OrderFE{
		ID:                 be.ID,
		OrderNumber:        be.OrderNumber,
		UserID:             be.UserID,
		ShopID:             be.ShopID,
		Items:              shared.Map(be.Items, toItemFE),
		ItemCount:          itemCount(be.Items),
		Subtotal:           be.Subtotal,
		ShippingCost:       be.ShippingCost,
		Tax:                be.Tax,
		Discount:           be.Discount,
		Total:              be.Total,
		CouponCode:         shared.Str(be.CouponCode),
		Status:             be.Status,
		StatusLabel:        StatusLabel(be.Status),
		PaymentMethod:      be.PaymentMethod,
		PaymentStatus:      be.PaymentStatus,
		ShippingMethod:     be.ShippingMethod,
		ShippingAddress:    be.ShippingAddress,
		TrackingNumber:     shared.Str(be.TrackingNumber),
		ShippingProvider:   shared.Str(be.ShippingProvider),
		CancellationReason: shared.Str(be.CancellationReason),
		Notes:              shared.Str(be.Notes),
		CreatedAt:          be.CreatedAt.Time,
		UpdatedAt:          be.UpdatedAt.Time,
		ShippedAt:          timestamp.Ptr(be.ShippedAt),
		DeliveredAt:        timestamp.Ptr(be.DeliveredAt),
		EstimatedDelivery:  timestamp.Ptr(be.EstimatedDelivery),

		FormattedSubtotal:          format.INR(be.Subtotal),
		FormattedShippingCost:      shippingCostLabel(be.ShippingCost),
		FormattedTax:               format.INR(be.Tax),
		FormattedDiscount:          format.INR(be.Discount),
		FormattedTotal:             format.INR(be.Total),
		FormattedCreatedAt:         format.DateTime(be.CreatedAt.Time),
		FormattedEstimatedDelivery: format.OptionalDate(timestamp.Ptr(be.EstimatedDelivery)),
		TimeAgo:                    format.Compact(be.CreatedAt.Time, now),

		ProgressPercentage: ProgressPercentage(be.Status),
		Steps:              Steps(be),
		CanCancel:          canCancel(be.Status),
		CanTrack:           canTrack(be),
		CanReturn:          be.Status == StatusDelivered,
		Badges:             shared.Badges(be, detailBadges),
	}
	return fe
}

// ToCard builds the order history row.
func ToCard(be OrderBE) OrderCardFE {
	card := OrderCardFE{
		ID:                 be.ID,
		OrderNumber:        be.OrderNumber,
		Status:             be.Status,
		StatusLabel:        StatusLabel(be.Status),
		Total:              be.Total,
		FormattedTotal:     format.INR(be.Total),
		ItemCount:          itemCount(be.Items),
		CreatedAt:          be.CreatedAt.Time,
		FormattedCreatedAt: format.Date(be.CreatedAt.Time),
		ProgressPercentage: ProgressPercentage(be.Status),
		Badges:             shared.Badges(be, cardBadges),
	}
	if len(be.Items) > 0 {
		card.FirstItemName = be.Items[0].ProductName
		card.FirstItemImage = shared.Str(be.Items[0].ProductImage)
	}
	if extra := len(be.Items) - 1; extra > 0 {
		card.MoreItemsLabel = fmt.Sprintf("+%d more", extra)
	}
	return card
}

// ToFEs maps a batch of orders.
func ToFEs(in []OrderBE, now time.Time) []OrderFE {
	return shared.Map(in, func(be OrderBE) OrderFE { return ToFE(be, now) })
}

// ToCards maps a batch of orders to cards.
func ToCards(in []OrderBE) []OrderCardFE {
	return shared.Map(in, ToCard)
}

// ToBECreateRequest converts the checkout form.
func ToBECreateRequest(form OrderFormFE) CreateOrderRequestBE {
	return CreateOrderRequestBE{
		ShopID: form.ShopID,
		Items: shared.Map(form.Items, func(it OrderItemFormFE) CreateOrderItemRequestBE {
			return CreateOrderItemRequestBE{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Variant:   shared.OptString(it.Variant),
			}
		}),
		ShippingAddressID: form.ShippingAddressID,
		PaymentMethod:     form.PaymentMethod,
		ShippingMethod:    form.ShippingMethod,
		CouponCode:        shared.OptString(form.CouponCode),
		Notes:             shared.OptString(form.Notes),
	}
}

// ToBEUpdateRequest builds a sparse fulfilment patch.
func ToBEUpdateRequest(form OrderUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "status", form.Status)
	shared.Set(p, "paymentStatus", form.PaymentStatus)
	shared.Set(p, "trackingNumber", form.TrackingNumber)
	shared.Set(p, "shippingProvider", form.ShippingProvider)
	shared.Set(p, "cancellationReason", form.CancellationReason)
	shared.Set(p, "notes", form.Notes)
	shared.SetTime(p, "estimatedDelivery", form.EstimatedDelivery)
	return p
}

// StatusLabel returns the display label of s; unknown values pass through.
func StatusLabel(s Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ProgressPercentage maps s onto the fixed progress scale.
func ProgressPercentage(s Status) int {
	return progressByStatus[s]
}

// Steps builds the progress tracker. Cancelled orders get a two-step
// tracker; everything else gets the five fulfilment steps.
func Steps(be OrderBE) []Step {
	if be.Status == StatusCancelled {
		reason := shared.Str(be.CancellationReason)
		if reason == "" {
			reason = "Order cancelled"
		}
		placed := be.CreatedAt.Time
		return []Step{
			{Label: stepLabels[0], State: StepCompleted, Date: &placed},
			{Label: "Cancelled", Description: reason, State: StepCompleted, Date: timestamp.Ptr(be.CancelledAt)},
		}
	}

	current := ordinal(be.Status)
	placed := be.CreatedAt.Time
	dates := []*time.Time{&placed, timestamp.Ptr(be.ConfirmedAt), nil, timestamp.Ptr(be.ShippedAt), timestamp.Ptr(be.DeliveredAt)}

	steps := make([]Step, len(stepOrder))
	for i := range stepOrder {
		steps[i] = Step{Label: stepLabels[i], State: stepState(i, current, be.Status), Date: dates[i]}
	}
	return steps
}

func stepState(step, current int, s Status) StepState {
	// Delivered and refunded orders have finished every step.
	if s == StatusDelivered || s == StatusRefunded {
		return StepCompleted
	}
	switch {
	case step < current:
		return StepCompleted
	case step == current:
		return StepCurrent
	default:
		return StepPending
	}
}

func ordinal(s Status) int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return 0
}

func canCancel(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

func canTrack(be OrderBE) bool {
	return shared.Present(be.TrackingNumber) && be.Status == StatusShipped
}

func itemCount(items []OrderItemBE) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func toItemFE(it OrderItemBE) OrderItemFE {
	lineTotal := it.Price * float64(it.Quantity)
	return OrderItemFE{
		ProductID:         it.ProductID,
		ProductName:       it.ProductName,
		ProductImage:      shared.Str(it.ProductImage),
		Variant:           shared.Str(it.Variant),
		Quantity:          it.Quantity,
		Price:             it.Price,
		LineTotal:         lineTotal,
		FormattedPrice:    format.INR(it.Price),
		FormattedSubtotal: format.INR(lineTotal),
	}
}

func shippingCostLabel(cost float64) string {
	if cost == 0 {
		return "Free"
	}
	return format.INR(cost)
}
