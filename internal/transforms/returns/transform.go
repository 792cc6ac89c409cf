package returns

import (
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

var statusLabels = map[Status]string{
	StatusRequested:   "Requested",
	StatusApproved:    "Approved",
	StatusRejected:    "Rejected",
	StatusShippedBack: "Shipped Back",
	StatusReceived:    "Received",
	StatusCompleted:   "Completed",
	StatusCancelled:   "Cancelled",
}

var statusVariants = map[Status]string{
	StatusRequested:   "info",
	StatusApproved:    "success",
	StatusRejected:    "error",
	StatusShippedBack: "warning",
	StatusReceived:    "info",
	StatusCompleted:   "success",
	StatusCancelled:   "default",
}

var reasonLabels = map[Reason]string{
	ReasonDefective:      "Defective Product",
	ReasonWrongItem:      "Wrong Item Received",
	ReasonNotAsDescribed: "Not as Described",
	ReasonDamaged:        "Damaged in Transit",
	ReasonChangedMind:    "Changed Mind",
	ReasonOther:          "Other",
}

// StatusLabel returns the display label of s; unknown values pass through.
func StatusLabel(s Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ReasonLabel returns the display label of r; unknown values pass through.
func ReasonLabel(r Reason) string {
	if l, ok := reasonLabels[r]; ok {
		return l
	}
	return string(r)
}

func statusVariant(s Status) string {
	if v, ok := statusVariants[s]; ok {
		return v
	}
	return "default"
}

// ToFE builds the return detail view at now.
func ToFE(be ReturnBE, now time.Time) ReturnFE {
	return ReturnFE{
		ID:             be.ID,
		OrderID:        be.OrderID,
		OrderItemID:    shared.Str(be.OrderItemID),
		UserID:         be.UserID,
		ShopID:         be.ShopID,
		ProductID:      be.ProductID,
		ProductName:    be.ProductName,
		ProductImage:   shared.Str(be.ProductImage),
		Reason:         be.Reason,
		ReasonLabel:    ReasonLabel(be.Reason),
		Description:    shared.Str(be.Description),
		Images:         shared.Strings(be.Images),
		Status:         be.Status,
		StatusLabel:    StatusLabel(be.Status),
		StatusVariant:  statusVariant(be.Status),
		RefundAmount:   be.RefundAmount,
		AdminNotes:     shared.Str(be.AdminNotes),
		TrackingNumber: shared.Str(be.TrackingNumber),
		CreatedAt:      be.CreatedAt.Time,
		UpdatedAt:      timestamp.Ptr(be.UpdatedAt),
		ApprovedAt:     timestamp.Ptr(be.ApprovedAt),
		CompletedAt:    timestamp.Ptr(be.CompletedAt),

		FormattedRefundAmount: formattedRefund(be.RefundAmount),
		FormattedCreatedAt:    format.DateTime(be.CreatedAt.Time),
		TimeAgo:               format.Verbose(be.CreatedAt.Time, now),
	}
}

// ToCard builds the list row at now.
func ToCard(be ReturnBE, now time.Time) ReturnCardFE {
	return ReturnCardFE{
		ID:                    be.ID,
		OrderID:               be.OrderID,
		ProductName:           be.ProductName,
		ProductImage:          shared.Str(be.ProductImage),
		ReasonLabel:           ReasonLabel(be.Reason),
		Status:                be.Status,
		StatusLabel:           StatusLabel(be.Status),
		StatusVariant:         statusVariant(be.Status),
		FormattedRefundAmount: formattedRefund(be.RefundAmount),
		TimeAgo:               format.Verbose(be.CreatedAt.Time, now),
	}
}

// ToFEs maps a batch of returns.
func ToFEs(in []ReturnBE, now time.Time) []ReturnFE {
	return shared.Map(in, func(be ReturnBE) ReturnFE { return ToFE(be, now) })
}

// ToCards maps a batch of returns to rows.
func ToCards(in []ReturnBE, now time.Time) []ReturnCardFE {
	return shared.Map(in, func(be ReturnBE) ReturnCardFE { return ToCard(be, now) })
}

// ToBECreateRequest converts the buyer's request form.
func ToBECreateRequest(form ReturnFormFE) CreateReturnRequestBE {
	return CreateReturnRequestBE{
		OrderID:     form.OrderID,
		OrderItemID: shared.OptString(form.OrderItemID),
		ProductID:   form.ProductID,
		Reason:      form.Reason,
		Description: shared.OptString(form.Description),
		Images:      shared.Strings(form.Images),
	}
}

// ToBEUpdateRequest builds a sparse processing patch.
func ToBEUpdateRequest(form ReturnUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "status", form.Status)
	shared.Set(p, "refundAmount", form.RefundAmount)
	shared.Set(p, "adminNotes", form.AdminNotes)
	shared.Set(p, "trackingNumber", form.TrackingNumber)
	return p
}

func formattedRefund(amount *float64) string {
	if amount == nil {
		return ""
	}
	return format.INRDecimal(*amount)
}
