// Package returns maps return requests between backend documents and
// view-models.
package returns

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Status is the return workflow state.
type Status string

const (
	StatusRequested   Status = "requested"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusShippedBack Status = "shipped_back"
	StatusReceived    Status = "received"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// Reason is why the buyer returns the item.
type Reason string

const (
	ReasonDefective      Reason = "defective"
	ReasonWrongItem      Reason = "wrong_item"
	ReasonNotAsDescribed Reason = "not_as_described"
	ReasonDamaged        Reason = "damaged"
	ReasonChangedMind    Reason = "changed_mind"
	ReasonOther          Reason = "other"
)

// ReturnBE is the return request document.
type ReturnBE struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"orderId"`
	OrderItemID    *string         `json:"orderItemId"`
	UserID         string          `json:"userId"`
	ShopID         string          `json:"shopId"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	ProductImage   *string         `json:"productImage"`
	Reason         Reason          `json:"reason"`
	Description    *string         `json:"description"`
	Images         []string        `json:"images"`
	Status         Status          `json:"status"`
	RefundAmount   *float64        `json:"refundAmount"`
	AdminNotes     *string         `json:"adminNotes"`
	TrackingNumber *string         `json:"trackingNumber"`
	CreatedAt      timestamp.Time  `json:"createdAt"`
	UpdatedAt      *timestamp.Time `json:"updatedAt"`
	ApprovedAt     *timestamp.Time `json:"approvedAt"`
	CompletedAt    *timestamp.Time `json:"completedAt"`
}

// ReturnFE is the return detail view-model.
type ReturnFE struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"orderId"`
	OrderItemID    string     `json:"orderItemId"`
	UserID         string     `json:"userId"`
	ShopID         string     `json:"shopId"`
	ProductID      string     `json:"productId"`
	ProductName    string     `json:"productName"`
	ProductImage   string     `json:"productImage"`
	Reason         Reason     `json:"reason"`
	ReasonLabel    string     `json:"reasonLabel"`
	Description    string     `json:"description"`
	Images         []string   `json:"images"`
	Status         Status     `json:"status"`
	StatusLabel    string     `json:"statusLabel"`
	StatusVariant  string     `json:"statusVariant"`
	RefundAmount   *float64   `json:"refundAmount"`
	AdminNotes     string     `json:"adminNotes"`
	TrackingNumber string     `json:"trackingNumber"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
	ApprovedAt     *time.Time `json:"approvedAt"`
	CompletedAt    *time.Time `json:"completedAt"`

	FormattedRefundAmount string `json:"formattedRefundAmount"`
	FormattedCreatedAt    string `json:"formattedCreatedAt"`
	TimeAgo               string `json:"timeAgo"`
}

// IsOpen reports whether the return still awaits a seller decision or the
// buyer's shipment.
func (r ReturnFE) IsOpen() bool {
	return r.Status == StatusRequested || r.Status == StatusApproved
}

// IsCompleted reports whether the refund has been issued.
func (r ReturnFE) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// CanCancel reports whether the buyer may still withdraw the request.
func (r ReturnFE) CanCancel() bool {
	return r.Status == StatusRequested
}

// ReturnCardFE is the returns list row.
type ReturnCardFE struct {
	ID                    string `json:"id"`
	OrderID               string `json:"orderId"`
	ProductName           string `json:"productName"`
	ProductImage          string `json:"productImage"`
	ReasonLabel           string `json:"reasonLabel"`
	Status                Status `json:"status"`
	StatusLabel           string `json:"statusLabel"`
	StatusVariant         string `json:"statusVariant"`
	FormattedRefundAmount string `json:"formattedRefundAmount"`
	TimeAgo               string `json:"timeAgo"`
}

// ReturnFormFE is the buyer's return request form.
type ReturnFormFE struct {
	OrderID     string   `json:"orderId"`
	OrderItemID string   `json:"orderItemId"`
	ProductID   string   `json:"productId"`
	Reason      Reason   `json:"reason"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// CreateReturnRequestBE is the creation payload.
type CreateReturnRequestBE struct {
	OrderID     string   `json:"orderId"`
	OrderItemID *string  `json:"orderItemId,omitempty"`
	ProductID   string   `json:"productId"`
	Reason      Reason   `json:"reason"`
	Description *string  `json:"description,omitempty"`
	Images      []string `json:"images"`
}

// ReturnUpdateFormFE is the seller/admin processing form.
type ReturnUpdateFormFE struct {
	Status         *Status  `json:"status"`
	RefundAmount   *float64 `json:"refundAmount"`
	AdminNotes     *string  `json:"adminNotes"`
	TrackingNumber *string  `json:"trackingNumber"`
}
