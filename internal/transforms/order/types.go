package order

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Status is the order fulfilment state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// PaymentMethod is how the buyer pays.
type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "cod"
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentWallet     PaymentMethod = "wallet"
)

// PaymentStatus is the state of the payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ShippingMethod is the delivery speed.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

// StepState is the state of one progress step.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// AddressBE is a shipping address snapshot.
type AddressBE struct {
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
}

// OrderItemBE is one line of an order.
type OrderItemBE struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage *string `json:"productImage"`
	Variant      *string `json:"variant"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// OrderBE is the order document.
type OrderBE struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"orderNumber"`
	UserID             string          `json:"userId"`
	ShopID             string          `json:"shopId"`
	Items              []OrderItemBE   `json:"items"`
	Subtotal           float64         `json:"subtotal"`
	ShippingCost       float64         `json:"shippingCost"`
	Tax                float64         `json:"tax"`
	Discount           float64         `json:"discount"`
	Total              float64         `json:"total"`
	CouponCode         *string         `json:"couponCode"`
	Status             Status          `json:"status"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	PaymentStatus      PaymentStatus   `json:"paymentStatus"`
	ShippingMethod     ShippingMethod  `json:"shippingMethod"`
	ShippingAddress    *AddressBE      `json:"shippingAddress"`
	TrackingNumber     *string         `json:"trackingNumber"`
	ShippingProvider   *string         `json:"shippingProvider"`
	CancellationReason *string         `json:"cancellationReason"`
	Notes              *string         `json:"notes"`
	CreatedAt          timestamp.Time  `json:"createdAt"`
	UpdatedAt          timestamp.Time  `json:"updatedAt"`
	ConfirmedAt        *timestamp.Time `json:"confirmedAt"`
	ShippedAt          *timestamp.Time `json:"shippedAt"`
	DeliveredAt        *timestamp.Time `json:"deliveredAt"`
	CancelledAt        *timestamp.Time `json:"cancelledAt"`
	EstimatedDelivery  *timestamp.Time `json:"estimatedDelivery"`
}

// OrderItemFE is a formatted order line.
type OrderItemFE struct {
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	ProductImage      string  `json:"productImage"`
	Variant           string  `json:"variant"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
	LineTotal         float64 `json:"lineTotal"`
	FormattedPrice    string  `json:"formattedPrice"`
	FormattedSubtotal string  `json:"formattedSubtotal"`
}

// Step is one entry of the order progress tracker.
type Step struct {
	Label       string     `json:"label"`
	Description string     `json:"description,omitempty"`
	State       StepState  `json:"state"`
	Date        *time.Time `json:"date,omitempty"`
}

// OrderFE is the order detail view-model.
type OrderFE struct {
	ID                 string         `json:"id"`
	OrderNumber        string         `json:"orderNumber"`
	UserID             string         `json:"userId"`
	ShopID             string         `json:"shopId"`
	Items              []OrderItemFE  `json:"items"`
	ItemCount          int            `json:"itemCount"`
	Subtotal           float64        `json:"subtotal"`
	ShippingCost       float64        `json:"shippingCost"`
	Tax                float64        `json:"tax"`
	Discount           float64        `json:"discount"`
	Total              float64        `json:"total"`
	CouponCode         string         `json:"couponCode"`
	Status             Status         `json:"status"`
	StatusLabel        string         `json:"statusLabel"`
	PaymentMethod      PaymentMethod  `json:"paymentMethod"`
	PaymentStatus      PaymentStatus  `json:"paymentStatus"`
	ShippingMethod     ShippingMethod `json:"shippingMethod"`
	ShippingAddress    *AddressBE     `json:"shippingAddress"`
	TrackingNumber     string         `json:"trackingNumber"`
	ShippingProvider   string         `json:"shippingProvider"`
	CancellationReason string         `json:"cancellationReason"`
	Notes              string         `json:"notes"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	ShippedAt          *time.Time     `json:"shippedAt"`
	DeliveredAt        *time.Time     `json:"deliveredAt"`
	EstimatedDelivery  *time.Time     `json:"estimatedDelivery"`

	FormattedSubtotal          string `json:"formattedSubtotal"`
	FormattedShippingCost      string `json:"formattedShippingCost"`
	FormattedTax               string `json:"formattedTax"`
	FormattedDiscount          string `json:"formattedDiscount"`
	FormattedTotal             string `json:"formattedTotal"`
	FormattedCreatedAt         string `json:"formattedCreatedAt"`
	FormattedEstimatedDelivery string `json:"formattedEstimatedDelivery"`
	TimeAgo                    string `json:"timeAgo"`

	ProgressPercentage int      `json:"progressPercentage"`
	Steps              []Step   `json:"steps"`
	CanCancel          bool     `json:"canCancel"`
	CanTrack           bool     `json:"canTrack"`
	CanReturn          bool     `json:"canReturn"`
	Badges             []string `json:"badges"`
}

// OrderCardFE is the order history row.
type OrderCardFE struct {
	ID                 string    `json:"id"`
	OrderNumber        string    `json:"orderNumber"`
	Status             Status    `json:"status"`
	StatusLabel        string    `json:"statusLabel"`
	Total              float64   `json:"total"`
	FormattedTotal     string    `json:"formattedTotal"`
	ItemCount          int       `json:"itemCount"`
	FirstItemName      string    `json:"firstItemName"`
	FirstItemImage     string    `json:"firstItemImage"`
	MoreItemsLabel     string    `json:"moreItemsLabel"`
	CreatedAt          time.Time `json:"createdAt"`
	FormattedCreatedAt string    `json:"formattedCreatedAt"`
	ProgressPercentage int       `json:"progressPercentage"`
	Badges             []string  `json:"badges"`
}

// OrderItemFormFE is one cart line submitted at checkout.
type OrderItemFormFE struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant"`
}

// OrderFormFE is the checkout form.
type OrderFormFE struct {
	ShopID            string            `json:"shopId"`
	Items             []OrderItemFormFE `json:"items"`
	ShippingAddressID string            `json:"shippingAddressId"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod"`
	ShippingMethod    ShippingMethod    `json:"shippingMethod"`
	CouponCode        string            `json:"couponCode"`
	Notes             string            `json:"notes"`
}

// CreateOrderItemRequestBE is one line of the creation payload.
type CreateOrderItemRequestBE struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant,omitempty"`
}

// CreateOrderRequestBE is the checkout payload.
type CreateOrderRequestBE struct {
	ShopID            string                     `json:"shopId"`
	Items             []CreateOrderItemRequestBE `json:"items"`
	ShippingAddressID string                     `json:"shippingAddressId"`
	PaymentMethod     PaymentMethod              `json:"paymentMethod"`
	ShippingMethod    ShippingMethod             `json:"shippingMethod"`
	CouponCode        *string                    `json:"couponCode,omitempty"`
	Notes             *string                    `json:"notes,omitempty"`
}

// OrderUpdateFormFE is the seller/admin fulfilment form.
type OrderUpdateFormFE struct {
	Status             *Status         `json:"status"`
	PaymentStatus      *PaymentStatus  `json:"paymentStatus"`
	TrackingNumber     *string         `json:"trackingNumber"`
	ShippingProvider   *string         `json:"shippingProvider"`
	CancellationReason *string         `json:"cancellationReason"`
	Notes              *string         `json:"notes"`
	EstimatedDelivery  *timestamp.Time `json:"estimatedDelivery"`
}
