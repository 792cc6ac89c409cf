package ticket

import (
	"time"

	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// Category is the support topic.
type Category string

const (
	CategoryOrderIssue      Category = "order_issue"
	CategoryReturnRefund    Category = "return_refund"
	CategoryProductQuestion Category = "product_question"
	CategoryAccount         Category = "account"
	CategoryPayment         Category = "payment"
	CategoryOther           Category = "other"
)

// Priority is the triage level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status is the ticket workflow state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusEscalated  Status = "escalated"
)

// SenderRole identifies who wrote a message.
type SenderRole string

const (
	SenderUser    SenderRole = "user"
	SenderSeller  SenderRole = "seller"
	SenderSupport SenderRole = "support"
	SenderAdmin   SenderRole = "admin"
)

// TicketBE is the support ticket document.
type TicketBE struct {
	ID           string          `json:"id"`
	TicketNumber string          `json:"ticketNumber"`
	UserID       string          `json:"userId"`
	OrderID      *string         `json:"orderId"`
	ShopID       *string         `json:"shopId"`
	Subject      string          `json:"subject"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	Priority     Priority        `json:"priority"`
	Status       Status          `json:"status"`
	AssignedTo   *string         `json:"assignedTo"`
	Attachments  []string        `json:"attachments"`
	MessageCount int             `json:"messageCount"`
	CreatedAt    timestamp.Time  `json:"createdAt"`
	UpdatedAt    timestamp.Time  `json:"updatedAt"`
	ResolvedAt   *timestamp.Time `json:"resolvedAt"`
	ClosedAt     *timestamp.Time `json:"closedAt"`
}

// TicketFE is the ticket detail view-model.
type TicketFE struct {
	ID            string     `json:"id"`
	TicketNumber  string     `json:"ticketNumber"`
	UserID        string     `json:"userId"`
	OrderID       string     `json:"orderId"`
	ShopID        string     `json:"shopId"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	CategoryLabel string     `json:"categoryLabel"`
	Priority      Priority   `json:"priority"`
	Status        Status     `json:"status"`
	AssignedTo    string     `json:"assignedTo"`
	Attachments   []string   `json:"attachments"`
	MessageCount  int        `json:"messageCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ResolvedAt    *time.Time `json:"resolvedAt"`
	ClosedAt      *time.Time `json:"closedAt"`

	PriorityBadge      shared.Badge `json:"priorityBadge"`
	StatusBadge        shared.Badge `json:"statusBadge"`
	FormattedCreatedAt string       `json:"formattedCreatedAt"`
	TimeAgo            string       `json:"timeAgo"`
	LastUpdated        string       `json:"lastUpdated"`
	ResponseTime       string       `json:"responseTime"`
	ResolutionTime     string       `json:"resolutionTime"`
	MessageCountLabel  string       `json:"messageCountLabel"`

	IsOpen       bool `json:"isOpen"`
	IsResolved   bool `json:"isResolved"`
	IsClosed     bool `json:"isClosed"`
	IsEscalated  bool `json:"isEscalated"`
	IsAssigned   bool `json:"isAssigned"`
	CanReply     bool `json:"canReply"`
	CanClose     bool `json:"canClose"`
	IsYourTicket bool `json:"isYourTicket"`
}

// TicketCardFE is the ticket inbox row.
type TicketCardFE struct {
	ID                string       `json:"id"`
	TicketNumber      string       `json:"ticketNumber"`
	Subject           string       `json:"subject"`
	CategoryLabel     string       `json:"categoryLabel"`
	PriorityBadge     shared.Badge `json:"priorityBadge"`
	StatusBadge       shared.Badge `json:"statusBadge"`
	MessageCountLabel string       `json:"messageCountLabel"`
	TimeAgo           string       `json:"timeAgo"`
}

// MessageBE is one message in a ticket thread.
type MessageBE struct {
	ID          string         `json:"id"`
	TicketID    string         `json:"ticketId"`
	SenderID    string         `json:"senderId"`
	SenderName  *string        `json:"senderName"`
	SenderRole  SenderRole     `json:"senderRole"`
	Message     string         `json:"message"`
	Attachments []string       `json:"attachments"`
	IsInternal  bool           `json:"isInternal"`
	CreatedAt   timestamp.Time `json:"createdAt"`
}

// MessageFE is a rendered thread message.
type MessageFE struct {
	ID                 string     `json:"id"`
	TicketID           string     `json:"ticketId"`
	SenderID           string     `json:"senderId"`
	SenderName         string     `json:"senderName"`
	SenderRole         SenderRole `json:"senderRole"`
	Message            string     `json:"message"`
	Attachments        []string   `json:"attachments"`
	IsInternal         bool       `json:"isInternal"`
	IsStaff            bool       `json:"isStaff"`
	IsYourMessage      bool       `json:"isYourMessage"`
	CreatedAt          time.Time  `json:"createdAt"`
	FormattedCreatedAt string     `json:"formattedCreatedAt"`
	TimeAgo            string     `json:"timeAgo"`
}

// TicketFormFE is the new ticket form.
type TicketFormFE struct {
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority"`
	OrderID     string   `json:"orderId"`
	ShopID      string   `json:"shopId"`
	Attachments []string `json:"attachments"`
}

// CreateTicketRequestBE is the creation payload.
type CreateTicketRequestBE struct {
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority,omitempty"`
	OrderID     *string  `json:"orderId,omitempty"`
	ShopID      *string  `json:"shopId,omitempty"`
	Attachments []string `json:"attachments"`
}

// TicketUpdateFormFE is the agent's triage form.
type TicketUpdateFormFE struct {
	Status     *Status   `json:"status"`
	Priority   *Priority `json:"priority"`
	Category   *Category `json:"category"`
	AssignedTo *string   `json:"assignedTo"`
}

// ReplyFormFE is the thread reply box.
type ReplyFormFE struct {
	Message     string   `json:"message"`
	Attachments []string `json:"attachments"`
	IsInternal  bool     `json:"isInternal"`
}

// ReplyRequestBE is the reply payload.
type ReplyRequestBE struct {
	Message     string   `json:"message"`
	Attachments []string `json:"attachments"`
	IsInternal  bool     `json:"isInternal,omitempty"`
}
