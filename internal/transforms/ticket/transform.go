package ticket

import (
	"strings"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

var categoryLabels = map[Category]string{
	CategoryOrderIssue:      "Order Issue",
	CategoryReturnRefund:    "Return & Refund",
	CategoryProductQuestion: "Product Question",
	CategoryAccount:         "Account",
	CategoryPayment:         "Payment",
	CategoryOther:           "Other",
}

var priorityBadges = map[Priority]shared.Badge{
	PriorityLow:    {Text: "Low", Variant: "default"},
	PriorityMedium: {Text: "Medium", Variant: "info"},
	PriorityHigh:   {Text: "High", Variant: "warning"},
	PriorityUrgent: {Text: "Urgent", Variant: "error"},
}

var statusBadges = map[Status]shared.Badge{
	StatusOpen:       {Text: "Open", Variant: "info"},
	StatusInProgress: {Text: "In Progress", Variant: "warning"},
	StatusResolved:   {Text: "Resolved", Variant: "success"},
	StatusClosed:     {Text: "Closed", Variant: "default"},
	StatusEscalated:  {Text: "Escalated", Variant: "error"},
}

// CategoryLabel returns the display label of c; unknown values pass through.
func CategoryLabel(c Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// PriorityBadge returns the badge for p.
func PriorityBadge(p Priority) shared.Badge {
	if b, ok := priorityBadges[p]; ok {
		return b
	}
	return shared.Badge{Text: string(p), Variant: "default"}
}

// StatusBadge returns the badge for s.
func StatusBadge(s Status) shared.Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return shared.Badge{Text: string(s), Variant: "default"}
}

// ToFE builds the ticket detail view as seen by actingUserID at now.
func ToFE(be TicketBE, now time.Time, actingUserID string) TicketFE {
	isOpen := be.Status == StatusOpen
	isResolved := be.Status == StatusResolved
	isClosed := be.Status == StatusClosed

	return TicketFE{
		ID:            be.ID,
		TicketNumber:  be.TicketNumber,
		UserID:        be.UserID,
		OrderID:       shared.Str(be.OrderID),
		ShopID:        shared.Str(be.ShopID),
		Subject:       be.Subject,
		Description:   be.Description,
		Category:      be.Category,
		CategoryLabel: CategoryLabel(be.Category),
		Priority:      be.Priority,
		Status:        be.Status,
		AssignedTo:    shared.Str(be.AssignedTo),
		Attachments:   shared.Strings(be.Attachments),
		MessageCount:  be.MessageCount,
		CreatedAt:     be.CreatedAt.Time,
		UpdatedAt:     be.UpdatedAt.Time,
		ResolvedAt:    timestamp.Ptr(be.ResolvedAt),
		ClosedAt:      timestamp.Ptr(be.ClosedAt),

		PriorityBadge:      PriorityBadge(be.Priority),
		StatusBadge:        StatusBadge(be.Status),
		FormattedCreatedAt: format.DateTime(be.CreatedAt.Time),
		TimeAgo:            format.Verbose(be.CreatedAt.Time, now),
		LastUpdated:        format.Verbose(be.UpdatedAt.Time, now),
		ResponseTime:       responseTime(be),
		ResolutionTime:     resolutionTime(be),
		MessageCountLabel:  format.Plural(be.MessageCount, "message", "messages"),

		IsOpen:       isOpen,
		IsResolved:   isResolved,
		IsClosed:     isClosed,
		IsEscalated:  be.Status == StatusEscalated,
		IsAssigned:   shared.Present(be.AssignedTo),
		CanReply:     !isClosed,
		CanClose:     isOpen || be.Status == StatusInProgress || isResolved,
		IsYourTicket: actingUserID != "" && be.UserID == actingUserID,
	}
}

// ToCard builds the inbox row at now.
func ToCard(be TicketBE, now time.Time) TicketCardFE {
	return TicketCardFE{
		ID:                be.ID,
		TicketNumber:      be.TicketNumber,
		Subject:           be.Subject,
		CategoryLabel:     CategoryLabel(be.Category),
		PriorityBadge:     PriorityBadge(be.Priority),
		StatusBadge:       StatusBadge(be.Status),
		MessageCountLabel: format.Plural(be.MessageCount, "message", "messages"),
		TimeAgo:           format.Verbose(be.UpdatedAt.Time, now),
	}
}

// ToFEs maps a batch of tickets.
func ToFEs(in []TicketBE, now time.Time, actingUserID string) []TicketFE {
	return shared.Map(in, func(be TicketBE) TicketFE { return ToFE(be, now, actingUserID) })
}

// ToCards maps a batch of tickets to rows.
func ToCards(in []TicketBE, now time.Time) []TicketCardFE {
	return shared.Map(in, func(be TicketBE) TicketCardFE { return ToCard(be, now) })
}

// ToMessageFE renders a thread message as seen by actingUserID at now.
func ToMessageFE(be MessageBE, now time.Time, actingUserID string) MessageFE {
	isStaff := be.SenderRole == SenderSupport || be.SenderRole == SenderAdmin
	return MessageFE{
		ID:                 be.ID,
		TicketID:           be.TicketID,
		SenderID:           be.SenderID,
		SenderName:         senderName(be, isStaff),
		SenderRole:         be.SenderRole,
		Message:            be.Message,
		Attachments:        shared.Strings(be.Attachments),
		IsInternal:         be.IsInternal,
		IsStaff:            isStaff,
		IsYourMessage:      actingUserID != "" && be.SenderID == actingUserID,
		CreatedAt:          be.CreatedAt.Time,
		FormattedCreatedAt: format.DateTime(be.CreatedAt.Time),
		TimeAgo:            format.Verbose(be.CreatedAt.Time, now),
	}
}

// ToMessageFEs maps a thread.
func ToMessageFEs(in []MessageBE, now time.Time, actingUserID string) []MessageFE {
	return shared.Map(in, func(be MessageBE) MessageFE { return ToMessageFE(be, now, actingUserID) })
}

// ToBECreateRequest converts the new ticket form.
func ToBECreateRequest(form TicketFormFE) CreateTicketRequestBE {
	return CreateTicketRequestBE{
		Subject:     strings.TrimSpace(form.Subject),
		Description: form.Description,
		Category:    form.Category,
		Priority:    form.Priority,
		OrderID:     shared.OptString(form.OrderID),
		ShopID:      shared.OptString(form.ShopID),
		Attachments: shared.Strings(form.Attachments),
	}
}

// ToBEUpdateRequest builds a sparse triage patch.
func ToBEUpdateRequest(form TicketUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "status", form.Status)
	shared.Set(p, "priority", form.Priority)
	shared.Set(p, "category", form.Category)
	shared.Set(p, "assignedTo", form.AssignedTo)
	return p
}

// ToBEReplyRequest converts the reply box.
func ToBEReplyRequest(form ReplyFormFE) ReplyRequestBE {
	return ReplyRequestBE{
		Message:     strings.TrimSpace(form.Message),
		Attachments: shared.Strings(form.Attachments),
		IsInternal:  form.IsInternal,
	}
}

func responseTime(be TicketBE) string {
	if be.Status == StatusOpen || be.Status == "" || !be.UpdatedAt.After(be.CreatedAt.Time) {
		return ""
	}
	return format.Duration(be.UpdatedAt.Sub(be.CreatedAt.Time))
}

func resolutionTime(be TicketBE) string {
	if be.ResolvedAt == nil {
		return ""
	}
	return format.Duration(be.ResolvedAt.Sub(be.CreatedAt.Time))
}

func senderName(be MessageBE, isStaff bool) string {
	return shared.Resolve("User",
		shared.Fallback{When: func() bool { return shared.Present(be.SenderName) }, Value: func() string { return strings.TrimSpace(*be.SenderName) }},
		shared.Fallback{When: func() bool { return isStaff }, Value: func() string { return "Support Team" }},
	)
}
