package returns

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

func TestLabels(t *testing.T) {
	statuses := map[Status]string{
		StatusRequested:   "Requested",
		StatusApproved:    "Approved",
		StatusRejected:    "Rejected",
		StatusShippedBack: "Shipped Back",
		StatusReceived:    "Received",
		StatusCompleted:   "Completed",
		StatusCancelled:   "Cancelled",
	}
	for s, label := range statuses {
		assert.Equal(t, label, StatusLabel(s))
	}

	reasons := map[Reason]string{
		ReasonDefective:      "Defective Product",
		ReasonWrongItem:      "Wrong Item Received",
		ReasonNotAsDescribed: "Not as Described",
		ReasonDamaged:        "Damaged in Transit",
		ReasonChangedMind:    "Changed Mind",
		ReasonOther:          "Other",
	}
	for r, label := range reasons {
		assert.Equal(t, label, ReasonLabel(r))
	}

	assert.Equal(t, "on_hold", StatusLabel("on_hold"))
	assert.Equal(t, "lost", ReasonLabel("lost"))
}

func TestStateMethods(t *testing.T) {
	tests := []struct {
		status    Status
		open      bool
		completed bool
		cancel    bool
	}{
		{status: StatusRequested, open: true, cancel: true},
		{status: StatusApproved, open: true},
		{status: StatusRejected},
		{status: StatusShippedBack},
		{status: StatusReceived},
		{status: StatusCompleted, completed: true},
		{status: StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fe := ToFE(ReturnBE{Status: tt.status}, now)
			assert.Equal(t, tt.open, fe.IsOpen())
			assert.Equal(t, tt.completed, fe.IsCompleted())
			assert.Equal(t, tt.cancel, fe.CanCancel())
		})
	}
}

func TestToFE(t *testing.T) {
	fe := ToFE(ReturnBE{
		ID:           "r1",
		OrderID:      "ord-1",
		ProductName:  "Kurta",
		Reason:       ReasonDamaged,
		Status:       StatusApproved,
		RefundAmount: ptr(1499.5),
		CreatedAt:    timestamp.Of(now.Add(-2 * time.Hour)),
	}, now)
	assert.Equal(t, "₹1,499.50", fe.FormattedRefundAmount)
	assert.Equal(t, "Damaged in Transit", fe.ReasonLabel)
	assert.Equal(t, "success", fe.StatusVariant)
	assert.Equal(t, "2 hours ago", fe.TimeAgo)

	card := ToCard(ReturnBE{Reason: ReasonWrongItem, CreatedAt: timestamp.Of(now.Add(-time.Minute))}, now)
	assert.Equal(t, "Wrong Item Received", card.ReasonLabel)
	assert.Equal(t, "1 minute ago", card.TimeAgo)
	assert.Equal(t, "", card.FormattedRefundAmount)
}

func TestTotality(t *testing.T) {
	var doc ReturnBE
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r","images":null,"refundAmount":null,"createdAt":{"_seconds":1717243200,"_nanoseconds":0}}`), &doc))
	fe := ToFE(doc, now)
	assert.NotNil(t, fe.Images)
	assert.Nil(t, fe.RefundAmount)
	assert.Equal(t, "Just now", fe.TimeAgo)
	assert.Equal(t, "default", fe.StatusVariant)
	assert.Empty(t, ToFEs(nil, now))
	assert.Empty(t, ToCards(nil, now))
}

func TestToBECreateRequest(t *testing.T) {
	req := ToBECreateRequest(ReturnFormFE{OrderID: "ord-1", ProductID: "p1", Reason: ReasonDefective})
	assert.Nil(t, req.OrderItemID)
	assert.Nil(t, req.Description)
	assert.NotNil(t, req.Images)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"status"`)
	assert.NotContains(t, string(b), `"description"`)
}

func TestToBEUpdateRequest(t *testing.T) {
	approved := StatusApproved
	p := ToBEUpdateRequest(ReturnUpdateFormFE{Status: &approved, RefundAmount: ptr(999.0), AdminNotes: ptr("")})
	require.Len(t, p, 3)
	assert.Equal(t, StatusApproved, p["status"])
	assert.Equal(t, 999.0, p["refundAmount"])
	assert.Equal(t, "", p["adminNotes"])
}
