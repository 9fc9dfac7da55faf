package realtime

import "github.com/dormhq/dorm-ledger/pkg/models"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeLedgerUpdate is for messages that report a bill or fine balance change.
	MessageTypeLedgerUpdate MessageType = "ledgerUpdate"

	// MessageTypeEventPaymentUpdate is for messages that report an event payment change.
	MessageTypeEventPaymentUpdate MessageType = "eventPaymentUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// LedgerUpdatePayload is the payload for a ledgerUpdate message.
type LedgerUpdatePayload struct {
	EntryID    string               `json:"entry_id"`
	ResidentID string               `json:"resident_id"`
	Kind       models.LedgerKind    `json:"kind"`
	AmountPaid int64                `json:"amount_paid"`
	TotalDue   int64                `json:"total_due"`
	Status     models.PaymentStatus `json:"status"`
}

// EventPaymentUpdatePayload is the payload for an eventPaymentUpdate message.
type EventPaymentUpdatePayload struct {
	EventID    string               `json:"event_id"`
	ResidentID string               `json:"resident_id"`
	AmountPaid int64                `json:"amount_paid"`
	Status     models.PaymentStatus `json:"status"`
}
