package storage

import (
	"context"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// EventPaymentInput describes one tendered payment toward an event charge.
type EventPaymentInput struct {
	EventID    string
	ResidentID string
	Tendered   int64 // centavos
	Method     models.PaymentMethod
	PaidAt     time.Time
	Notes      string
}

// EventStore defines the interface for event charges and their per-resident
// running-total payment records.
type EventStore interface {
	// CreateEvent adds a new event charge.
	CreateEvent(ctx context.Context, event *models.EventCharge) (*models.EventCharge, error)

	// GetEvent retrieves an event charge by id.
	GetEvent(ctx context.Context, eventID string) (*models.EventCharge, error)

	// ListActiveEvents retrieves all active event charges.
	ListActiveEvents(ctx context.Context) ([]models.EventCharge, error)

	// RecordEventPayment upserts the single (event, resident) payment record: the
	// tendered amount is added to the running total, capped at the event's amount
	// due, and the status rederived, atomically. A second record is never created
	// for the same pair. Concurrent modification is retried a bounded number of
	// times before surfacing ErrStoreConflict.
	RecordEventPayment(ctx context.Context, op models.OperationContext, in EventPaymentInput) (*models.EventPaymentRecord, error)

	// GetEventPayment retrieves the payment record for a (event, resident) pair.
	GetEventPayment(ctx context.Context, eventID, residentID string) (*models.EventPaymentRecord, error)

	// ListEventPayments retrieves all payment records for an event.
	ListEventPayments(ctx context.Context, eventID string) ([]models.EventPaymentRecord, error)
}
