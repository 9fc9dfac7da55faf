package storage

import (
	"context"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// PaymentInput describes one tendered payment against a ledger entry.
type PaymentInput struct {
	EntryID  string
	Tendered int64 // centavos, as handed over; may exceed the remaining balance
	Method   models.PaymentMethod
	PaidAt   time.Time
	Notes    string
}

// PaymentResult reports the outcome of an applied payment.
type PaymentResult struct {
	Entry    *models.LedgerEntry
	Payment  *models.PaymentRecord // nil when nothing was accepted
	Accepted int64                 // centavos actually applied after clamping
}

// PaymentApplier defines the correctness-critical interface for applying a payment.
// Implementations must write the payment record and the updated entry balance as one
// indivisible unit: the caller observes either full success or a clean failure, never
// a half-applied state.
type PaymentApplier interface {
	// ApplyPayment clamps the tendered amount against the entry's remaining balance,
	// persists a PaymentRecord for the accepted amount, and advances the entry's
	// AmountPaid and derived status atomically. Concurrent modification is retried a
	// bounded number of times before surfacing ErrStoreConflict.
	ApplyPayment(ctx context.Context, op models.OperationContext, in PaymentInput) (*PaymentResult, error)
}

// PaymentReader defines the interface for reading immutable payment records.
type PaymentReader interface {
	// ListPaymentsByEntry retrieves every payment recorded against an entry,
	// oldest first.
	ListPaymentsByEntry(ctx context.Context, entryID string) ([]models.PaymentRecord, error)

	// ListPaymentsByResident retrieves every payment recorded for a resident.
	ListPaymentsByResident(ctx context.Context, residentID string) ([]models.PaymentRecord, error)
}

// PaymentStore combines the applier and reader interfaces.
type PaymentStore interface {
	PaymentApplier
	PaymentReader
}
