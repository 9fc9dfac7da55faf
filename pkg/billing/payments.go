package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// PaymentManager wraps the atomic payment transaction with the side channels that
// follow it: resident confirmation mail and the realtime change feed. Both are
// best-effort; the ledger write is the only thing that can fail the call.
type PaymentManager struct {
	Payments  storage.PaymentApplier
	Residents storage.ResidentStore
	Notifier  notify.Dispatcher
	Realtime  realtime.Publisher
}

// NewPaymentManager creates a new PaymentManager.
func NewPaymentManager(payments storage.PaymentApplier, residents storage.ResidentStore, notifier notify.Dispatcher, publisher realtime.Publisher) *PaymentManager {
	return &PaymentManager{
		Payments:  payments,
		Residents: residents,
		Notifier:  notifier,
		Realtime:  publisher,
	}
}

// ApplyPayment records a tendered payment against a bill or fine. The tendered
// amount is clamped to the remaining balance by the store; the result reports what
// was actually accepted.
func (m *PaymentManager) ApplyPayment(ctx context.Context, op models.OperationContext, in storage.PaymentInput) (*storage.PaymentResult, error) {
	if in.Tendered <= 0 {
		return nil, fmt.Errorf("tendered %d: %w", in.Tendered, storage.ErrInvalidAmount)
	}

	result, err := m.Payments.ApplyPayment(ctx, op, in)
	if err != nil {
		return nil, err
	}

	if result.Accepted > 0 {
		m.confirmToResident(ctx, result)
		m.publishUpdate(ctx, result.Entry)
	}

	return result, nil
}

func (m *PaymentManager) confirmToResident(ctx context.Context, result *storage.PaymentResult) {
	resident, err := m.Residents.GetResident(ctx, result.Entry.ResidentID)
	if err != nil {
		slog.Error("failed to look up resident for payment confirmation", "residentId", result.Entry.ResidentID, "error", err)
		return
	}

	n := notify.Notification{
		To:      resident.Email,
		Subject: "Payment received",
		Body: fmt.Sprintf("Hi %s, we received your payment of PHP %s. Remaining balance: PHP %s.",
			resident.Name, pesos(result.Accepted), pesos(result.Entry.TotalDue-result.Entry.AmountPaid)),
	}
	if err := m.Notifier.Dispatch(ctx, n); err != nil {
		slog.Error("failed to dispatch payment confirmation", "entryId", result.Entry.ID, "error", err)
	}
}

func (m *PaymentManager) publishUpdate(ctx context.Context, entry *models.LedgerEntry) {
	msg := realtime.Message{
		Type: realtime.MessageTypeLedgerUpdate,
		Payload: realtime.LedgerUpdatePayload{
			EntryID:    entry.ID,
			ResidentID: entry.ResidentID,
			Kind:       entry.Kind,
			AmountPaid: entry.AmountPaid,
			TotalDue:   entry.TotalDue,
			Status:     entry.Status,
		},
	}
	if err := m.Realtime.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish ledger update", "entryId", entry.ID, "error", err)
	}
}
