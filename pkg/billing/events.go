package billing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// EventManager owns event payables: the per-resident running-total payment and the
// read-only reminder broadcast.
type EventManager struct {
	Events    storage.EventStore
	Residents storage.ResidentStore
	Notifier  notify.Dispatcher
	Realtime  realtime.Publisher
}

// NewEventManager creates a new EventManager.
func NewEventManager(events storage.EventStore, residents storage.ResidentStore, notifier notify.Dispatcher, publisher realtime.Publisher) *EventManager {
	return &EventManager{
		Events:    events,
		Residents: residents,
		Notifier:  notifier,
		Realtime:  publisher,
	}
}

// RecordPayment applies a tendered amount to the resident's running total for an
// event. The store upserts the single (event, resident) record and caps the total at
// the event's amount due.
func (m *EventManager) RecordPayment(ctx context.Context, op models.OperationContext, in storage.EventPaymentInput) (*models.EventPaymentRecord, error) {
	record, err := m.Events.RecordEventPayment(ctx, op, in)
	if err != nil {
		return nil, err
	}

	msg := realtime.Message{
		Type: realtime.MessageTypeEventPaymentUpdate,
		Payload: realtime.EventPaymentUpdatePayload{
			EventID:    record.EventID,
			ResidentID: record.ResidentID,
			AmountPaid: record.AmountPaid,
			Status:     record.Status,
		},
	}
	if err := m.Realtime.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish event payment update", "eventId", record.EventID, "error", err)
	}

	m.confirmToResident(ctx, record)

	return record, nil
}

func (m *EventManager) confirmToResident(ctx context.Context, record *models.EventPaymentRecord) {
	resident, err := m.Residents.GetResident(ctx, record.ResidentID)
	if err != nil {
		slog.Error("failed to look up resident for event payment confirmation", "residentId", record.ResidentID, "error", err)
		return
	}

	event, err := m.Events.GetEvent(ctx, record.EventID)
	if err != nil {
		slog.Error("failed to look up event for payment confirmation", "eventId", record.EventID, "error", err)
		return
	}

	n := notify.Notification{
		To:      resident.Email,
		Subject: "Payment received",
		Body: fmt.Sprintf("Hi %s, we received your payment for %s. Paid so far: PHP %s of PHP %s.",
			resident.Name, event.Name, pesos(record.AmountPaid), pesos(event.AmountDue)),
	}
	if err := m.Notifier.Dispatch(ctx, n); err != nil {
		slog.Error("failed to dispatch event payment confirmation", "eventId", record.EventID, "error", err)
	}
}

// BroadcastReminder sends one batched reminder to every active resident who has not
// fully paid an event. It performs no writes and returns the number of residents
// reminded.
func (m *EventManager) BroadcastReminder(ctx context.Context, eventID string) (int, error) {
	event, err := m.Events.GetEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}

	records, err := m.Events.ListEventPayments(ctx, eventID)
	if err != nil {
		return 0, err
	}
	paid := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Status == models.StatusPaid {
			paid[rec.ResidentID] = true
		}
	}

	residents, err := m.Residents.ListActiveResidents(ctx)
	if err != nil {
		return 0, err
	}

	var unpaid []string
	for _, r := range residents {
		if !paid[r.ID] && r.Email != "" {
			unpaid = append(unpaid, r.Email)
		}
	}
	if len(unpaid) == 0 {
		return 0, nil
	}

	n := notify.Notification{
		To:      strings.Join(unpaid, ", "),
		Subject: fmt.Sprintf("Reminder: %s payment due", event.Name),
		Body: fmt.Sprintf("This is a reminder that your PHP %s contribution for %s is due on %s.",
			pesos(event.AmountDue), event.Name, event.DueDate.Format("January 2, 2006")),
	}
	if err := m.Notifier.Dispatch(ctx, n); err != nil {
		return 0, fmt.Errorf("failed to dispatch event reminder: %w", err)
	}

	return len(unpaid), nil
}
