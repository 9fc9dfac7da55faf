package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// BillInput describes one bill generation request.
type BillInput struct {
	ResidentID string
	Period     string // "2006-01"
	ChargeIDs  []string
	DueDate    *time.Time
	Remarks    string

	// ConfirmOverwrite authorizes replacing an existing unpaid bill for the same
	// (resident, period). Without it, a duplicate resolves to
	// OutcomeNeedsConfirmation and nothing is written.
	ConfirmOverwrite bool
}

// BillManager owns the monthly bill lifecycle: generation, duplicate detection, and
// the operator-confirmed overwrite.
type BillManager struct {
	Residents storage.ResidentStore
	Catalog   storage.CatalogStore
	Ledger    storage.LedgerStore
	Notifier  notify.Dispatcher
}

// NewBillManager creates a new BillManager.
func NewBillManager(residents storage.ResidentStore, catalog storage.CatalogStore, ledger storage.LedgerStore, notifier notify.Dispatcher) *BillManager {
	return &BillManager{
		Residents: residents,
		Catalog:   catalog,
		Ledger:    ledger,
		Notifier:  notifier,
	}
}

// GenerateOrOverwrite creates the bill for a (resident, period) pair, or resolves a
// collision with an existing one.
//
// An existing bill with money already applied fails with ErrDuplicateWithPayment and
// is left untouched. An existing unpaid bill is only replaced when the caller set
// ConfirmOverwrite; otherwise the result is OutcomeNeedsConfirmation carrying the
// existing entry.
func (m *BillManager) GenerateOrOverwrite(ctx context.Context, op models.OperationContext, in BillInput) (*GenerateResult, error) {
	if _, err := time.Parse("2006-01", in.Period); err != nil {
		return nil, fmt.Errorf("billing period %q: %w", in.Period, storage.ErrInvalidSelection)
	}
	if len(in.ChargeIDs) == 0 {
		return nil, fmt.Errorf("no charges selected: %w", storage.ErrInvalidSelection)
	}

	resident, err := m.Residents.GetResident(ctx, in.ResidentID)
	if err != nil {
		return nil, err
	}
	if resident.Deleted {
		return nil, fmt.Errorf("resident %s is removed: %w", in.ResidentID, storage.ErrNotFound)
	}

	tpls, err := m.Catalog.GetChargeTemplates(ctx, in.ChargeIDs)
	if err != nil {
		return nil, err
	}
	total, err := selectTemplates(tpls, models.ChargePayable)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		Kind:            models.KindBill,
		ResidentID:      in.ResidentID,
		Period:          in.Period,
		ResidentPeriod:  models.BillResidentPeriod(in.ResidentID, in.Period),
		TotalDue:        total,
		Remarks:         in.Remarks,
		SourceChargeIDs: in.ChargeIDs,
		DueDate:         in.DueDate,
		CreatedBy:       op.ActorID,
	}

	existing, err := m.Ledger.FindBillByResidentPeriod(ctx, in.ResidentID, in.Period)
	if errors.Is(err, storage.ErrNotFound) {
		created, err := m.Ledger.CreateEntry(ctx, entry)
		if err != nil {
			return nil, err
		}
		m.sendBillNotice(ctx, resident, created, "New dorm bill")
		return &GenerateResult{Outcome: OutcomeCreated, Entry: created}, nil
	}
	if err != nil {
		return nil, err
	}

	if existing.AmountPaid > 0 {
		return nil, fmt.Errorf("bill %s for %s already has payments: %w", existing.ID, in.Period, storage.ErrDuplicateWithPayment)
	}

	if !in.ConfirmOverwrite {
		return &GenerateResult{Outcome: OutcomeNeedsConfirmation, Entry: existing}, nil
	}

	replaced, err := m.Ledger.OverwriteEntry(ctx, op, existing, entry)
	if err != nil {
		return nil, err
	}
	m.sendBillNotice(ctx, resident, replaced, "Updated dorm bill")
	return &GenerateResult{Outcome: OutcomeOverwritten, Entry: replaced}, nil
}

// sendBillNotice is best-effort. A delivery failure never unwinds the ledger write.
func (m *BillManager) sendBillNotice(ctx context.Context, resident *models.Resident, entry *models.LedgerEntry, subject string) {
	n := notify.Notification{
		To:      resident.Email,
		Subject: fmt.Sprintf("%s for %s", subject, entry.Period),
		Body:    fmt.Sprintf("Hi %s, your dorm bill for %s amounts to PHP %s.", resident.Name, entry.Period, pesos(entry.TotalDue)),
	}
	if err := m.Notifier.Dispatch(ctx, n); err != nil {
		slog.Error("failed to dispatch bill notification", "entryId", entry.ID, "residentId", resident.ID, "error", err)
	}
}
