package billing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// FineInput describes one fine generation request.
type FineInput struct {
	ResidentID string
	ChargeIDs  []string
	DueDate    *time.Time

	// Remarks defaults to the concatenated names of the selected fine templates when
	// the operator leaves it empty.
	Remarks string

	ConfirmOverwrite bool
}

// FineManager owns the fine lifecycle. Fines carry no billing period; a duplicate is
// an existing fine for the same resident issued from the same charge selection.
type FineManager struct {
	Residents storage.ResidentStore
	Catalog   storage.CatalogStore
	Ledger    storage.LedgerStore
	Notifier  notify.Dispatcher
}

// NewFineManager creates a new FineManager.
func NewFineManager(residents storage.ResidentStore, catalog storage.CatalogStore, ledger storage.LedgerStore, notifier notify.Dispatcher) *FineManager {
	return &FineManager{
		Residents: residents,
		Catalog:   catalog,
		Ledger:    ledger,
		Notifier:  notifier,
	}
}

// Generate creates a fine for a resident, or resolves a collision with an existing
// fine from the same charge selection under the same contract as bills: paid or
// partially paid duplicates fail with ErrDuplicateWithPayment, unpaid duplicates need
// operator confirmation before they are replaced.
func (m *FineManager) Generate(ctx context.Context, op models.OperationContext, in FineInput) (*GenerateResult, error) {
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
	total, err := selectTemplates(tpls, models.ChargeFine)
	if err != nil {
		return nil, err
	}

	remarks := in.Remarks
	if remarks == "" {
		names := make([]string, 0, len(tpls))
		for _, tpl := range tpls {
			names = append(names, tpl.Name)
		}
		remarks = strings.Join(names, ", ")
	}

	entry := &models.LedgerEntry{
		Kind:            models.KindFine,
		ResidentID:      in.ResidentID,
		TotalDue:        total,
		Remarks:         remarks,
		SourceChargeIDs: in.ChargeIDs,
		DueDate:         in.DueDate,
		CreatedBy:       op.ActorID,
	}

	existing, err := m.findDuplicate(ctx, in.ResidentID, in.ChargeIDs)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		created, err := m.Ledger.CreateEntry(ctx, entry)
		if err != nil {
			return nil, err
		}
		m.sendFineNotice(ctx, resident, created, "New fine")
		return &GenerateResult{Outcome: OutcomeCreated, Entry: created}, nil
	}

	if existing.AmountPaid > 0 {
		return nil, fmt.Errorf("fine %s already has payments: %w", existing.ID, storage.ErrDuplicateWithPayment)
	}

	if !in.ConfirmOverwrite {
		return &GenerateResult{Outcome: OutcomeNeedsConfirmation, Entry: existing}, nil
	}

	replaced, err := m.Ledger.OverwriteEntry(ctx, op, existing, entry)
	if err != nil {
		return nil, err
	}
	m.sendFineNotice(ctx, resident, replaced, "Updated fine")
	return &GenerateResult{Outcome: OutcomeOverwritten, Entry: replaced}, nil
}

// findDuplicate scans the resident's fines for one issued from the same charge
// selection, ignoring order. Returns nil when there is none.
func (m *FineManager) findDuplicate(ctx context.Context, residentID string, chargeIDs []string) (*models.LedgerEntry, error) {
	fines, err := m.Ledger.ListEntriesByResident(ctx, residentID, models.KindFine)
	if err != nil {
		return nil, err
	}

	for i := range fines {
		if sameChargeSet(fines[i].SourceChargeIDs, chargeIDs) {
			return &fines[i], nil
		}
	}
	return nil, nil
}

func sameChargeSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func (m *FineManager) sendFineNotice(ctx context.Context, resident *models.Resident, entry *models.LedgerEntry, subject string) {
	n := notify.Notification{
		To:      resident.Email,
		Subject: subject,
		Body:    fmt.Sprintf("Hi %s, a fine of PHP %s has been recorded against you: %s.", resident.Name, pesos(entry.TotalDue), entry.Remarks),
	}
	if err := m.Notifier.Dispatch(ctx, n); err != nil {
		slog.Error("failed to dispatch fine notification", "entryId", entry.ID, "residentId", resident.ID, "error", err)
	}
}
