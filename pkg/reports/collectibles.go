// Package reports builds read-only aggregates over the ledger.
package reports

import (
	"context"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/api"
	"github.com/dormhq/dorm-ledger/pkg/mapping"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/reconcile"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/shopspring/decimal"
)

// Collectibles aggregates every outstanding bill and fine into one report. Entries
// owned by removed residents are included by default; their balances are still owed.
// Set activeOnly to restrict the report to current residents.
type Collectibles struct {
	Ledger    storage.LedgerReader
	Residents storage.ResidentStore
}

// NewCollectibles creates a new Collectibles report builder.
func NewCollectibles(ledger storage.LedgerReader, residents storage.ResidentStore) *Collectibles {
	return &Collectibles{Ledger: ledger, Residents: residents}
}

// Build assembles the report at the given instant. The instant also drives the
// overdue overlay on each row's status.
func (c *Collectibles) Build(ctx context.Context, now time.Time, activeOnly bool) (*api.CollectiblesReport, error) {
	bills, err := c.Ledger.ListOutstandingEntries(ctx, models.KindBill)
	if err != nil {
		return nil, err
	}
	fines, err := c.Ledger.ListOutstandingEntries(ctx, models.KindFine)
	if err != nil {
		return nil, err
	}
	entries := append(bills, fines...)

	names := make(map[string]string)
	active := make(map[string]bool)
	for _, entry := range entries {
		if _, seen := names[entry.ResidentID]; seen {
			continue
		}
		resident, err := c.Residents.GetResident(ctx, entry.ResidentID)
		if err != nil {
			return nil, err
		}
		names[entry.ResidentID] = resident.Name
		active[entry.ResidentID] = !resident.Deleted
	}

	report := &api.CollectiblesReport{
		GeneratedAt: now,
		Total:       decimal.Zero,
		Rows:        []api.CollectibleRow{},
	}

	for _, entry := range entries {
		if activeOnly && !active[entry.ResidentID] {
			continue
		}

		balance := mapping.ToPesos(entry.TotalDue - entry.AmountPaid)
		report.Rows = append(report.Rows, api.CollectibleRow{
			EntryId:      entry.ID,
			Kind:         string(entry.Kind),
			ResidentId:   entry.ResidentID,
			ResidentName: names[entry.ResidentID],
			Period:       entry.Period,
			Balance:      balance,
			Status:       string(reconcile.EffectiveStatus(entry.Status, entry.DueDate, now)),
			DueDate:      entry.DueDate,
		})
		report.Total = report.Total.Add(balance)
	}

	return report, nil
}
