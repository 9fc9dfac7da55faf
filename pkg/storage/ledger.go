package storage

import (
	"context"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// LedgerReader defines the interface for reading bill and fine entries.
type LedgerReader interface {
	// GetEntry retrieves a ledger entry (bill or fine) by id.
	GetEntry(ctx context.Context, entryID string) (*models.LedgerEntry, error)

	// FindBillByResidentPeriod looks up the bill for a (resident, period) pair.
	// Returns ErrNotFound when the period has no bill yet.
	FindBillByResidentPeriod(ctx context.Context, residentID, period string) (*models.LedgerEntry, error)

	// ListEntriesByResident retrieves all entries of one kind owned by a resident.
	ListEntriesByResident(ctx context.Context, residentID string, kind models.LedgerKind) ([]models.LedgerEntry, error)

	// ListOutstandingEntries retrieves every entry of one kind that is not fully
	// paid. Used by the collectibles report and the overdue overlay.
	ListOutstandingEntries(ctx context.Context, kind models.LedgerKind) ([]models.LedgerEntry, error)
}

// LedgerWriter defines the interface for creating and overwriting entries. Entries
// are never deleted, only superseded by an explicit overwrite.
type LedgerWriter interface {
	// CreateEntry persists a new bill or fine. The entry's id must be fresh; an
	// existing id yields ErrEntryExists.
	CreateEntry(ctx context.Context, entry *models.LedgerEntry) (*models.LedgerEntry, error)

	// OverwriteEntry replaces an existing unpaid entry in place: same id, new total,
	// AmountPaid reset to zero, status recomputed. The write is conditioned on the
	// version observed by the caller; a concurrent change yields ErrStoreConflict.
	OverwriteEntry(ctx context.Context, op models.OperationContext, existing *models.LedgerEntry, replacement *models.LedgerEntry) (*models.LedgerEntry, error)
}

// LedgerStore combines the reader and writer interfaces.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}
