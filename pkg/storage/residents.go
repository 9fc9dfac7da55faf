package storage

import (
	"context"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// ResidentStore defines the interface for managing residents.
type ResidentStore interface {
	// CreateResident creates a new resident record.
	CreateResident(ctx context.Context, resident *models.Resident) (*models.Resident, error)

	// GetResident retrieves a resident by id, including soft-deleted ones. Callers
	// that must exclude removed residents check the Deleted flag themselves.
	GetResident(ctx context.Context, residentID string) (*models.Resident, error)

	// ListActiveResidents retrieves all residents that have not been soft-deleted.
	ListActiveResidents(ctx context.Context) ([]models.Resident, error)

	// SoftDeleteResident flags a resident as removed. Ledger entries, payment
	// records, and event payments are left untouched for audit history.
	SoftDeleteResident(ctx context.Context, op models.OperationContext, residentID string) error
}
