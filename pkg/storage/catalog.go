package storage

import (
	"context"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// CatalogStore defines the interface for the read-mostly charge catalog.
type CatalogStore interface {
	// CreateChargeTemplate adds a named payable or fine definition.
	CreateChargeTemplate(ctx context.Context, tpl *models.ChargeTemplate) (*models.ChargeTemplate, error)

	// GetChargeTemplates retrieves the templates for the given ids. Missing or
	// soft-deleted templates yield ErrNotFound.
	GetChargeTemplates(ctx context.Context, ids []string) ([]models.ChargeTemplate, error)

	// ListChargeTemplates retrieves all non-deleted templates of one kind.
	ListChargeTemplates(ctx context.Context, kind models.ChargeKind) ([]models.ChargeTemplate, error)

	// SoftDeleteChargeTemplate retires a template. Ledger entries already generated
	// from it are unaffected; amounts were copied by value.
	SoftDeleteChargeTemplate(ctx context.Context, id string) error
}
