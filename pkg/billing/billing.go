package billing

import (
	"fmt"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/shopspring/decimal"
)

// Outcome reports how a generate call resolved.
type Outcome string

const (
	// OutcomeCreated means a fresh entry was written.
	OutcomeCreated Outcome = "created"

	// OutcomeNeedsConfirmation means an unpaid entry already exists for the same
	// target. Nothing was written; the operator must confirm before it is replaced.
	OutcomeNeedsConfirmation Outcome = "needs_confirmation"

	// OutcomeOverwritten means the operator confirmed and the existing unpaid entry
	// was replaced in place.
	OutcomeOverwritten Outcome = "overwritten"
)

// GenerateResult is the outcome of a bill or fine generation. On
// OutcomeNeedsConfirmation, Entry is the existing entry the operator must decide
// about; otherwise it is the entry that was written.
type GenerateResult struct {
	Outcome Outcome
	Entry   *models.LedgerEntry
}

// selectTemplates validates a charge selection against the catalog: templates must
// exist, all be of the wanted kind, and sum to a positive amount. Returns the
// templates and their summed amount in centavos.
func selectTemplates(tpls []models.ChargeTemplate, wanted models.ChargeKind) (int64, error) {
	var total int64
	for _, tpl := range tpls {
		if tpl.Kind != wanted {
			return 0, fmt.Errorf("charge template %s is %s, not %s: %w", tpl.ID, tpl.Kind, wanted, storage.ErrInvalidSelection)
		}
		total += tpl.Amount
	}
	if total <= 0 {
		return 0, fmt.Errorf("selected charges sum to %d: %w", total, storage.ErrInvalidSelection)
	}
	return total, nil
}

// pesos renders a centavo amount for notification text.
func pesos(centavos int64) string {
	return decimal.New(centavos, -2).StringFixed(2)
}
