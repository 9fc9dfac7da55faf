// Package reconcile holds the pure reconciliation arithmetic shared by the bill,
// fine, and event payment ledgers. Keeping the status derivation and clamp in one
// place means the three flows cannot drift apart.
package reconcile

import (
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
)

// DeriveStatus is the single source of truth for a ledger entry's status. Status is
// always a pure function of (paid, due); callers must never set it independently.
func DeriveStatus(paid, due int64) models.PaymentStatus {
	switch {
	case due > 0 && paid >= due:
		return models.StatusPaid
	case paid > 0:
		return models.StatusPartiallyPaid
	default:
		return models.StatusUnpaid
	}
}

// Clamp returns the portion of a tendered amount that can be accepted against an
// entry without exceeding its total due. Overpayment is silently capped, not
// rejected; that matches how the dorm actually collects money.
func Clamp(tendered, due, paidSoFar int64) int64 {
	remaining := due - paidSoFar
	if remaining < 0 {
		remaining = 0
	}
	if tendered < remaining {
		return tendered
	}
	return remaining
}

// EffectiveStatus overlays OVERDUE on an unsettled status when the due date has
// passed. The stored status stays a pure function of (paid, due); this overlay is
// applied only on read paths.
func EffectiveStatus(status models.PaymentStatus, dueDate *time.Time, now time.Time) models.PaymentStatus {
	if status == models.StatusPaid || dueDate == nil {
		return status
	}
	if now.After(*dueDate) {
		return models.StatusOverdue
	}
	return status
}
