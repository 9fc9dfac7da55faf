// Package mapping converts between the domain models and the API shapes, including
// the centavo-to-peso boundary.
package mapping

import (
	"net/http"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/api"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/reconcile"
	"github.com/shopspring/decimal"
)

// ToOperationContext pulls the acting administrator and dormitory scope from request
// headers. Authentication itself happens upstream; the engine only records who acted.
func ToOperationContext(r *http.Request) models.OperationContext {
	return models.OperationContext{
		ActorID: r.Header.Get("X-Admin-Id"),
		ScopeID: r.Header.Get("X-Dorm-Id"),
	}
}

// ToCentavos converts a decimal peso amount to integer centavos.
func ToCentavos(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ToPesos converts integer centavos to a decimal peso amount.
func ToPesos(centavos int64) decimal.Decimal {
	return decimal.New(centavos, -2)
}

// ToApiResident converts a domain Resident model to an API Resident model.
func ToApiResident(r *models.Resident) *api.Resident {
	return &api.Resident{
		Id:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Room:      r.Room,
		Role:      string(r.Role),
		Deleted:   r.Deleted,
		DeletedAt: r.DeletedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToDomainNewResident converts an API NewResident model to a domain Resident model.
func ToDomainNewResident(r *api.NewResident) *models.Resident {
	role := models.ResidentRole(r.Role)
	if role == "" {
		role = models.RoleRegular
	}
	return &models.Resident{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Room:  r.Room,
		Role:  role,
	}
}

// ToApiChargeTemplate converts a domain ChargeTemplate model to an API model.
func ToApiChargeTemplate(tpl *models.ChargeTemplate) *api.ChargeTemplate {
	return &api.ChargeTemplate{
		Id:          tpl.ID,
		Kind:        string(tpl.Kind),
		Name:        tpl.Name,
		Amount:      ToPesos(tpl.Amount),
		Description: tpl.Description,
		CreatedAt:   tpl.CreatedAt,
	}
}

// ToDomainNewChargeTemplate converts an API NewChargeTemplate to a domain model.
func ToDomainNewChargeTemplate(tpl *api.NewChargeTemplate) *models.ChargeTemplate {
	return &models.ChargeTemplate{
		Kind:        models.ChargeKind(tpl.Kind),
		Name:        tpl.Name,
		Amount:      ToCentavos(tpl.Amount),
		Description: tpl.Description,
	}
}

// ToApiLedgerEntry converts a domain LedgerEntry to its API view. The status is the
// effective one: past-due unsettled entries read as OVERDUE.
func ToApiLedgerEntry(entry *models.LedgerEntry, now time.Time) *api.LedgerEntry {
	return &api.LedgerEntry{
		Id:              entry.ID,
		Kind:            string(entry.Kind),
		ResidentId:      entry.ResidentID,
		Period:          entry.Period,
		TotalDue:        ToPesos(entry.TotalDue),
		AmountPaid:      ToPesos(entry.AmountPaid),
		Balance:         ToPesos(entry.TotalDue - entry.AmountPaid),
		Status:          string(reconcile.EffectiveStatus(entry.Status, entry.DueDate, now)),
		Remarks:         entry.Remarks,
		SourceChargeIds: entry.SourceChargeIDs,
		DueDate:         entry.DueDate,
		Version:         entry.Version,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
}

// ToApiPaymentRecord converts a domain PaymentRecord to its API view.
func ToApiPaymentRecord(p *models.PaymentRecord) *api.PaymentRecord {
	return &api.PaymentRecord{
		Id:         p.ID,
		EntryId:    p.EntryID,
		ResidentId: p.ResidentID,
		Amount:     ToPesos(p.Amount),
		Method:     string(p.Method),
		PaidAt:     p.PaidAt,
		Notes:      p.Notes,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

// ToApiEventCharge converts a domain EventCharge to its API view.
func ToApiEventCharge(e *models.EventCharge) *api.EventCharge {
	return &api.EventCharge{
		Id:        e.ID,
		Name:      e.Name,
		AmountDue: ToPesos(e.AmountDue),
		DueDate:   e.DueDate,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}

// ToDomainNewEventCharge converts an API NewEventCharge to a domain model.
func ToDomainNewEventCharge(e *api.NewEventCharge) *models.EventCharge {
	return &models.EventCharge{
		Name:      e.Name,
		AmountDue: ToCentavos(e.AmountDue),
		DueDate:   e.DueDate,
	}
}

// ToApiEventPaymentRecord converts a domain EventPaymentRecord to its API view.
func ToApiEventPaymentRecord(rec *models.EventPaymentRecord) *api.EventPaymentRecord {
	return &api.EventPaymentRecord{
		EventId:    rec.EventID,
		ResidentId: rec.ResidentID,
		AmountPaid: ToPesos(rec.AmountPaid),
		Status:     string(rec.Status),
		RecordedBy: rec.RecordedBy,
		UpdatedAt:  rec.UpdatedAt,
	}
}
