// Package api defines the request and response shapes of the HTTP surface.
// Monetary amounts cross this boundary as decimal pesos; the engine itself works in
// integer centavos.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resident is the API view of a dormer.
type Resident struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Room      string     `json:"room,omitempty"`
	Role      string     `json:"role"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewResident is the payload for registering a resident.
type NewResident struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Room  string `json:"room,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ChargeTemplate is the API view of a catalog entry.
type ChargeTemplate struct {
	Id          string          `json:"id"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewChargeTemplate is the payload for adding a catalog entry.
type NewChargeTemplate struct {
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// LedgerEntry is the API view of a bill or fine. Status is the effective status:
// an unsettled entry past its due date reads as OVERDUE here even though the stored
// status is not.
type LedgerEntry struct {
	Id              string          `json:"id"`
	Kind            string          `json:"kind"`
	ResidentId      string          `json:"resident_id"`
	Period          string          `json:"period,omitempty"`
	TotalDue        decimal.Decimal `json:"total_due"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Balance         decimal.Decimal `json:"balance"`
	Status          string          `json:"status"`
	Remarks         string          `json:"remarks,omitempty"`
	SourceChargeIds []string        `json:"source_charge_ids"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// GenerateBillRequest is the payload for generating (or overwriting) a monthly bill.
type GenerateBillRequest struct {
	ResidentId       string     `json:"resident_id"`
	Period           string     `json:"period"`
	ChargeIds        []string   `json:"charge_ids"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
	ConfirmOverwrite bool       `json:"confirm_overwrite,omitempty"`
}

// GenerateFineRequest is the payload for generating a fine.
type GenerateFineRequest struct {
	ResidentId       string     `json:"resident_id"`
	ChargeIds        []string   `json:"charge_ids"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
	ConfirmOverwrite bool       `json:"confirm_overwrite,omitempty"`
}

// GenerateResponse reports how a generate call resolved. On "needs_confirmation" the
// entry is the existing one the operator must decide about.
type GenerateResponse struct {
	Outcome string       `json:"outcome"`
	Entry   *LedgerEntry `json:"entry"`
}

// RecordPaymentRequest is the payload for recording a payment against a bill or fine.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidAt *time.Time      `json:"paid_at,omitempty"`
	Notes  string          `json:"notes,omitempty"`
}

// PaymentRecord is the API view of one accepted payment.
type PaymentRecord struct {
	Id         string          `json:"id"`
	EntryId    string          `json:"entry_id"`
	ResidentId string          `json:"resident_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	PaidAt     time.Time       `json:"paid_at"`
	Notes      string          `json:"notes,omitempty"`
	RecordedBy string          `json:"recorded_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PaymentResponse reports an applied payment. Accepted is what the ledger actually
// took after clamping; Payment is null when the entry was already settled.
type PaymentResponse struct {
	Accepted decimal.Decimal `json:"accepted"`
	Payment  *PaymentRecord  `json:"payment"`
	Entry    *LedgerEntry    `json:"entry"`
}

// EventCharge is the API view of an event payable.
type EventCharge struct {
	Id        string          `json:"id"`
	Name      string          `json:"name"`
	AmountDue decimal.Decimal `json:"amount_due"`
	DueDate   time.Time       `json:"due_date"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewEventCharge is the payload for creating an event payable.
type NewEventCharge struct {
	Name      string          `json:"name"`
	AmountDue decimal.Decimal `json:"amount_due"`
	DueDate   time.Time       `json:"due_date"`
}

// RecordEventPaymentRequest is the payload for recording an event payment.
type RecordEventPaymentRequest struct {
	ResidentId string          `json:"resident_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// EventPaymentRecord is the API view of a resident's running total for an event.
type EventPaymentRecord struct {
	EventId    string          `json:"event_id"`
	ResidentId string          `json:"resident_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Status     string          `json:"status"`
	RecordedBy string          `json:"recorded_by"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BroadcastReminderResponse reports how many residents a reminder reached.
type BroadcastReminderResponse struct {
	Reminded int `json:"reminded"`
}

// CollectibleRow is one outstanding entry in the collectibles report.
type CollectibleRow struct {
	EntryId      string          `json:"entry_id"`
	Kind         string          `json:"kind"`
	ResidentId   string          `json:"resident_id"`
	ResidentName string          `json:"resident_name"`
	Period       string          `json:"period,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
}

// CollectiblesReport is the aggregate view of everything still owed.
type CollectiblesReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Total       decimal.Decimal  `json:"total"`
	Rows        []CollectibleRow `json:"rows"`
}
