package models

import (
	"time"
)

// PaymentStatus is the derived settlement state of a ledger entry or event payment.
type PaymentStatus string

const (
	StatusUnpaid        PaymentStatus = "UNPAID"
	StatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	StatusPaid          PaymentStatus = "PAID"
	// StatusOverdue is never persisted; it is a read-time overlay applied when an
	// unsettled entry's due date has passed.
	StatusOverdue PaymentStatus = "OVERDUE"
)

// LedgerKind discriminates the two ledger entry variants stored in the entries table.
type LedgerKind string

const (
	KindBill LedgerKind = "BILL"
	KindFine LedgerKind = "FINE"
)

// PaymentMethod enumerates how a payment was tendered.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodGCash        PaymentMethod = "GCASH"
	MethodMaya         PaymentMethod = "MAYA"
)

// ResidentRole distinguishes regular dormers from live-in staff.
type ResidentRole string

const (
	RoleRegular ResidentRole = "REGULAR"
	RoleStaff   ResidentRole = "STAFF"
)

// ChargeKind discriminates recurring payables from one-time fine definitions.
type ChargeKind string

const (
	ChargePayable ChargeKind = "PAYABLE"
	ChargeFine    ChargeKind = "FINE"
)

// OperationContext carries the acting administrator and dormitory scope into every
// mutating operation. It replaces ambient session state: nothing in the engine reads
// the current admin from a global.
type OperationContext struct {
	ActorID string
	ScopeID string
}

// Resident is a dormer. Residents are never hard-deleted; removal sets the Deleted
// flag so historical ledger entries and payments keep a valid owner.
type Resident struct {
	ID        string       `dynamodbav:"id"`
	Name      string       `dynamodbav:"name"`
	Email     string       `dynamodbav:"email"`
	Phone     string       `dynamodbav:"phone"`
	Room      string       `dynamodbav:"room"`
	Role      ResidentRole `dynamodbav:"role"`
	Deleted   bool         `dynamodbav:"deleted"`
	DeletedAt *time.Time   `dynamodbav:"deleted_at,omitempty"`
	CreatedAt time.Time    `dynamodbav:"created_at"`
	UpdatedAt time.Time    `dynamodbav:"updated_at"`
}

// ChargeTemplate is a reusable named amount (a payable or a fine type). Its amount is
// copied by value into ledger entries at generation time, so later edits never
// retroactively change an issued bill.
type ChargeTemplate struct {
	ID          string     `dynamodbav:"id"`
	Kind        ChargeKind `dynamodbav:"kind"`
	Name        string     `dynamodbav:"name"`
	Amount      int64      `dynamodbav:"amount"` // centavos
	Description string     `dynamodbav:"description"`
	Deleted     bool       `dynamodbav:"deleted"`
	CreatedAt   time.Time  `dynamodbav:"created_at"`
	UpdatedAt   time.Time  `dynamodbav:"updated_at"`
}

// LedgerEntry is a dorm bill or a fine bill owed by a resident.
//
// Invariants:
//   - 0 <= AmountPaid <= TotalDue at all times.
//   - Status is always DeriveStatus(AmountPaid, TotalDue); it is never set
//     independently of those two fields.
//   - AmountPaid only increases, except across an explicit overwrite, which replaces
//     the entry wholesale and resets it to zero.
type LedgerEntry struct {
	ID         string     `dynamodbav:"id"`
	Kind       LedgerKind `dynamodbav:"kind"`
	ResidentID string     `dynamodbav:"resident_id"`

	// Period is the billing period key ("2006-01") for bills. Fines carry no period;
	// they are dated by creation time only.
	Period string `dynamodbav:"period,omitempty"`

	// ResidentPeriod is the GSI partition key "residentID#period" used for duplicate
	// detection on bills. Empty for fines.
	ResidentPeriod string `dynamodbav:"resident_period,omitempty"`

	TotalDue   int64         `dynamodbav:"total_due"`   // centavos, fixed at creation
	AmountPaid int64         `dynamodbav:"amount_paid"` // centavos
	Status     PaymentStatus `dynamodbav:"status"`
	Remarks    string        `dynamodbav:"remarks"`

	// SourceChargeIDs records which charge templates were selected when the entry was
	// generated. Amounts are still copied by value into TotalDue.
	SourceChargeIDs []string `dynamodbav:"source_charge_ids"`

	DueDate   *time.Time `dynamodbav:"due_date,omitempty"`
	Version   int64      `dynamodbav:"version"`
	CreatedBy string     `dynamodbav:"created_by"`
	CreatedAt time.Time  `dynamodbav:"created_at"`
	UpdatedBy string     `dynamodbav:"updated_by"`
	UpdatedAt time.Time  `dynamodbav:"updated_at"`
}

// PaymentRecord is the immutable record of one accepted payment against a ledger
// entry. Amount is the accepted (clamped) amount, not the tendered amount. The sum of
// payment amounts for an entry always equals that entry's AmountPaid.
type PaymentRecord struct {
	ID         string        `dynamodbav:"id"`
	EntryID    string        `dynamodbav:"entry_id"`
	EntryKind  LedgerKind    `dynamodbav:"entry_kind"`
	ResidentID string        `dynamodbav:"resident_id"`
	Amount     int64         `dynamodbav:"amount"` // centavos
	Method     PaymentMethod `dynamodbav:"method"`
	PaidAt     time.Time     `dynamodbav:"paid_at"`
	Notes      string        `dynamodbav:"notes,omitempty"`
	RecordedBy string        `dynamodbav:"recorded_by"`
	CreatedAt  time.Time     `dynamodbav:"created_at"`
}

// EventCharge is a fixed one-time charge every resident owes for an event.
type EventCharge struct {
	ID        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	AmountDue int64     `dynamodbav:"amount_due"` // centavos, per resident
	DueDate   time.Time `dynamodbav:"due_date"`
	Active    bool      `dynamodbav:"active"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// EventPaymentRecord is the single running-total record for one (event, resident)
// pair. It is upserted, never duplicated: the ID is "eventID#residentID".
type EventPaymentRecord struct {
	ID         string        `dynamodbav:"id"`
	EventID    string        `dynamodbav:"event_id"`
	ResidentID string        `dynamodbav:"resident_id"`
	AmountPaid int64         `dynamodbav:"amount_paid"` // centavos, capped at the event's AmountDue
	Status     PaymentStatus `dynamodbav:"status"`
	Version    int64         `dynamodbav:"version"`
	RecordedBy string        `dynamodbav:"recorded_by"`
	CreatedAt  time.Time     `dynamodbav:"created_at"`
	UpdatedAt  time.Time     `dynamodbav:"updated_at"`
}

// EventPaymentID builds the natural key for the (event, resident) pair.
func EventPaymentID(eventID, residentID string) string {
	return eventID + "#" + residentID
}

// BillResidentPeriod builds the duplicate-detection key for a bill.
func BillResidentPeriod(residentID, period string) string {
	return residentID + "#" + period
}
