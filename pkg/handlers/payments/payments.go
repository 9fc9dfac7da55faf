package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/api"
	"github.com/dormhq/dorm-ledger/pkg/billing"
	"github.com/dormhq/dorm-ledger/pkg/mapping"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// PaymentsHandler holds the dependencies for payment-related handlers.
type PaymentsHandler struct {
	Manager *billing.PaymentManager
	Reader  storage.PaymentReader
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(manager *billing.PaymentManager, reader storage.PaymentReader) *PaymentsHandler {
	return &PaymentsHandler{Manager: manager, Reader: reader}
}

// RecordPayment handles applying a tendered payment against a bill or fine. The
// response reports the accepted (clamped) amount; overtendering is not an error.
func (h *PaymentsHandler) RecordPayment(w http.ResponseWriter, r *http.Request, entryId string) {
	var req api.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	op := mapping.ToOperationContext(r)
	result, err := h.Manager.ApplyPayment(r.Context(), op, storage.PaymentInput{
		EntryID:  entryId,
		Tendered: mapping.ToCentavos(req.Amount),
		Method:   models.PaymentMethod(req.Method),
		PaidAt:   paidAt,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Entry not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrStoreConflict):
			http.Error(w, "Payment could not be applied, please retry", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to record payment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	resp := api.PaymentResponse{
		Accepted: mapping.ToPesos(result.Accepted),
		Entry:    mapping.ToApiLedgerEntry(result.Entry, time.Now()),
	}
	if result.Payment != nil {
		resp.Payment = mapping.ToApiPaymentRecord(result.Payment)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListPaymentsByEntry handles retrieving the payment history of an entry.
func (h *PaymentsHandler) ListPaymentsByEntry(w http.ResponseWriter, r *http.Request, entryId string) {
	records, err := h.Reader.ListPaymentsByEntry(r.Context(), entryId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve payments: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeRecords(w, records)
}

// ListPaymentsByResident handles retrieving every payment made by a resident.
func (h *PaymentsHandler) ListPaymentsByResident(w http.ResponseWriter, r *http.Request, residentId string) {
	records, err := h.Reader.ListPaymentsByResident(r.Context(), residentId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve payments: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeRecords(w, records)
}

func (h *PaymentsHandler) writeRecords(w http.ResponseWriter, records []models.PaymentRecord) {
	apiRecords := make([]*api.PaymentRecord, len(records))
	for i := range records {
		apiRecords[i] = mapping.ToApiPaymentRecord(&records[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
