package bills

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

// BillsHandler holds the dependencies for bill-related handlers.
type BillsHandler struct {
	Manager *billing.BillManager
	Reader  storage.LedgerReader
}

// NewBillsHandler creates a new BillsHandler.
func NewBillsHandler(manager *billing.BillManager, reader storage.LedgerReader) *BillsHandler {
	return &BillsHandler{Manager: manager, Reader: reader}
}

// GenerateBill handles generating a bill for a resident and period, including the
// confirmed-overwrite path. A duplicate unpaid bill resolves to a 200 with outcome
// "needs_confirmation"; the operator resubmits with confirm_overwrite set.
func (h *BillsHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	op := mapping.ToOperationContext(r)
	result, err := h.Manager.GenerateOrOverwrite(r.Context(), op, billing.BillInput{
		ResidentID:       req.ResidentId,
		Period:           req.Period,
		ChargeIDs:        req.ChargeIds,
		DueDate:          req.DueDate,
		Remarks:          req.Remarks,
		ConfirmOverwrite: req.ConfirmOverwrite,
	})
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome == billing.OutcomeNeedsConfirmation {
		status = http.StatusOK
	}

	resp := api.GenerateResponse{
		Outcome: string(result.Outcome),
		Entry:   mapping.ToApiLedgerEntry(result.Entry, time.Now()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetEntry handles retrieving a single bill or fine.
func (h *BillsHandler) GetEntry(w http.ResponseWriter, r *http.Request, entryId string) {
	entry, err := h.Reader.GetEntry(r.Context(), entryId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Entry not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve entry: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiLedgerEntry(entry, time.Now())); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListBillsByResident handles retrieving every bill owned by a resident.
func (h *BillsHandler) ListBillsByResident(w http.ResponseWriter, r *http.Request, residentId string) {
	entries, err := h.Reader.ListEntriesByResident(r.Context(), residentId, models.KindBill)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve bills: %v", err), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	apiEntries := make([]*api.LedgerEntry, len(entries))
	for i := range entries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&entries[i], now)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiEntries); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidSelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicateWithPayment):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrStoreConflict):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, fmt.Sprintf("Failed to generate: %v", err), http.StatusInternalServerError)
	}
}
