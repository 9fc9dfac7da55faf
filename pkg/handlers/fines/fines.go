package fines

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

// FinesHandler holds the dependencies for fine-related handlers.
type FinesHandler struct {
	Manager *billing.FineManager
	Reader  storage.LedgerReader
}

// NewFinesHandler creates a new FinesHandler.
func NewFinesHandler(manager *billing.FineManager, reader storage.LedgerReader) *FinesHandler {
	return &FinesHandler{Manager: manager, Reader: reader}
}

// GenerateFine handles issuing a fine, under the same duplicate and overwrite rules
// as bills.
func (h *FinesHandler) GenerateFine(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateFineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	op := mapping.ToOperationContext(r)
	result, err := h.Manager.Generate(r.Context(), op, billing.FineInput{
		ResidentID:       req.ResidentId,
		ChargeIDs:        req.ChargeIds,
		DueDate:          req.DueDate,
		Remarks:          req.Remarks,
		ConfirmOverwrite: req.ConfirmOverwrite,
	})
	if err != nil {
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
			http.Error(w, fmt.Sprintf("Failed to generate fine: %v", err), http.StatusInternalServerError)
		}
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

// ListFinesByResident handles retrieving every fine owned by a resident.
func (h *FinesHandler) ListFinesByResident(w http.ResponseWriter, r *http.Request, residentId string) {
	entries, err := h.Reader.ListEntriesByResident(r.Context(), residentId, models.KindFine)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve fines: %v", err), http.StatusInternalServerError)
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
