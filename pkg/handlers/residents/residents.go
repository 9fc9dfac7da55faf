package residents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dormhq/dorm-ledger/pkg/api"
	"github.com/dormhq/dorm-ledger/pkg/mapping"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// ResidentsHandler holds the dependencies for resident-related handlers.
type ResidentsHandler struct {
	Store storage.ResidentStore
}

// NewResidentsHandler creates a new ResidentsHandler.
func NewResidentsHandler(store storage.ResidentStore) *ResidentsHandler {
	return &ResidentsHandler{Store: store}
}

// CreateResident handles registering a new resident.
func (h *ResidentsHandler) CreateResident(w http.ResponseWriter, r *http.Request) {
	var newResident api.NewResident
	if err := json.NewDecoder(r.Body).Decode(&newResident); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateResident(r.Context(), mapping.ToDomainNewResident(&newResident))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create resident: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiResident(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetResident handles retrieving a resident by id, including removed ones.
func (h *ResidentsHandler) GetResident(w http.ResponseWriter, r *http.Request, residentId string) {
	resident, err := h.Store.GetResident(r.Context(), residentId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Resident not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve resident: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiResident(resident)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListResidents handles retrieving all active residents.
func (h *ResidentsHandler) ListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := h.Store.ListActiveResidents(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve residents: %v", err), http.StatusInternalServerError)
		return
	}

	apiResidents := make([]*api.Resident, len(residents))
	for i := range residents {
		apiResidents[i] = mapping.ToApiResident(&residents[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiResidents); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteResident handles soft-deleting a resident. Ledger history is kept.
func (h *ResidentsHandler) DeleteResident(w http.ResponseWriter, r *http.Request, residentId string) {
	op := mapping.ToOperationContext(r)

	if err := h.Store.SoftDeleteResident(r.Context(), op, residentId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Resident not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete resident: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
