package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dormhq/dorm-ledger/pkg/api"
	"github.com/dormhq/dorm-ledger/pkg/mapping"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// CatalogHandler holds the dependencies for charge-template handlers.
type CatalogHandler struct {
	Store storage.CatalogStore
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store storage.CatalogStore) *CatalogHandler {
	return &CatalogHandler{Store: store}
}

// CreateChargeTemplate handles adding a payable or fine definition to the catalog.
func (h *CatalogHandler) CreateChargeTemplate(w http.ResponseWriter, r *http.Request) {
	var newTpl api.NewChargeTemplate
	if err := json.NewDecoder(r.Body).Decode(&newTpl); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	kind := models.ChargeKind(newTpl.Kind)
	if kind != models.ChargePayable && kind != models.ChargeFine {
		http.Error(w, fmt.Sprintf("Unknown charge kind %q", newTpl.Kind), http.StatusBadRequest)
		return
	}
	if !newTpl.Amount.IsPositive() {
		http.Error(w, "Amount must be positive", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateChargeTemplate(r.Context(), mapping.ToDomainNewChargeTemplate(&newTpl))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create charge template: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiChargeTemplate(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListChargeTemplates handles retrieving the catalog, filtered by kind.
func (h *CatalogHandler) ListChargeTemplates(w http.ResponseWriter, r *http.Request) {
	kind := models.ChargeKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = models.ChargePayable
	}

	tpls, err := h.Store.ListChargeTemplates(r.Context(), kind)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve charge templates: %v", err), http.StatusInternalServerError)
		return
	}

	apiTpls := make([]*api.ChargeTemplate, len(tpls))
	for i := range tpls {
		apiTpls[i] = mapping.ToApiChargeTemplate(&tpls[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTpls); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteChargeTemplate handles retiring a template. Issued entries are unaffected.
func (h *CatalogHandler) DeleteChargeTemplate(w http.ResponseWriter, r *http.Request, templateId string) {
	if err := h.Store.SoftDeleteChargeTemplate(r.Context(), templateId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Charge template not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete charge template: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
