package reports

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/reports"
)

// ReportsHandler holds the dependencies for report handlers.
type ReportsHandler struct {
	Collectibles *reports.Collectibles
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(collectibles *reports.Collectibles) *ReportsHandler {
	return &ReportsHandler{Collectibles: collectibles}
}

// GetCollectibles handles building the outstanding-balance report. Removed
// residents' balances are included unless active_only is set.
func (h *ReportsHandler) GetCollectibles(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	report, err := h.Collectibles.Build(r.Context(), time.Now(), activeOnly)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to build collectibles report: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
