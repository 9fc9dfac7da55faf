package events

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

// EventsHandler holds the dependencies for event-related handlers.
type EventsHandler struct {
	Manager *billing.EventManager
	Store   storage.EventStore
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(manager *billing.EventManager, store storage.EventStore) *EventsHandler {
	return &EventsHandler{Manager: manager, Store: store}
}

// CreateEvent handles adding a new event payable.
func (h *EventsHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var newEvent api.NewEventCharge
	if err := json.NewDecoder(r.Body).Decode(&newEvent); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if !newEvent.AmountDue.IsPositive() {
		http.Error(w, "Amount due must be positive", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateEvent(r.Context(), mapping.ToDomainNewEventCharge(&newEvent))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create event: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiEventCharge(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListEvents handles retrieving all active events.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.ListActiveEvents(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve events: %v", err), http.StatusInternalServerError)
		return
	}

	apiEvents := make([]*api.EventCharge, len(events))
	for i := range events {
		apiEvents[i] = mapping.ToApiEventCharge(&events[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiEvents); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RecordEventPayment handles applying a tendered amount to a resident's running
// total for an event. The total is capped at the event's amount due.
func (h *EventsHandler) RecordEventPayment(w http.ResponseWriter, r *http.Request, eventId string) {
	var req api.RecordEventPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	op := mapping.ToOperationContext(r)
	record, err := h.Manager.RecordPayment(r.Context(), op, storage.EventPaymentInput{
		EventID:    eventId,
		ResidentID: req.ResidentId,
		Tendered:   mapping.ToCentavos(req.Amount),
		Method:     models.PaymentMethod(req.Method),
		PaidAt:     paidAt,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Event not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrStoreConflict):
			http.Error(w, "Payment could not be applied, please retry", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to record event payment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiEventPaymentRecord(record)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListEventPayments handles retrieving the payment records of an event.
func (h *EventsHandler) ListEventPayments(w http.ResponseWriter, r *http.Request, eventId string) {
	records, err := h.Store.ListEventPayments(r.Context(), eventId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve event payments: %v", err), http.StatusInternalServerError)
		return
	}

	apiRecords := make([]*api.EventPaymentRecord, len(records))
	for i := range records {
		apiRecords[i] = mapping.ToApiEventPaymentRecord(&records[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// BroadcastReminder handles sending the batched unpaid reminder for an event.
func (h *EventsHandler) BroadcastReminder(w http.ResponseWriter, r *http.Request, eventId string) {
	count, err := h.Manager.BroadcastReminder(r.Context(), eventId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to broadcast reminder: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.BroadcastReminderResponse{Reminded: count}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
