// Package handlers wires the HTTP surface: one subpackage per resource, composed
// into a single chi router here.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dormhq/dorm-ledger/pkg/billing"
	"github.com/dormhq/dorm-ledger/pkg/handlers/bills"
	"github.com/dormhq/dorm-ledger/pkg/handlers/catalog"
	"github.com/dormhq/dorm-ledger/pkg/handlers/events"
	"github.com/dormhq/dorm-ledger/pkg/handlers/fines"
	"github.com/dormhq/dorm-ledger/pkg/handlers/payments"
	"github.com/dormhq/dorm-ledger/pkg/handlers/reports"
	"github.com/dormhq/dorm-ledger/pkg/handlers/residents"
	"github.com/dormhq/dorm-ledger/pkg/handlers/websockets"
	custommiddleware "github.com/dormhq/dorm-ledger/pkg/middleware"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	domainreports "github.com/dormhq/dorm-ledger/pkg/reports"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the full API router with every resource mounted.
func NewRouter(store storage.Storage, notifier notify.Dispatcher, publisher realtime.Publisher, logger *slog.Logger) *chi.Mux {
	billManager := billing.NewBillManager(store, store, store, notifier)
	fineManager := billing.NewFineManager(store, store, store, notifier)
	paymentManager := billing.NewPaymentManager(store, store, notifier, publisher)
	eventManager := billing.NewEventManager(store, store, notifier, publisher)

	residentsHandler := residents.NewResidentsHandler(store)
	catalogHandler := catalog.NewCatalogHandler(store)
	billsHandler := bills.NewBillsHandler(billManager, store)
	finesHandler := fines.NewFinesHandler(fineManager, store)
	paymentsHandler := payments.NewPaymentsHandler(paymentManager, store)
	eventsHandler := events.NewEventsHandler(eventManager, store)
	reportsHandler := reports.NewReportsHandler(domainreports.NewCollectibles(store, store))
	wsHandler := websockets.NewHandler(store)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.NewStructuredLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Id", "X-Dorm-Id"},
		AllowCredentials: true,
	}))

	r.Route("/residents", func(r chi.Router) {
		r.Get("/", residentsHandler.ListResidents)
		r.Post("/", residentsHandler.CreateResident)
		r.Get("/{residentId}", withParam(residentsHandler.GetResident, "residentId"))
		r.Delete("/{residentId}", withParam(residentsHandler.DeleteResident, "residentId"))
		r.Get("/{residentId}/bills", withParam(billsHandler.ListBillsByResident, "residentId"))
		r.Get("/{residentId}/fines", withParam(finesHandler.ListFinesByResident, "residentId"))
		r.Get("/{residentId}/payments", withParam(paymentsHandler.ListPaymentsByResident, "residentId"))
	})

	r.Route("/charges", func(r chi.Router) {
		r.Get("/", catalogHandler.ListChargeTemplates)
		r.Post("/", catalogHandler.CreateChargeTemplate)
		r.Delete("/{templateId}", withParam(catalogHandler.DeleteChargeTemplate, "templateId"))
	})

	r.Post("/bills", billsHandler.GenerateBill)
	r.Post("/fines", finesHandler.GenerateFine)

	r.Route("/entries", func(r chi.Router) {
		r.Get("/{entryId}", withParam(billsHandler.GetEntry, "entryId"))
		r.Get("/{entryId}/payments", withParam(paymentsHandler.ListPaymentsByEntry, "entryId"))
		r.Post("/{entryId}/payments", withParam(paymentsHandler.RecordPayment, "entryId"))
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventsHandler.ListEvents)
		r.Post("/", eventsHandler.CreateEvent)
		r.Get("/{eventId}/payments", withParam(eventsHandler.ListEventPayments, "eventId"))
		r.Post("/{eventId}/payments", withParam(eventsHandler.RecordEventPayment, "eventId"))
		r.Post("/{eventId}/reminders", withParam(eventsHandler.BroadcastReminder, "eventId"))
	})

	r.Get("/reports/collectibles", reportsHandler.GetCollectibles)

	// Local development stand-in for the API Gateway WebSocket route.
	r.Get("/ws", wsHandler.ServeHTTP)

	return r
}

// withParam adapts a handler that takes one path parameter to http.HandlerFunc.
func withParam(h func(http.ResponseWriter, *http.Request, string), name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, chi.URLParam(r, name))
	}
}
