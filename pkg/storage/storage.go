package storage

// ApiStore defines the complete set of operations needed by the HTTP API. It
// composes the per-concern interfaces to give the handlers one clear boundary.
type ApiStore interface {
	ResidentStore
	CatalogStore
	LedgerStore
	PaymentStore
	EventStore
}

// Storage defines the root interface for the entire data layer. Components should
// depend on the more granular interfaces instead of this one where they can.
type Storage interface {
	ApiStore
	ConnectionStore
}
