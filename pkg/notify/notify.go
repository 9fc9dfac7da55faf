package notify

import (
	"context"
)

// Notification is one outbound message to a resident. The engine composes these;
// delivery happens out of process.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Dispatcher defines the interface for a component that hands notifications off for
// asynchronous delivery. Dispatch failures are reported to the caller but must never
// affect the ledger write that triggered them.
type Dispatcher interface {
	// Dispatch enqueues a notification for delivery.
	Dispatch(ctx context.Context, n Notification) error
}
