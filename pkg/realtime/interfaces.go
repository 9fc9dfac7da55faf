package realtime

import (
	"context"
)

// ConnectionManager defines the interface for managing WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher defines the interface for pushing ledger changes to connected admin
// dashboards.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
