package notify

import "context"

// NoOpDispatcher is a dispatcher that drops every notification. Used in local
// development and in tests that do not assert on delivery.
type NoOpDispatcher struct{}

// Dispatch does nothing.
func (d *NoOpDispatcher) Dispatch(ctx context.Context, n Notification) error {
	return nil
}
