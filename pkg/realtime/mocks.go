package realtime

import "context"

// NoOpPublisher drops every change message. Used by binaries that never push to the
// admin dashboard feed and by tests.
type NoOpPublisher struct{}

// Publish discards the message.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
