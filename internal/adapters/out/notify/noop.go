package notify

import (
	"context"

	"freight/internal/core/ports"
)

// NoopNotifier discards all events. Used when no Redis URL is configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that drops every event.
func NewNoopNotifier() NoopNotifier {
	return NoopNotifier{}
}

// Publish does nothing.
func (NoopNotifier) Publish(_ context.Context, _ ports.Event) {}
