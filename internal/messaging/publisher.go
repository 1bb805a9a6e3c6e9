package messaging

import (
	"context"
)

// Publisher defines the interface for publishing collect triggers to the
// message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// EnsureStream creates or updates the trigger stream
	EnsureStream(ctx context.Context) error
	// PublishTrigger publishes a collect trigger to the message broker
	PublishTrigger(ctx context.Context, trigger *CollectTrigger) error
	// Close closes the connection
	Close()
}
