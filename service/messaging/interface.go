package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Publish when the queue cannot accept another
// message without blocking.
var ErrQueueFull = errors.New("messaging: queue full")

// Queue represents an abstract message queue for any payload type. The
// simulator publishes scheduler activity through this interface so that
// observers stay decoupled from the concrete transport.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue
	Consume(ctx context.Context) (Message[T], error)

	// Size returns the number of messages currently held by the queue
	Size() int
}

// Message represents a message retrieved from a queue
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error

	// Nack indicates failure in processing this message
	Nack(err error) error
}
