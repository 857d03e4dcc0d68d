package eventbus

import "context"

// Consumer handles one event type. Consume may be called concurrently from
// GetWorkerCount goroutines, and an error triggers a retry by the bus.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
