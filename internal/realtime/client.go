package realtime

import (
	"sync"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/ports"
)

// DefaultOutboxSize is the per-client event buffer used when the broadcaster
// is constructed with a non-positive size.
const DefaultOutboxSize = 16

// Client is one realtime consumer registered with the broadcaster. Events for
// the client's subscribed topics accumulate in a bounded outbox; when the
// consumer falls behind, the oldest buffered event is dropped to make room
// for the newest one. A slow dashboard loses intermediate states, never the
// most recent one, and never slows anyone else down.
type Client struct {
	id kernel.UUID

	mu     sync.Mutex
	outbox chan ports.Event
	closed bool
}

func newClient(id kernel.UUID, outboxSize int) *Client {
	if outboxSize <= 0 {
		outboxSize = DefaultOutboxSize
	}

	return &Client{
		id:     id,
		outbox: make(chan ports.Event, outboxSize),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Events returns the channel the consumer reads delivered events from. The
// channel is closed when the client is unregistered.
func (c *Client) Events() <-chan ports.Event {
	return c.outbox
}

// enqueue places an event in the outbox without ever blocking the caller.
// When the outbox is full the oldest event is evicted first. The mutex keeps
// concurrent publishers from racing the eviction and serializes enqueue
// against close.
func (c *Client) enqueue(event ports.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	for {
		select {
		case c.outbox <- event:
			return
		default:
		}

		select {
		case <-c.outbox:
		default:
		}
	}
}

// close marks the client closed and closes the outbox. Idempotent.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	close(c.outbox)
}
