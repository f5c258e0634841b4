package realtime

import (
	"context"
	"log/slog"
	"sync"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/ports"
	"comandas/internal/pkg/errs"
)

// Broadcaster is the topic-partitioned fan-out hub. Clients register, pick
// topics, and receive every event published to those topics through their own
// bounded outbox. Publishing is fire-and-forget: the caller gets no error and
// is never blocked by a slow consumer.
//
// Broadcaster implements ports.EventPublisher, so command handlers publish
// through it without knowing about clients or topics.
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[kernel.UUID]*Client
	topics     map[string]map[kernel.UUID]*Client
	outboxSize int
	logger     *slog.Logger
}

// NewBroadcaster creates a broadcaster whose clients buffer up to outboxSize
// events each. A non-positive size falls back to DefaultOutboxSize.
func NewBroadcaster(outboxSize int, logger *slog.Logger) *Broadcaster {
	if outboxSize <= 0 {
		outboxSize = DefaultOutboxSize
	}

	return &Broadcaster{
		clients:    make(map[kernel.UUID]*Client),
		topics:     make(map[string]map[kernel.UUID]*Client),
		outboxSize: outboxSize,
		logger:     logger.With("component", "broadcaster"),
	}
}

// RegisterClient adds a new consumer and returns its client handle. The
// client receives nothing until it subscribes to a topic. Registering an id
// that is already registered replaces the old registration: the stale
// client's channel is closed and its subscriptions dropped, which is what a
// reconnecting consumer needs.
func (b *Broadcaster) RegisterClient(id kernel.UUID) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if stale, ok := b.clients[id]; ok {
		b.dropLocked(id, stale)
	}

	client := newClient(id, b.outboxSize)
	b.clients[id] = client

	b.logger.DebugContext(context.Background(), "Client registered", "client_id", id.String())
	return client, nil
}

// UnregisterClient removes a consumer from every topic and closes its event
// channel. Unregistering an unknown client is a no-op.
func (b *Broadcaster) UnregisterClient(id kernel.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	client, ok := b.clients[id]
	if !ok {
		return
	}

	b.dropLocked(id, client)
	b.logger.DebugContext(context.Background(), "Client unregistered", "client_id", id.String())
}

// dropLocked removes the client from the registry and every topic and closes
// its channel. Caller holds the write lock.
func (b *Broadcaster) dropLocked(id kernel.UUID, client *Client) {
	delete(b.clients, id)
	for topic, subscribers := range b.topics {
		delete(subscribers, id)
		if len(subscribers) == 0 {
			delete(b.topics, topic)
		}
	}

	client.close()
}

// Subscribe adds the client to a topic. Subscribing twice to the same topic
// is a no-op; the client still receives each event exactly once.
func (b *Broadcaster) Subscribe(id kernel.UUID, topic string) error {
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	client, ok := b.clients[id]
	if !ok {
		return errs.NewObjectNotFoundError("client", id.String())
	}

	subscribers, ok := b.topics[topic]
	if !ok {
		subscribers = make(map[kernel.UUID]*Client)
		b.topics[topic] = subscribers
	}
	subscribers[id] = client

	return nil
}

// Unsubscribe removes the client from a topic. Events already buffered in the
// client's outbox stay there.
func (b *Broadcaster) Unsubscribe(id kernel.UUID, topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.topics[topic]
	if !ok {
		return
	}

	delete(subscribers, id)
	if len(subscribers) == 0 {
		delete(b.topics, topic)
	}
}

// Publish delivers the event to every subscriber of its topic. Subscribers of
// other topics receive nothing. Publishing to a topic with no subscribers is
// a silent no-op.
func (b *Broadcaster) Publish(event ports.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, client := range b.topics[event.Topic] {
		client.enqueue(event)
	}
}

// Close unregisters every client and closes their event channels. Used on
// shutdown after the publishers have stopped; a later Publish is still safe
// and delivers to nobody.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, client := range b.clients {
		b.dropLocked(id, client)
	}
}

// ClientCount reports the number of registered clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
