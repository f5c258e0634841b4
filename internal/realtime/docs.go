// Package realtime implements the in-process pub/sub hub that pushes order
// and capacity updates to connected dashboards.
//
// Events are partitioned by topic: a client subscribed to "orders" receives
// order snapshots, one subscribed to "capacity" receives station load
// summaries, and a client may subscribe to both. Delivery is fan-out within a
// topic; every subscriber gets its own copy of every event.
//
// Each client owns a bounded outbox. Publishing never blocks: when a slow
// consumer's outbox is full, the oldest buffered event is dropped in favor of
// the newest one. State events supersede each other, so the freshest snapshot
// is always the one worth keeping. There is no replay; a client that
// reconnects re-reads current state through the query endpoints and then
// follows the event stream.
package realtime
