// Package services provides domain services for the kitchen workflow.
//
// Its central member is CapacityManager, the admission-control gate between
// pending orders and kitchen stations. The manager keeps an in-memory view of
// per-station occupancy that is authoritative for admission decisions but
// never for durability: on startup, and periodically afterwards, occupancy is
// recomputed from the order store so a crash mid-flight cannot leave
// permanently wrong counts.
package services
