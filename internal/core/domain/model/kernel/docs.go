// Package kernel provides core domain primitives shared across the order
// management model.
//
// Its main member is UUID, a value object for aggregate identifiers with
// validation and comparison capabilities. The type is immutable and
// thread-safe, making it suitable for concurrent use.
package kernel
