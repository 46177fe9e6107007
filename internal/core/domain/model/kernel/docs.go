// Package kernel provides the core domain primitives shared by the order
// and product models.
//
// Its central building block is UUID, an immutable value object for entity
// identifiers. UUID wraps github.com/google/uuid, enforces construction
// through factory functions, and provides a stable byte ordering that the
// delivery planner relies on for deterministic candidate scanning.
//
// All primitives in this package are immutable and safe for concurrent use.
package kernel
