// Package queue defines the domain events published to RabbitMQ and the
// publisher that delivers them.  Events are advisory: downstream consumers
// (audit, projections) may or may not exist, and publish failures never
// fail the originating request.
package queue

import "time"

// Queue name for shape lifecycle events.
const ShapeChangedQueue = "shape.changed"

// Actions carried by ShapeChangedEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ShapeChangedEvent announces that a shape resource was created, updated or
// deleted.  ShapeKind is the collection name (rectangles, squares,
// triangles, diamonds).
type ShapeChangedEvent struct {
	ShapeKind  string    `json:"shape_kind"`
	ShapeID    uint64    `json:"shape_id"`
	UserID     uint64    `json:"user_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
