// Package pubsub fans registry reload notifications out to subscribers.
package pubsub

import "time"

// EventType says what happened to the published payload.
type EventType string

const (
	ReloadedEvent     EventType = "reloaded"
	ReloadFailedEvent EventType = "reload_failed"
)

// Event is one published payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
