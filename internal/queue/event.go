// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// CatalogQueue is the durable queue catalog events are published to.
const CatalogQueue = "catalog.events"

// EventType names what happened to a catalog entry.
type EventType string

const (
	MovieCreated  EventType = "movie.created"
	MovieDeleted  EventType = "movie.deleted"
	TvShowCreated EventType = "tvshow.created"
	TvShowDeleted EventType = "tvshow.deleted"
)

// CatalogEvent is published after a successful catalog write.  It carries
// enough context for downstream consumers to log or reindex without reading
// the primary database.  Title and Seasons are only set on creation.
type CatalogEvent struct {
	Type       EventType `json:"type"`
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Seasons    int       `json:"seasons,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
