package domain

import "time"

type EventType string

const (
	EventPostCreated    EventType = "post.created"
	EventPostUpdated    EventType = "post.updated"
	EventPostArchived   EventType = "post.archived"
	EventPostUnarchived EventType = "post.unarchived"
	EventPostDeleted    EventType = "post.deleted"
)

// Event is broadcast to websocket subscribers on post lifecycle changes.
type Event struct {
	Type      EventType `json:"type"`
	PostID    int64     `json:"post_id"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
