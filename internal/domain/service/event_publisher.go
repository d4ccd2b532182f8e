package service

import (
	"context"
	"time"
)

// Comment event types.
const (
	CommentEventCreated      = "comment.created"
	CommentEventReplyCreated = "reply.created"
)

// CommentEvent represents a comment change published to downstream consumers.
type CommentEvent struct {
	Type       string    `json:"type"`
	CommentID  int64     `json:"comment_id"`
	TaskID     int64     `json:"task_id"`
	ParentID   *int64    `json:"parent_id,omitempty"`
	AuthorID   string    `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCommentEvent publishes a comment event.
	PublishCommentEvent(ctx context.Context, event *CommentEvent) error

	// Close releases resources
	Close() error
}
