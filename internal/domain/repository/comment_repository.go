package repository

import (
	"context"
	"errors"

	"board/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment lookup has no match.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence for task comments and their replies.
type CommentRepository interface {
	// Create stores a comment or reply and fills in its generated ID and timestamps.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment without associations.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// ListByTask returns the top-level comments of a task newest first, each with its author
	// and its replies (oldest first), every reply carrying its own author.
	ListByTask(ctx context.Context, taskID int64) ([]*entity.Comment, error)
}
