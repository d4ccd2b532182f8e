package usecase

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines a new top-level comment on a task.
type CreateCommentInput struct {
	TaskID   int64     `json:"task_id" validate:"gt=0"`
	AuthorID uuid.UUID `json:"-"`
	Body     string    `json:"comment" validate:"notblank"`
}

// CreateReplyInput defines a reply to an existing top-level comment.
// The task is always taken from the parent comment.
type CreateReplyInput struct {
	ParentID int64     `json:"comment_id" validate:"gt=0"`
	AuthorID uuid.UUID `json:"-"`
	Body     string    `json:"comment" validate:"notblank"`
}

// CommentUsecase defines the comment thread operations of a task.
type CommentUsecase interface {
	// ListComments returns the task's top-level comments newest first, each with its replies oldest first.
	ListComments(ctx context.Context, taskID int64) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)
	CreateReply(ctx context.Context, input *CreateReplyInput) (*entity.Comment, error)
}
