package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommentDepth tags a comment as either a top-level comment or a reply.
type CommentDepth int

const (
	// DepthTop marks a comment attached directly to a task.
	DepthTop CommentDepth = 0
	// DepthReply marks a reply to a top-level comment. Replies cannot be replied to.
	DepthReply CommentDepth = 1
)

// Valid reports whether d is one of the two supported depths.
func (d CommentDepth) Valid() bool {
	return d == DepthTop || d == DepthReply
}

// Comment is a message left on a task. A reply refers to exactly one top-level comment by id
// and always shares that comment's task.
type Comment struct {
	ID        int64        `json:"id"`
	TaskID    int64        `json:"task_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Body      string       `json:"comment"`
	Depth     CommentDepth `json:"depth"`
	ParentID  *int64       `json:"parent_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Author  *UserSummary `json:"user,omitempty"`
	Replies []*Comment   `json:"replies,omitempty"`
}

// IsReply reports whether the comment hangs under another comment.
func (c *Comment) IsReply() bool {
	return c.Depth == DepthReply
}

// NewTopComment builds a depth-0 comment for a task.
func NewTopComment(taskID int64, authorID uuid.UUID, body string) *Comment {
	return &Comment{
		TaskID: taskID,
		UserID: authorID,
		Body:   body,
		Depth:  DepthTop,
	}
}

// NewReply builds a depth-1 comment under parent. The task is inherited from the parent.
func NewReply(parent *Comment, authorID uuid.UUID, body string) *Comment {
	parentID := parent.ID

	return &Comment{
		TaskID:   parent.TaskID,
		UserID:   authorID,
		Body:     body,
		Depth:    DepthReply,
		ParentID: &parentID,
	}
}
