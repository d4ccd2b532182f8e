package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. Depth 0 rows are top-level comments, depth 1 rows are replies.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	TaskID    int64     `gorm:"not null;index:idx_comments_task_depth_id,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	Depth     int16     `gorm:"type:smallint;not null;index:idx_comments_task_depth_id,priority:2"`
	ParentID  *int64    `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User    *UserModel      `gorm:"foreignKey:UserID"`
	Replies []*CommentModel `gorm:"foreignKey:ParentID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
