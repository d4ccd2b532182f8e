package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Foreign keys declared by the comments table.
const (
	fkCommentsUser   = "fk_comments_user"
	fkCommentsParent = "fk_comments_parent"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a comment repository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and copies the generated id and timestamps back.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Omit("User", "Replies").Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			switch violatedConstraint(err) {
			case fkCommentsUser:
				return repository.ErrUserNotFound
			case fkCommentsParent:
				return repository.ErrCommentNotFound
			}
			if comment.ParentID != nil {
				return repository.ErrCommentNotFound
			}

			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrReplyDepthExceeded.WrapMessage("comment depth constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// ListByTask loads depth-0 comments of the task, newest first, with authors and ordered replies.
func (repo *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]*entity.Comment, error) {
	var commentsM []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Replies.User").
		Where("task_id = ? AND depth = ?", taskID, int16(entity.DepthTop)).
		Order("id DESC").
		Find(&commentsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentsM))
	for _, commentM := range commentsM {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        data.ID,
		TaskID:    data.TaskID,
		UserID:    data.UserID,
		Body:      data.Body,
		Depth:     entity.CommentDepth(data.Depth),
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Author:    toUserDomain(data.User).Summary(),
	}

	if len(data.Replies) > 0 {
		comment.Replies = make([]*entity.Comment, 0, len(data.Replies))
		for _, reply := range data.Replies {
			comment.Replies = append(comment.Replies, toCommentDomain(reply))
		}
	}

	return comment
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		TaskID:    data.TaskID,
		UserID:    data.UserID,
		Body:      data.Body,
		Depth:     int16(data.Depth),
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
