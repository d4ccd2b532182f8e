package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	"board/internal/infra/validation"
	"board/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	commentField            = "comment"
	defaultCommentMaxLength = 2000
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	validator *validation.Validator
	maxLength int
	logger    *slog.Logger
	now       func() time.Time
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Validator *validation.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	maxLength := defaultCommentMaxLength
	if params.Config != nil && params.Config.Comment != nil && params.Config.Comment.MaxLength > 0 {
		maxLength = params.Config.Comment.MaxLength
	}

	return &commentService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		validator: params.Validator,
		maxLength: maxLength,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns the comment threads of a task.
func (srv *commentService) ListComments(ctx context.Context, taskID int64) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CommentRepo().ListByTask(ctx, taskID)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		comments = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// CreateComment adds a top-level comment to a task.
func (srv *commentService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	body, err := srv.checkBody(input.Body)
	if err != nil {
		return nil, err
	}

	comment := entity.NewTopComment(input.TaskID, input.AuthorID, body)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.create(ctx, repoFactory.CommentRepo(), comment)
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.CommentEventCreated, comment)

	return comment, nil
}

// CreateReply attaches a reply to a top-level comment. The reply always joins the parent's task.
func (srv *commentService) CreateReply(ctx context.Context, input *usecase.CreateReplyInput) (*entity.Comment, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	body, err := srv.checkBody(input.Body)
	if err != nil {
		return nil, err
	}

	var reply *entity.Comment
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		parent, err := commentRepo.FindByID(ctx, input.ParentID)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find parent comment")
		}
		if parent.IsReply() {
			return domainerrors.ErrReplyDepthExceeded
		}

		reply = entity.NewReply(parent, input.AuthorID, body)

		return srv.create(ctx, commentRepo, reply)
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.CommentEventReplyCreated, reply)

	return reply, nil
}

func (srv *commentService) create(ctx context.Context, commentRepo repository.CommentRepository, comment *entity.Comment) error {
	err := commentRepo.Create(ctx, comment)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCommentNotFound):
		return domainerrors.ErrCommentNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUnauthorized.WrapMessage("author of the comment no longer exists")
	default:
		return errors.Wrap(err, "failed to create comment")
	}
}

// checkBody trims the body and enforces the length limit.
func (srv *commentService) checkBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", domainerrors.ErrValidationFailed.WithFields(map[string]string{
			commentField: "The comment field is required.",
		})
	}
	if utf8.RuneCountInString(body) > srv.maxLength {
		return "", domainerrors.ErrValidationFailed.WithFields(map[string]string{
			commentField: fmt.Sprintf("The comment may not be greater than %d characters.", srv.maxLength),
		})
	}

	return body, nil
}

// publish notifies subscribers of a new comment. Failures are logged and never reach the caller.
func (srv *commentService) publish(ctx context.Context, eventType string, comment *entity.Comment) {
	event := &service.CommentEvent{
		Type:       eventType,
		CommentID:  comment.ID,
		TaskID:     comment.TaskID,
		ParentID:   comment.ParentID,
		AuthorID:   comment.UserID.String(),
		OccurredAt: srv.now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishCommentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish comment event",
			slog.String("type", eventType),
			slog.Int64("comment_id", comment.ID),
			slog.Any("error", err),
		)
	}
}
