package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"board/internal/delivery/api/response"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves task comment threads.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

type commentRequest struct {
	Body string `json:"comment" form:"comment"`
}

type commentResponse struct {
	ID        int64               `json:"id"`
	TaskID    int64               `json:"task_id"`
	UserID    uuid.UUID           `json:"user_id"`
	Body      string              `json:"comment"`
	Depth     entity.CommentDepth `json:"depth"`
	ParentID  *int64              `json:"parent_id"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	User      *entity.UserSummary `json:"user,omitempty"`
}

// threadResponse is a top-level comment; replies is always present, possibly empty.
type threadResponse struct {
	commentResponse
	Replies []*commentResponse `json:"replies"`
}

func toCommentResponse(comment *entity.Comment) *commentResponse {
	return &commentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		Depth:     comment.Depth,
		ParentID:  comment.ParentID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		User:      comment.Author,
	}
}

func toThreadResponse(comment *entity.Comment) *threadResponse {
	replies := make([]*commentResponse, 0, len(comment.Replies))
	for _, reply := range comment.Replies {
		replies = append(replies, toCommentResponse(reply))
	}

	return &threadResponse{
		commentResponse: *toCommentResponse(comment),
		Replies:         replies,
	}
}

// ListComments returns the comment threads of a task.
func (h *CommentHandler) ListComments(c echo.Context) error {
	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	threads := make([]*threadResponse, 0, len(comments))
	for _, comment := range comments {
		threads = append(threads, toThreadResponse(comment))
	}

	return response.Success(c, http.StatusOK, threads)
}

// CreateComment posts a top-level comment on a task.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, h.logger, err, "Invalid comment input")
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		TaskID:   taskID,
		AuthorID: identity.UserID,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toCommentResponse(comment), "Comment created")
}

// CreateReply posts a reply under a top-level comment.
func (h *CommentHandler) CreateReply(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	parentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, h.logger, err, "Invalid reply input")
	}

	reply, err := h.commentUC.CreateReply(c.Request().Context(), &usecase.CreateReplyInput{
		ParentID: parentID,
		AuthorID: identity.UserID,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toCommentResponse(reply), "Reply created")
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithFields(map[string]string{
			name: "The " + strings.ReplaceAll(name, "_", " ") + " must be a positive integer.",
		})
	}

	return id, nil
}
