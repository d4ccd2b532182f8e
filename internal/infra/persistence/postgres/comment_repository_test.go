package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"board/internal/domain/entity"
	"board/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"id", "task_id", "user_id", "body", "depth", "parent_id", "created_at", "updated_at"}

func TestCommentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	comment := entity.NewTopComment(7, uuid.New(), "first")
	require.NoError(t, repo.Create(context.Background(), comment))

	assert.Equal(t, int64(42), comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentRepository_CreateReplyToMissingParent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: fkCommentsParent})

	parent := &entity.Comment{ID: 99, TaskID: 7, Depth: entity.DepthTop}
	err := repo.Create(context.Background(), entity.NewReply(parent, uuid.New(), "reply"))
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}

func TestCommentRepository_CreateReplyByMissingAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: fkCommentsUser})

	parent := &entity.Comment{ID: 99, TaskID: 7, Depth: entity.DepthTop}
	err := repo.Create(context.Background(), entity.NewReply(parent, uuid.New(), "reply"))
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NotErrorIs(t, err, repository.ErrCommentNotFound)
}

func TestCommentRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(5, 7, userID.String(), "reply", 1, 3, now, now))

	comment, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, comment.IsReply())
	require.NotNil(t, comment.ParentID)
	assert.Equal(t, int64(3), *comment.ParentID)
	assert.Nil(t, comment.Author)
}

func TestCommentRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments"`)).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}

func TestCommentRepository_ListByTaskAssemblesThreads(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewCommentRepository(db)

	author := uuid.New()
	replier := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE task_id = $1 AND depth = $2 ORDER BY id DESC`)).
		WithArgs(7, 0).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(4, 7, author.String(), "newest", 0, nil, now, now).
			AddRow(2, 7, author.String(), "older", 0, nil, now, now))

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE "comments"."parent_id" .*ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(3, 7, replier.String(), "first reply", 1, 2, now, now).
			AddRow(5, 7, author.String(), "second reply", 1, 2, now, now))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id"`)).
		WithArgs(replier.String(), author.String()).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(replier.String(), "replier@example.com", "Replier", "hash", "", now, now).
			AddRow(author.String(), "author@example.com", "Author", "hash", "", now, now))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id"`)).
		WithArgs(author.String()).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(author.String(), "author@example.com", "Author", "hash", "", now, now))

	comments, err := repo.ListByTask(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, int64(4), comments[0].ID)
	assert.Empty(t, comments[0].Replies)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, "Author", comments[0].Author.Name)

	older := comments[1]
	require.Len(t, older.Replies, 2)
	assert.Equal(t, int64(3), older.Replies[0].ID)
	assert.Equal(t, "Replier", older.Replies[0].Author.Name)
	assert.Equal(t, int64(5), older.Replies[1].ID)
	assert.Equal(t, "Author", older.Replies[1].Author.Name)
}
