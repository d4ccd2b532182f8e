package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"board/config"
	"board/internal/domain/repository"
	"board/internal/infra/validation"
	mockRepo "board/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			AvatarPrefix:  "user_avatar/",
			MaxAvatarSize: 1024,
		},
		Comment: &config.CommentConfig{
			MaxLength: 20,
		},
	}
}

func newTestValidator(t *testing.T) *validation.Validator {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	return v
}

// expectTx makes the transaction manager run the callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
