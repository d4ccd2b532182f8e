package postgres

import (
	"context"
	"time"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates an access token repository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (repo *tokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	tokenM := &model.AccessTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		IssuedAt:  token.IssuedAt,
		RevokedAt: token.RevokedAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create access token")
	}

	return nil
}

func (repo *tokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	return &entity.AccessToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		IssuedAt:  tokenM.IssuedAt,
		RevokedAt: tokenM.RevokedAt,
	}, nil
}

// Revoke only touches rows that are still active, so a second call keeps the first timestamp.
func (repo *tokenRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccessTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke access token")
	}

	return nil
}
