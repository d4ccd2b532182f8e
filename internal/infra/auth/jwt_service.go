package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"board/config"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	"board/internal/util"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Each signed token is backed by an access_tokens row, which makes individual revocation possible.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Zero means tokens live until revoked.
	tokenRepo    repository.TokenRepository
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, tokenRepo repository.TokenRepository) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	var ttl time.Duration
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		tokenRepo:    tokenRepo,
		now:          time.Now,
	}, nil
}

// Issue signs a new token for the user and records it.
func (s *jwtService) Issue(ctx context.Context, userID uuid.UUID) (*service.IssuedToken, error) {
	tokenID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate token id")
	}

	issuedAt := s.now().UTC()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       tokenID.String(),
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if s.accessTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.accessTTL))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	record := &entity.AccessToken{
		ID:        tokenID,
		UserID:    userID,
		TokenHash: hashToken(signed),
		IssuedAt:  issuedAt,
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist access token")
	}

	return &service.IssuedToken{
		ID:       tokenID,
		Token:    signed,
		IssuedAt: issuedAt,
	}, nil
}

// Resolve verifies the signature, then checks the persisted record is present, matching and not revoked.
func (s *jwtService) Resolve(ctx context.Context, raw string) (*entity.Identity, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("malformed token id")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("malformed token subject")
	}

	record, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown token")
		}

		return nil, errors.Wrap(err, "failed to load access token")
	}

	presented := hashToken(raw)
	if record.UserID != userID || subtle.ConstantTimeCompare([]byte(record.TokenHash), []byte(presented)) != 1 {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token does not match its record")
	}

	if record.Revoked() {
		return nil, errors.WithStack(domainerrors.ErrTokenRevoked)
	}

	return &entity.Identity{UserID: userID, TokenID: tokenID}, nil
}

// Revoke marks the token revoked. Unknown ids are ignored.
func (s *jwtService) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	if err := s.tokenRepo.Revoke(ctx, tokenID, s.now().UTC()); err != nil {
		return errors.Wrap(err, "failed to revoke access token")
	}

	return nil
}

func hashToken(raw string) string {
	return util.Checksum([]byte(raw))
}
