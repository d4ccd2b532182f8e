// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	"board/internal/infra/validation"
	"board/internal/usecase"
	"board/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarField           = "avatar_img"
	defaultAvatarPrefix   = "user_avatar/"
	defaultMaxAvatarBytes = 5 << 20
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	blobStore      service.BlobStore
	validator      *validation.Validator
	avatarPrefix   string
	maxAvatarBytes int64
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	BlobStore    service.BlobStore
	Validator    *validation.Validator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	avatarPrefix := defaultAvatarPrefix
	maxAvatarBytes := int64(defaultMaxAvatarBytes)
	if params.Config != nil && params.Config.Storage != nil {
		if params.Config.Storage.AvatarPrefix != "" {
			avatarPrefix = params.Config.Storage.AvatarPrefix
		}
		if params.Config.Storage.MaxAvatarSize > 0 {
			maxAvatarBytes = params.Config.Storage.MaxAvatarSize
		}
	}

	return &authService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		blobStore:      params.BlobStore,
		validator:      params.Validator,
		avatarPrefix:   avatarPrefix,
		maxAvatarBytes: maxAvatarBytes,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account, stores the optional avatar and signs the new user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if err := srv.checkAvatar(input.Avatar); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WithFields(map[string]string{
				"email": "The email has already been taken.",
			})
		}

		avatarURL, err := srv.storeAvatar(ctx, input.Avatar)
		if err != nil {
			return err
		}

		user := &entity.User{
			Email:        input.Email,
			Name:         strings.TrimSpace(input.Name),
			PasswordHash: passwordHash,
			AvatarURL:    avatarURL,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		registered = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", registered.ID.String()))

	return srv.signIn(ctx, registered)
}

// Login verifies the credentials and issues a fresh token. Existing tokens stay valid.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(ctx, user)
}

// Logout revokes the token the caller authenticated with.
func (srv *authService) Logout(ctx context.Context, identity *entity.Identity) error {
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	if err := srv.tokenService.Revoke(ctx, identity.TokenID); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Info("User logged out",
		slog.String("user_id", identity.UserID.String()),
		slog.String("token_id", identity.TokenID.String()),
	)

	return nil
}

// GetUserInfo returns the caller's profile.
func (srv *authService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("user of the token no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user.Summary(), nil
}

// UpdateUserInfo applies the supplied fields to the caller's profile and leaves the rest as they are.
func (srv *authService) UpdateUserInfo(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.UserSummary, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, err
		}
	}
	if err := srv.checkAvatar(input.Avatar); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("user of the token no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}

		if input.Password != nil {
			if srv.hasher.Check(*input.Password, user.PasswordHash) {
				return domainerrors.ErrPasswordReused.WithFields(map[string]string{
					"password": "The new password must differ from the current password.",
				})
			}

			passwordHash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			user.PasswordHash = passwordHash
		}

		if input.Avatar != nil {
			avatarURL, err := srv.storeAvatar(ctx, input.Avatar)
			if err != nil {
				return err
			}
			user.AvatarURL = avatarURL
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User information updated",
		slog.String("user_id", userID.String()),
		slog.Bool("name_changed", input.Name != nil),
		slog.Bool("password_changed", input.Password != nil),
		slog.Bool("avatar_changed", input.Avatar != nil),
	)

	return updated.Summary(), nil
}

func (srv *authService) signIn(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	issued, err := srv.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		Token: issued.Token,
		User:  user.Summary(),
	}, nil
}

// checkAvatar rejects empty, oversized and non-image uploads before any write happens.
func (srv *authService) checkAvatar(avatar *usecase.Upload) error {
	if avatar == nil {
		return nil
	}

	var msg string
	switch {
	case len(avatar.Data) == 0:
		msg = "The avatar img must be a file."
	case int64(len(avatar.Data)) > srv.maxAvatarBytes:
		msg = fmt.Sprintf("The avatar img may not be greater than %s.", util.FormatBytes(srv.maxAvatarBytes))
	case !strings.HasPrefix(mimetype.Detect(avatar.Data).String(), "image/"):
		msg = "The avatar img must be an image."
	default:
		return nil
	}

	return domainerrors.ErrValidationFailed.WithFields(map[string]string{avatarField: msg})
}

// storeAvatar writes the avatar to the blob store. A nil upload stores nothing.
func (srv *authService) storeAvatar(ctx context.Context, avatar *usecase.Upload) (string, error) {
	if avatar == nil {
		return "", nil
	}

	key := srv.avatarPrefix + strconv.FormatInt(srv.now().Unix(), 10) + sanitizeFilename(avatar.Filename)
	contentType := mimetype.Detect(avatar.Data).String()

	ref, err := srv.blobStore.Put(ctx, key, avatar.Data, contentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to store avatar")
	}

	return ref, nil
}

// sanitizeFilename keeps the base name of the client filename, limited to a safe character set.
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return "avatar"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
