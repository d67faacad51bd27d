package impl

import (
	"context"
	"log/slog"
	"slices"

	"allergo/config"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/domain/service"
	"allergo/internal/errors"
	"allergo/internal/usecase"
	"allergo/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	storage       service.AvatarStorage
	maxAvatarSize int64
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Storage   service.AvatarStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		maxAvatarSize: params.Config.Storage.MaxAvatarSize,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetDetail(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindDetailByID(ctx, userID)
}

// UpdateProfile renames the user and/or replaces the allergen set.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindDetailByID(ctx, userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			profile := &entity.Profile{UserID: userID, Name: *input.Name, Avatar: user.AvatarURL()}
			if err := userRepo.UpdateProfile(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
		}

		if input.Allergens != nil {
			ids := uniqueIDs(input.Allergens)
			if err := ensureIngredientsExist(ctx, repoFactory.IngredientRepo(), "alergens", ids); err != nil {
				return err
			}
			if err := userRepo.ReplaceAllergens(ctx, userID, ids); err != nil {
				return errors.Wrap(err, "failed to replace allergens")
			}
		}

		updated, err = userRepo.FindDetailByID(ctx, userID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UploadAvatar stores the picture first and swaps the profile over to it. The
// previous picture is removed only after the profile points at the new one.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {
	if int64(len(data)) > srv.maxAvatarSize {
		return "", domainerrors.ErrPayloadTooLarge.WithDetails(map[string]any{
			"limit": util.FormatBytes(srv.maxAvatarSize),
		})
	}

	url, err := srv.storage.Store(ctx, data)
	if err != nil {
		return "", err
	}

	var previous string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindDetailByID(ctx, userID)
		if err != nil {
			return err
		}
		previous = user.AvatarURL()

		return userRepo.UpdateProfile(ctx, &entity.Profile{UserID: userID, Name: user.DisplayName(), Avatar: url})
	})
	if err != nil {
		if delErr := srv.storage.Delete(ctx, url); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("url", url), slog.Any("error", delErr))
		}

		return "", err
	}

	if previous != "" && previous != url {
		if err := srv.storage.Delete(ctx, previous); err != nil {
			srv.log(ctx).Warn("Failed to remove previous avatar", slog.String("url", previous), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Avatar updated", slog.Any("userID", userID))

	return url, nil
}

// ensureIngredientsExist fails with a validation error on field when any id is unknown.
func ensureIngredientsExist(ctx context.Context, ingredientRepo repository.IngredientRepository, field string, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	count, err := ingredientRepo.CountExisting(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to check ingredients")
	}
	if count != int64(len(ids)) {
		return domainerrors.NewFieldError(field, "contains unknown ingredient ids")
	}

	return nil
}

func uniqueIDs(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}
