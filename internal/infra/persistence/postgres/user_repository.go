package postgres

import (
	"context"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/errors"
	"allergo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user row and an empty profile carrying the display name.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Omit("Profile", "Allergens").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	profileM := &model.ProfileModel{UserID: userM.ID, Name: user.DisplayName(), Avatar: user.AvatarURL()}
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	user.Profile = toProfileDomain(profileM)

	return nil
}

// FindByID retrieves a single user by ID without associations.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.take(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByEmail retrieves a single user by the exact stored email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.take(ctx, repo.db.WithContext(ctx).Where("email = ?", email))
}

// FindDetailByID retrieves a user with profile and allergens preloaded.
func (repo *userRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Allergens", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id") }).
		Where("id = ?", id)

	return repo.take(ctx, query)
}

func (repo *userRepository) take(_ context.Context, query *gorm.DB) (*entity.User, error) {
	var userM model.UserModel
	if err := query.Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Activate(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_active": true}, "failed to activate user")
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash}, "failed to update password")
}

func (repo *userRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	err := repo.updateColumns(ctx, id, map[string]any{"email": email}, "failed to update email")
	if err != nil && isUniqueConstraintViolation(err) {
		return domainerrors.ErrDuplicateEmail
	}

	return err
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, action string) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.WithStack(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, action)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{"name": profile.Name, "avatar": profile.Avatar})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// ReplaceAllergens deletes the current allergen rows and inserts ingredientIDs.
// Callers run it inside a transaction.
func (repo *userRepository) ReplaceAllergens(ctx context.Context, id uuid.UUID, ingredientIDs []int) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.UserAllergenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear allergens")
	}
	if len(ingredientIDs) == 0 {
		return nil
	}

	rows := make([]model.UserAllergenModel, 0, len(ingredientIDs))
	for _, ingredientID := range ingredientIDs {
		rows = append(rows, model.UserAllergenModel{UserID: id, IngredientID: ingredientID})
	}
	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewFieldError("alergens", "unknown ingredient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set allergens")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	allergens := make([]*entity.Ingredient, 0, len(data.Allergens))
	for _, a := range data.Allergens {
		allergens = append(allergens, toIngredientDomain(a))
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		IsActive:     data.IsActive,
		Profile:      toProfileDomain(data.Profile),
		Allergens:    allergens,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         role.String(),
		IsActive:     data.IsActive,
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID: data.UserID,
		Name:   data.Name,
		Avatar: data.Avatar,
	}
}
