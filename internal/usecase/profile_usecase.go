package usecase

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the profile fields to change. Nil fields are left unchanged;
// a non-nil empty Allergens clears the allergen set.
type UpdateProfileInput struct {
	Name      *string
	Allergens []int
}

// ProfileUsecase reads and edits the caller's own profile.
type ProfileUsecase interface {
	GetDetail(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	// UploadAvatar stores data as the user's profile picture and returns its URL.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (string, error)
}
