// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository persists users, their profile and their allergen set.
type UserRepository interface {
	// Create inserts the user and an empty profile. A taken email yields domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindDetailByID loads the user with profile and allergens.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	Activate(ctx context.Context, id uuid.UUID) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateEmail changes the login email. A taken email yields domainerrors.ErrDuplicateEmail.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// ReplaceAllergens sets the user's allergen set to exactly ingredientIDs.
	ReplaceAllergens(ctx context.Context, id uuid.UUID, ingredientIDs []int) error
}
