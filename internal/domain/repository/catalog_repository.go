package repository

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

type FoodRepository interface {
	// Create inserts the food and links ingredientIDs.
	Create(ctx context.Context, food *entity.Food, ingredientIDs []int) error

	// FindByID loads the food with its ingredients, or domainerrors.ErrFoodNotFound.
	FindByID(ctx context.Context, id int) (*entity.Food, error)

	// List returns one page of foods matching filter and the total match count.
	List(ctx context.Context, filter entity.FoodFilter) ([]*entity.Food, int64, error)
}

type IngredientRepository interface {
	// Create inserts an ingredient. A taken name yields domainerrors.ErrIngredientAlreadyExists.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// ListWithAllergicCounts returns all ingredients with AllergicUsers populated.
	ListWithAllergicCounts(ctx context.Context) ([]*entity.Ingredient, error)

	// FindUserAllergens returns, among ingredientIDs, the ones the user is allergic to,
	// with AllergicUsers populated.
	FindUserAllergens(ctx context.Context, userID uuid.UUID, ingredientIDs []int) ([]*entity.Ingredient, error)

	// CountExisting returns how many of ids exist.
	CountExisting(ctx context.Context, ids []int) (int64, error)
}
