package usecase

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateFoodInput struct {
	ExternalID    string
	Name          string
	Picture       string
	Description   string
	IngredientIDs []int
}

type CreateIngredientInput struct {
	Name           string
	Icon           string
	IsMainAllergen bool
}

// FoodDetail is a food as seen by one viewer.
type FoodDetail struct {
	Food *entity.Food
	// Allergic lists the food's ingredients the viewer is allergic to. Nil for anonymous viewers.
	Allergic []*entity.Ingredient
}

// FoodPage is one page of a food listing.
type FoodPage struct {
	Items []*entity.Food
	Total int64
	Page  int
	Limit int
}

// CatalogUsecase serves and curates foods and ingredients.
type CatalogUsecase interface {
	// GetFood returns the food. viewer is nil for anonymous requests.
	GetFood(ctx context.Context, id int, viewer *uuid.UUID) (*FoodDetail, error)
	ListFoods(ctx context.Context, filter entity.FoodFilter) (*FoodPage, error)
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)
	CreateIngredient(ctx context.Context, input CreateIngredientInput) (*entity.Ingredient, error)
}
