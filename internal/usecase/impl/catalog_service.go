package impl

import (
	"context"
	"log/slog"

	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	"allergo/internal/domain/repository"
	"allergo/internal/errors"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type catalogService struct {
	txManager      repository.TransactionManager
	foodRepo       repository.FoodRepository
	ingredientRepo repository.IngredientRepository
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FoodRepo       repository.FoodRepository
	IngredientRepo repository.IngredientRepository
	Logger         *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:      params.TxManager,
		foodRepo:       params.FoodRepo,
		ingredientRepo: params.IngredientRepo,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFood loads the food and, for an authenticated viewer, which of its
// ingredients the viewer is allergic to.
func (srv *catalogService) GetFood(ctx context.Context, id int, viewer *uuid.UUID) (*usecase.FoodDetail, error) {
	food, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &usecase.FoodDetail{Food: food}
	if viewer == nil {
		return detail, nil
	}

	ids := make([]int, 0, len(food.Ingredients))
	for _, ingredient := range food.Ingredients {
		ids = append(ids, ingredient.ID)
	}

	allergic, err := srv.ingredientRepo.FindUserAllergens(ctx, *viewer, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load viewer allergens")
	}
	if allergic == nil {
		allergic = []*entity.Ingredient{}
	}
	detail.Allergic = allergic

	return detail, nil
}

func (srv *catalogService) ListFoods(ctx context.Context, filter entity.FoodFilter) (*usecase.FoodPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultPageLimit
	case filter.Limit > maxPageLimit:
		filter.Limit = maxPageLimit
	}

	items, total, err := srv.foodRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &usecase.FoodPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (srv *catalogService) CreateFood(ctx context.Context, input usecase.CreateFoodInput) (*entity.Food, error) {
	food := &entity.Food{
		ExternalID:  input.ExternalID,
		Name:        input.Name,
		Picture:     input.Picture,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids := uniqueIDs(input.IngredientIDs)
		if err := ensureIngredientsExist(ctx, repoFactory.IngredientRepo(), "ingredients", ids); err != nil {
			return err
		}

		return repoFactory.FoodRepo().Create(ctx, food, ids)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Food created", slog.Int("foodID", food.ID))

	return food, nil
}

func (srv *catalogService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	return srv.ingredientRepo.ListWithAllergicCounts(ctx)
}

func (srv *catalogService) CreateIngredient(ctx context.Context, input usecase.CreateIngredientInput) (*entity.Ingredient, error) {
	ingredient := &entity.Ingredient{
		Name:           input.Name,
		Icon:           input.Icon,
		IsMainAllergen: input.IsMainAllergen,
	}
	if err := srv.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Ingredient created", slog.Int("ingredientID", ingredient.ID))

	return ingredient, nil
}
