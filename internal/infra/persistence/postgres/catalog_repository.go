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

const allergicCountSelect = "ingredients.*, (SELECT COUNT(*) FROM user_allergens ua WHERE ua.ingredient_id = ingredients.id) AS allergic_users"

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// Create inserts the food row and its ingredient links. Callers run it inside a transaction.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food, ingredientIDs []int) error {
	foodM := &model.FoodModel{
		ExternalID:  food.ExternalID,
		Name:        food.Name,
		Picture:     food.Picture,
		Description: food.Description,
	}
	if err := repo.db.WithContext(ctx).Omit("Ingredients").Create(foodM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	if len(ingredientIDs) > 0 {
		links := make([]model.FoodIngredientModel, 0, len(ingredientIDs))
		for _, ingredientID := range ingredientIDs {
			links = append(links, model.FoodIngredientModel{FoodID: foodM.ID, IngredientID: ingredientID})
		}
		if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.NewFieldError("ingredients", "unknown ingredient")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to link food ingredients")
		}
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt
	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

func (repo *foodRepository) FindByID(ctx context.Context, id int) (*entity.Food, error) {
	var foodM model.FoodModel
	err := repo.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id") }).
		Where("id = ?", id).
		Take(&foodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food")
	}

	return toFoodDomain(&foodM), nil
}

func (repo *foodRepository) List(ctx context.Context, filter entity.FoodFilter) ([]*entity.Food, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.FoodModel{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.ExternalID != "" {
		query = query.Where("external_id = ?", filter.ExternalID)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count foods")
	}
	if total == 0 {
		return []*entity.Food{}, 0, nil
	}

	var foodMs []*model.FoodModel
	err := query.
		Order("id").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&foodMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list foods")
	}

	foods := make([]*entity.Food, 0, len(foodMs))
	for _, f := range foodMs {
		foods = append(foods, toFoodDomain(f))
	}

	return foods, total, nil
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := &model.IngredientModel{
		Name:           ingredient.Name,
		Icon:           ingredient.Icon,
		IsMainAllergen: ingredient.IsMainAllergen,
	}
	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIngredientAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt
	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

func (repo *ingredientRepository) ListWithAllergicCounts(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientMs []*model.IngredientModel
	err := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Select(allergicCountSelect).
		Order("ingredients.id").
		Find(&ingredientMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ingredients")
	}

	return toIngredientsDomain(ingredientMs), nil
}

func (repo *ingredientRepository) FindUserAllergens(ctx context.Context, userID uuid.UUID, ingredientIDs []int) ([]*entity.Ingredient, error) {
	if len(ingredientIDs) == 0 {
		return []*entity.Ingredient{}, nil
	}

	var ingredientMs []*model.IngredientModel
	err := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Select(allergicCountSelect).
		Where("ingredients.id IN ?", ingredientIDs).
		Where("EXISTS (SELECT 1 FROM user_allergens mine WHERE mine.ingredient_id = ingredients.id AND mine.user_id = ?)", userID).
		Order("ingredients.id").
		Find(&ingredientMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user allergens")
	}

	return toIngredientsDomain(ingredientMs), nil
}

func (repo *ingredientRepository) CountExisting(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.IngredientModel{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count ingredients")
	}

	return count, nil
}

func toFoodDomain(data *model.FoodModel) *entity.Food {
	return &entity.Food{
		ID:          data.ID,
		ExternalID:  data.ExternalID,
		Name:        data.Name,
		Picture:     data.Picture,
		Description: data.Description,
		Ingredients: toIngredientsDomain(data.Ingredients),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toIngredientsDomain(data []*model.IngredientModel) []*entity.Ingredient {
	ingredients := make([]*entity.Ingredient, 0, len(data))
	for _, i := range data {
		ingredients = append(ingredients, toIngredientDomain(i))
	}

	return ingredients
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	return &entity.Ingredient{
		ID:             data.ID,
		Name:           data.Name,
		Icon:           data.Icon,
		IsMainAllergen: data.IsMainAllergen,
		AllergicUsers:  data.AllergicUsers,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
