package impl

import (
	"context"
	"testing"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	mockRepo "allergo/internal/mocks/repository"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogHarness(t *testing.T) (*memStore, usecase.CatalogUsecase) {
	t.Helper()

	store := newMemStore(newTestClock())
	srv := NewCatalogService(CatalogServiceParams{
		TxManager:      store,
		FoodRepo:       memFoodRepo{store.repo()},
		IngredientRepo: memIngredientRepo{store.repo()},
		Logger:         newDiscardLogger(),
	})

	return store, srv
}

func TestCatalogService_CreateAndReadFood(t *testing.T) {
	store, srv := newCatalogHarness(t)
	ctx := context.Background()

	peanut, err := srv.CreateIngredient(ctx, usecase.CreateIngredientInput{Name: "Peanut", IsMainAllergen: true})
	require.NoError(t, err)
	rice, err := srv.CreateIngredient(ctx, usecase.CreateIngredientInput{Name: "Rice"})
	require.NoError(t, err)

	_, err = srv.CreateIngredient(ctx, usecase.CreateIngredientInput{Name: "peanut"})
	assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyExists)

	food, err := srv.CreateFood(ctx, usecase.CreateFoodInput{
		Name:          "Satay",
		Description:   "Grilled skewers",
		IngredientIDs: []int{peanut.ID, rice.ID, peanut.ID},
	})
	require.NoError(t, err)

	viewer := uuid.New()
	require.NoError(t, memUserRepo{store.repo()}.ReplaceAllergens(ctx, viewer, []int{peanut.ID}))

	t.Run("anonymous", func(t *testing.T) {
		detail, err := srv.GetFood(ctx, food.ID, nil)

		require.NoError(t, err)
		assert.Len(t, detail.Food.Ingredients, 2)
		assert.Nil(t, detail.Allergic)
	})

	t.Run("authenticated", func(t *testing.T) {
		detail, err := srv.GetFood(ctx, food.ID, &viewer)

		require.NoError(t, err)
		require.Len(t, detail.Allergic, 1)
		assert.Equal(t, "Peanut", detail.Allergic[0].Name)
		assert.Equal(t, 1, detail.Allergic[0].AllergicUsers)
	})

	t.Run("authenticated without allergies", func(t *testing.T) {
		other := uuid.New()
		detail, err := srv.GetFood(ctx, food.ID, &other)

		require.NoError(t, err)
		assert.NotNil(t, detail.Allergic)
		assert.Empty(t, detail.Allergic)
	})

	t.Run("unknown food", func(t *testing.T) {
		_, err := srv.GetFood(ctx, 404, nil)

		assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
	})

	ingredients, err := srv.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, 1, ingredients[0].AllergicUsers)
	assert.Equal(t, 0, ingredients[1].AllergicUsers)
}

func TestCatalogService_CreateFood_UnknownIngredient(t *testing.T) {
	_, srv := newCatalogHarness(t)

	_, err := srv.CreateFood(context.Background(), usecase.CreateFoodInput{Name: "Soup", IngredientIDs: []int{7}})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_ListFoods_Pagination(t *testing.T) {
	_, srv := newCatalogHarness(t)
	ctx := context.Background()

	for _, name := range []string{"Apple pie", "Banana bread", "Apple crumble"} {
		_, err := srv.CreateFood(ctx, usecase.CreateFoodInput{Name: name})
		require.NoError(t, err)
	}

	page, err := srv.ListFoods(ctx, entity.FoodFilter{Name: "apple", Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Apple pie", page.Items[0].Name)

	page, err = srv.ListFoods(ctx, entity.FoodFilter{Name: "apple", Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Apple crumble", page.Items[0].Name)
}

func TestCatalogService_ListFoods_NormalizesPaging(t *testing.T) {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	srv := NewCatalogService(CatalogServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		FoodRepo:       foodRepo,
		IngredientRepo: mockRepo.NewMockIngredientRepository(t),
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()

	tests := []struct {
		name      string
		filter    entity.FoodFilter
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", filter: entity.FoodFilter{}, wantPage: 1, wantLimit: 20},
		{name: "clamped", filter: entity.FoodFilter{Page: 3, Limit: 500}, wantPage: 3, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := entity.FoodFilter{Page: tt.wantPage, Limit: tt.wantLimit}
			foodRepo.EXPECT().List(ctx, want).Return([]*entity.Food{}, 0, nil).Once()

			page, err := srv.ListFoods(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}
