package handler

import (
	"net/http"

	"allergo/internal/delivery/api/response"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// FoodHandler serves the food and ingredient catalog.
type FoodHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{catalogUC: params.CatalogUC}
}

type listFoodsRequest struct {
	Page       int    `query:"page" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Name       string `query:"name" validate:"omitempty,max=100"`
	ExternalID string `query:"externalId" validate:"omitempty,max=100"`
}

type createFoodRequest struct {
	ExternalID  string `json:"externalId" validate:"omitempty,max=100"`
	Name        string `json:"name" validate:"required,min=3"`
	Picture     string `json:"picture" validate:"required"`
	Description string `json:"description" validate:"required,min=3"`
	Ingredients []int  `json:"ingredients" validate:"required,min=1,dive,gt=0"`
}

type createIngredientRequest struct {
	Name          string `json:"name" validate:"required,min=3"`
	Icon          string `json:"icon"`
	IsMainAlergen bool   `json:"isMainAlergen"`
}

// GetFood returns a food; an authenticated caller also gets the ingredients it is allergic to.
func (h *FoodHandler) GetFood(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var viewer *uuid.UUID
	if caller, ok := deliverycontext.GetIdentity(c); ok {
		viewer = &caller.UserID
	}

	detail, err := h.catalogUC.GetFood(c.Request().Context(), id, viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFoodResponse(detail.Food, detail.Allergic))
}

// ListFoods pages through the catalog.
func (h *FoodHandler) ListFoods(c echo.Context) error {
	var req listFoodsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.catalogUC.ListFoods(c.Request().Context(), entity.FoodFilter{
		Name:       req.Name,
		ExternalID: req.ExternalID,
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFoodPageResponse(page))
}

// CreateFood adds a food to the catalog.
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var req createFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.catalogUC.CreateFood(c.Request().Context(), usecase.CreateFoodInput{
		ExternalID:    req.ExternalID,
		Name:          req.Name,
		Picture:       req.Picture,
		Description:   req.Description,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createdResponse{ID: food.ID})
}

// ListIngredients returns every ingredient with its allergic user count.
func (h *FoodHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.catalogUC.ListIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newIngredientResponses(ingredients))
}

// CreateIngredient adds an ingredient.
func (h *FoodHandler) CreateIngredient(c echo.Context) error {
	var req createIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ingredient, err := h.catalogUC.CreateIngredient(c.Request().Context(), usecase.CreateIngredientInput{
		Name:           req.Name,
		Icon:           req.Icon,
		IsMainAllergen: req.IsMainAlergen,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createdResponse{ID: ingredient.ID})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
