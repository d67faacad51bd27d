package handler

import (
	"time"

	"allergo/internal/domain/entity"
	"allergo/internal/usecase"
)

type signedTokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"` // epoch seconds
}

// TokenPairResponse is returned by login and refresh.
type TokenPairResponse struct {
	UUID    string              `json:"uuid"`
	Access  signedTokenResponse `json:"access"`
	Refresh signedTokenResponse `json:"refresh"`
}

func newTokenPairResponse(pair *entity.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		UUID:    pair.UserID.String(),
		Access:  signedTokenResponse{Token: pair.Access.Token, ExpiredAt: pair.Access.ExpiresAt.Unix()},
		Refresh: signedTokenResponse{Token: pair.Refresh.Token, ExpiredAt: pair.Refresh.ExpiresAt.Unix()},
	}
}

type allergenResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Icon          *string `json:"icon"`
	IsMainAlergen bool    `json:"isMainAlergen"`
}

// UserDetailResponse is the authenticated user's own view of the account.
type UserDetailResponse struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	Alergens  []allergenResponse `json:"alergens"`
	Name      *string            `json:"name"`
	Avatar    *string            `json:"avatar"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func newUserDetailResponse(user *entity.User) UserDetailResponse {
	alergens := make([]allergenResponse, 0, len(user.Allergens))
	for _, ingredient := range user.Allergens {
		alergens = append(alergens, allergenResponse{
			ID:            ingredient.ID,
			Name:          ingredient.Name,
			Icon:          nullable(ingredient.Icon),
			IsMainAlergen: ingredient.IsMainAllergen,
		})
	}

	return UserDetailResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role.String(),
		Alergens:  alergens,
		Name:      nullable(user.DisplayName()),
		Avatar:    nullable(user.AvatarURL()),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// IngredientResponse carries the number of users allergic to the ingredient.
type IngredientResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Icon          *string   `json:"icon"`
	IsMainAlergen bool      `json:"isMainAlergen"`
	UserAlergic   int       `json:"userAlergic"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newIngredientResponses(ingredients []*entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		out = append(out, IngredientResponse{
			ID:            ingredient.ID,
			Name:          ingredient.Name,
			Icon:          nullable(ingredient.Icon),
			IsMainAlergen: ingredient.IsMainAllergen,
			UserAlergic:   ingredient.AllergicUsers,
			CreatedAt:     ingredient.CreatedAt,
			UpdatedAt:     ingredient.UpdatedAt,
		})
	}

	return out
}

// FoodResponse lists the food's ingredients; Alergic is only present for an
// authenticated caller.
type FoodResponse struct {
	ID          int                   `json:"id"`
	Name        string                `json:"name"`
	Picture     string                `json:"picture"`
	ExternalID  *string               `json:"externalId"`
	Description *string               `json:"description"`
	Ingredients []IngredientResponse  `json:"ingredients"`
	Alergic     *[]IngredientResponse `json:"alergic,omitempty"`
}

func newFoodResponse(food *entity.Food, allergic []*entity.Ingredient) FoodResponse {
	resp := FoodResponse{
		ID:          food.ID,
		Name:        food.Name,
		Picture:     food.Picture,
		ExternalID:  nullable(food.ExternalID),
		Description: nullable(food.Description),
		Ingredients: newIngredientResponses(food.Ingredients),
	}
	if allergic != nil {
		alergic := newIngredientResponses(allergic)
		resp.Alergic = &alergic
	}

	return resp
}

// FoodPageResponse is one page of the food listing.
type FoodPageResponse struct {
	Items []FoodResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func newFoodPageResponse(page *usecase.FoodPage) FoodPageResponse {
	items := make([]FoodResponse, 0, len(page.Items))
	for _, food := range page.Items {
		items = append(items, newFoodResponse(food, nil))
	}

	return FoodPageResponse{Items: items, Total: page.Total, Page: page.Page, Limit: page.Limit}
}

type createdResponse struct {
	ID any `json:"id"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
