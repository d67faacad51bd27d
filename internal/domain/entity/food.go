package entity

import "time"

// Ingredient is a catalog item a user can declare an allergy to.
type Ingredient struct {
	ID             int
	Name           string
	Icon           string
	IsMainAllergen bool
	// AllergicUsers counts users that declared this ingredient as an allergen. Only set by catalog reads.
	AllergicUsers int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Food is a catalog dish composed of ingredients.
type Food struct {
	ID          int
	ExternalID  string
	Name        string
	Picture     string
	Description string
	Ingredients []*Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FoodFilter narrows a paginated food listing.
type FoodFilter struct {
	Name       string
	ExternalID string
	Page       int
	Limit      int
}

func (f FoodFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
