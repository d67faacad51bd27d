package model

import "time"

// IngredientModel mirrors the 'ingredients' table.
type IngredientModel struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Icon           string `gorm:"type:varchar(512);not null;default:''"`
	IsMainAllergen bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// AllergicUsers is filled by aggregate reads only.
	AllergicUsers int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// FoodModel mirrors the 'foods' table.
type FoodModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	ExternalID  string `gorm:"type:varchar(255);not null;default:''"`
	Name        string `gorm:"type:varchar(255);not null"`
	Picture     string `gorm:"type:varchar(512);not null;default:''"`
	Description string `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ingredients []*IngredientModel `gorm:"many2many:food_ingredients;joinForeignKey:FoodID;joinReferences:IngredientID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}

// FoodIngredientModel mirrors the 'food_ingredients' join table.
type FoodIngredientModel struct {
	FoodID       int `gorm:"primaryKey"`
	IngredientID int `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (FoodIngredientModel) TableName() string {
	return "food_ingredients"
}
