package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:user"`
	IsActive     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile   *ProfileModel      `gorm:"foreignKey:UserID"`
	Allergens []*IngredientModel `gorm:"many2many:user_allergens;joinForeignKey:UserID;joinReferences:IngredientID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;default:''"`
	Avatar    string    `gorm:"type:varchar(512);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// UserAllergenModel mirrors the 'user_allergens' join table.
type UserAllergenModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID int       `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserAllergenModel) TableName() string {
	return "user_allergens"
}
