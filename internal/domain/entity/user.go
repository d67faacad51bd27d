package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate. It is never physically deleted.
type User struct {
	ID           uuid.UUID
	Email        string // unique, compared as stored
	PasswordHash string // bcrypt; the plaintext is never kept
	Role         Role
	IsActive     bool // false until the activation OTP is verified
	Profile      *Profile
	Allergens    []*Ingredient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the user's public presentation.
type Profile struct {
	UserID uuid.UUID
	Name   string
	Avatar string
}

// DisplayName returns the profile name, or an empty string when the profile is not loaded.
func (u *User) DisplayName() string {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Name
}

// AvatarURL returns the profile avatar, or an empty string when the profile is not loaded.
func (u *User) AvatarURL() string {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Avatar
}
