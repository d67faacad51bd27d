package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCodeModel mirrors the 'one_time_codes' table.
type OneTimeCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Code      int       `gorm:"not null"`
	Purpose   string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	UsedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}

// ResetTokenModel mirrors the 'reset_tokens' table. Only the SHA-256 hex digest of the token is stored.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	CreatedAt time.Time
	UsedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "reset_tokens"
}
