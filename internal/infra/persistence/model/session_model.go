package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. At most one active row may exist per
// (user_id, device_id) with a non-empty device id; see the sessions_active_device_idx index.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionKey string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID   string    `gorm:"type:varchar(255);not null;default:''"`
	DeviceName string    `gorm:"type:varchar(255);not null;default:''"`
	IP         string    `gorm:"column:ip;type:varchar(64);not null;default:''"`
	IsActive   bool      `gorm:"not null;default:true"`
	ExpiresAt  time.Time `gorm:"not null"`
	LastUsed   time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionWithRole is the read shape of a session joined with its owner's role.
type SessionWithRole struct {
	SessionModel
	UserRole string
}
