package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds one device to a user and is the revocation unit for every token
// derived from it. Tokens carry the session Key, not the row ID.
type Session struct {
	ID         uuid.UUID
	Key        string
	UserID     uuid.UUID
	DeviceID   string
	DeviceName string
	IP         string
	IsActive   bool
	ExpiresAt  time.Time
	LastUsed   time.Time
	CreatedAt  time.Time

	// UserRole is the owner's role at lookup time. Only set by lookups that join the user.
	UserRole Role
}

// IsUsable reports whether the session can still authorize requests at now.
func (s *Session) IsUsable(now time.Time) bool {
	return s.IsActive && now.Before(s.ExpiresAt)
}

// DeviceMeta describes the client a session is created or rotated for.
type DeviceMeta struct {
	DeviceID   string
	DeviceName string
	IP         string
}
