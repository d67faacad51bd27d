package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose tags what a one-time code may be exchanged for.
type OTPPurpose string

const (
	OTPPurposeActivation    OTPPurpose = "activation"
	OTPPurposePasswordReset OTPPurpose = "passwordReset"
)

func (p OTPPurpose) IsValid() bool {
	return p == OTPPurposeActivation || p == OTPPurposePasswordReset
}

// OneTimeCode is a six digit code mailed to the user. It is single-use and expires
// a configured TTL after CreatedAt.
type OneTimeCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      int
	Purpose   OTPPurpose
	CreatedAt time.Time
	UsedAt    *time.Time
}

func (c *OneTimeCode) IsUsed() bool {
	return c.UsedAt != nil
}

func (c *OneTimeCode) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.CreatedAt) > ttl
}

// ResetToken is issued after a verified password reset OTP and is the credential
// accepted by the password reset call. Only its SHA-256 hash is stored.
type ResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	CreatedAt time.Time
	UsedAt    *time.Time
}

func (t *ResetToken) IsUsed() bool {
	return t.UsedAt != nil
}

func (t *ResetToken) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.CreatedAt) > ttl
}
