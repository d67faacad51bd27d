package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenCategory discriminates access from refresh tokens inside the signed claims.
type TokenCategory string

const (
	TokenCategoryAccess  TokenCategory = "access"
	TokenCategoryRefresh TokenCategory = "refresh"
)

// AccessClaims are the verified contents of an access token.
// Role is a snapshot taken at signing time.
type AccessClaims struct {
	UserID     uuid.UUID
	SessionKey string
	Role       Role
	Category   TokenCategory
	IsFresh    bool
	ExpiresAt  time.Time
}

// RefreshClaims are the verified contents of a refresh token.
type RefreshClaims struct {
	UserID     uuid.UUID
	SessionKey string
	Category   TokenCategory
	ExpiresAt  time.Time
}

// SignedToken is an encoded bearer token with its absolute expiry.
type SignedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	UserID  uuid.UUID
	Access  SignedToken
	Refresh SignedToken
}

// Identity is what the authorization middleware attaches to an authorized request.
type Identity struct {
	UserID  uuid.UUID
	Role    Role // live role read through the session
	IsFresh bool
	Claims  *AccessClaims
}
