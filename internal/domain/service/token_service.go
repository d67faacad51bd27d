package service

import (
	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService signs and verifies bearer tokens. Access and refresh tokens are signed
// with different secrets, so a token of one category never verifies as the other.
type TokenService interface {
	// SignAccess issues an access token for the session.
	SignAccess(userID uuid.UUID, sessionKey string, role entity.Role, isFresh bool) (entity.SignedToken, error)

	// SignRefresh issues a refresh token for the session.
	SignRefresh(userID uuid.UUID, sessionKey string) (entity.SignedToken, error)

	// VerifyAccess returns domainerrors.ErrTokenExpired for an expired token and
	// domainerrors.ErrInvalidToken for anything else that fails verification.
	VerifyAccess(token string) (*entity.AccessClaims, error)

	// VerifyRefresh behaves like VerifyAccess for refresh tokens.
	VerifyRefresh(token string) (*entity.RefreshClaims, error)
}
