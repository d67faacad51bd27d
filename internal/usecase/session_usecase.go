// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase owns the lifecycle of device sessions. A session is the
// revocation unit for every token derived from it.
type SessionUsecase interface {
	// CreateSession opens a session for the user on device. Any other active
	// session on the same device id is deactivated first.
	CreateSession(ctx context.Context, userID uuid.UUID, device entity.DeviceMeta) (*entity.Session, error)
	// RotateSession replaces the key of the session named by claims and returns the
	// rotated session with the owner's current role. A key that no longer names a
	// usable session fails with domainerrors.ErrInvalidToken.
	RotateSession(ctx context.Context, claims *entity.RefreshClaims, device entity.DeviceMeta) (*entity.Session, error)
	// Validate returns the usable session for key or domainerrors.ErrSessionInvalid.
	Validate(ctx context.Context, key string) (*entity.Session, error)
	// Revoke deactivates the session. It is idempotent.
	Revoke(ctx context.Context, key string) error
}
