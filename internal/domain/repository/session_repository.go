package repository

import (
	"context"
	"time"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository persists device sessions. Lookups are by the opaque session key.
type SessionRepository interface {
	// Create inserts an active session. A second active session for the same
	// (user, device) yields domainerrors.ErrSessionConflict.
	Create(ctx context.Context, session *entity.Session) error

	// FindActiveByKey returns the session with the owner's current role, or
	// domainerrors.ErrSessionInvalid when no active row has the key.
	FindActiveByKey(ctx context.Context, key string) (*entity.Session, error)

	// Rotate swaps oldKey for session.Key and stamps the device metadata, expiry
	// and last use in one conditional update. It reports false when oldKey no
	// longer names an active, unexpired session. Any other active session of the
	// owner on session.DeviceID is deactivated so the device keeps one active session.
	Rotate(ctx context.Context, oldKey string, session *entity.Session, now time.Time) (bool, error)

	// DeactivateDevice marks the user's active sessions on deviceID inactive.
	DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error)

	// DeactivateAllForUser marks every active session of the user inactive,
	// except the one keyed exceptKey when it is not empty.
	DeactivateAllForUser(ctx context.Context, userID uuid.UUID, exceptKey string) (int64, error)

	// Deactivate marks the session inactive. Unknown or inactive keys are not an error.
	Deactivate(ctx context.Context, key string) error
}
