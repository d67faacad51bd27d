// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"allergo/config"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/domain/service"
	"allergo/internal/errors"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type sessionService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.SessionRepository
	secrets     service.SecretGenerator
	refreshTTL  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.SessionRepository
	Secrets     service.SecretGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		secrets:     params.Secrets,
		refreshTTL:  params.Config.Token.RefreshTTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession deactivates the device's previous session and inserts the new one
// in the same transaction, so the insert always observes the deactivation.
func (srv *sessionService) CreateSession(ctx context.Context, userID uuid.UUID, device entity.DeviceMeta) (*entity.Session, error) {
	key, err := srv.secrets.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session key")
	}

	now := srv.now()
	session := &entity.Session{
		Key:        key,
		UserID:     userID,
		DeviceID:   device.DeviceID,
		DeviceName: device.DeviceName,
		IP:         device.IP,
		IsActive:   true,
		ExpiresAt:  now.Add(srv.refreshTTL),
		LastUsed:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		if device.DeviceID != "" {
			deactivated, err := sessionRepo.DeactivateDevice(ctx, userID, device.DeviceID)
			if err != nil {
				return errors.Wrap(err, "failed to deactivate device sessions")
			}
			if deactivated > 0 {
				srv.log(ctx).Debug("Replaced device session", slog.Any("userID", userID), slog.Int64("deactivated", deactivated))
			}
		}

		return sessionRepo.Create(ctx, session)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionConflict) {
			srv.log(ctx).Warn("Concurrent login on the same device", slog.Any("userID", userID))
		}

		return nil, err
	}

	return session, nil
}

// RotateSession swaps the session key in place. Presenting the same refresh token
// twice fails because its key no longer matches any row.
func (srv *sessionService) RotateSession(ctx context.Context, claims *entity.RefreshClaims, device entity.DeviceMeta) (*entity.Session, error) {
	newKey, err := srv.secrets.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session key")
	}

	now := srv.now()
	next := &entity.Session{
		Key:        newKey,
		DeviceID:   device.DeviceID,
		DeviceName: device.DeviceName,
		IP:         device.IP,
		ExpiresAt:  now.Add(srv.refreshTTL),
		LastUsed:   now,
	}

	var rotated *entity.Session
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		ok, err := sessionRepo.Rotate(ctx, claims.SessionKey, next, now)
		if err != nil {
			return errors.Wrap(err, "failed to rotate session")
		}
		if !ok {
			return domainerrors.ErrInvalidToken.WrapMessage("session is no longer active")
		}

		rotated, err = sessionRepo.FindActiveByKey(ctx, newKey)
		if err != nil {
			return errors.Wrap(err, "failed to load rotated session")
		}
		if rotated.UserID != claims.UserID {
			return domainerrors.ErrInvalidToken.WrapMessage("session belongs to another user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rotated, nil
}

func (srv *sessionService) Validate(ctx context.Context, key string) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindActiveByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if !session.IsUsable(srv.now()) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session has expired")
	}

	return session, nil
}

func (srv *sessionService) Revoke(ctx context.Context, key string) error {
	if err := srv.sessionRepo.Deactivate(ctx, key); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}
