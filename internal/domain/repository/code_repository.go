package repository

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// OneTimeCodeRepository persists OTPs.
type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *entity.OneTimeCode) error

	// DeleteUnused removes the user's unconsumed codes for purpose.
	DeleteUnused(ctx context.Context, userID uuid.UUID, purpose entity.OTPPurpose) error

	// FindLatest returns the newest code matching (user, code, purpose), used or not,
	// or domainerrors.ErrInvalidOTP when none exists.
	FindLatest(ctx context.Context, userID uuid.UUID, code int, purpose entity.OTPPurpose) (*entity.OneTimeCode, error)

	// MarkUsed consumes the code. It reports false if the code was already consumed.
	MarkUsed(ctx context.Context, id uuid.UUID) (bool, error)
}

// ResetTokenRepository persists password reset tokens by hash.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.ResetToken) error

	// FindByHash returns domainerrors.ErrInvalidToken when no token has the hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.ResetToken, error)

	// MarkUsed consumes the token. It reports false if the token was already consumed.
	MarkUsed(ctx context.Context, id uuid.UUID) (bool, error)
}
