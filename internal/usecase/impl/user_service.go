package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"allergo/config"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/constants"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/domain/service"
	"allergo/internal/errors"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dummyPassword is hashed once so that logins for unknown emails spend the same
// bcrypt time as logins with a wrong password.
const dummyPassword = "allergo-timing-equalizer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	sessions      usecase.SessionUsecase
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	secrets       service.SecretGenerator
	publisher     service.EventPublisher
	limiter       service.RateLimiter
	otpTTL        time.Duration
	resetTokenTTL time.Duration
	dummyHash     func() string
	now           func() time.Time
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Sessions     usecase.SessionUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Secrets      service.SecretGenerator
	Publisher    service.EventPublisher
	Limiter      service.RateLimiter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		sessions:      params.Sessions,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		secrets:       params.Secrets,
		publisher:     params.Publisher,
		limiter:       params.Limiter,
		otpTTL:        params.Config.Auth.OTPTTL,
		resetTokenTTL: params.Config.Auth.ResetTokenTTL,
		now:           time.Now,
		logger:        params.Logger,
	}
	srv.dummyHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Error("Failed to hash dummy password", slog.Any("error", err))
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an inactive account. The account is activated with an OTP.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (uuid.UUID, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return uuid.Nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsActive:     false,
		Profile:      &entity.Profile{Name: input.Name},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Info("Signup with a registered email")

			return uuid.Nil, err
		}

		return uuid.Nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID))

	// The account exists either way; /activate/send can resend the code.
	if err := srv.issueOTP(ctx, user, entity.OTPPurposeActivation); err != nil {
		srv.log(ctx).Warn("Failed to send activation otp at signup", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return user.ID, nil
}

// SendOTP issues a fresh code for purpose and hands it to the mail worker.
// Older unused codes of the same purpose stop working.
func (srv *userService) SendOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	if !purpose.IsValid() {
		return domainerrors.NewFieldError("purpose", "unknown otp purpose")
	}
	if err := srv.allow(ctx, "otp:send:"+email); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	switch purpose {
	case entity.OTPPurposeActivation:
		if user.IsActive {
			return domainerrors.ErrAlreadyActive
		}
	case entity.OTPPurposePasswordReset:
		if !user.IsActive {
			return domainerrors.ErrNotActive
		}
	}

	return srv.issueOTP(ctx, user, purpose)
}

// issueOTP stores a new code for purpose, discarding older unused ones, and publishes its mail.
func (srv *userService) issueOTP(ctx context.Context, user *entity.User, purpose entity.OTPPurpose) error {
	value, err := srv.secrets.OTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	code := &entity.OneTimeCode{
		UserID:  user.ID,
		Code:    value,
		Purpose: purpose,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()
		if err := codeRepo.DeleteUnused(ctx, user.ID, purpose); err != nil {
			return errors.Wrap(err, "failed to discard previous codes")
		}

		return codeRepo.Create(ctx, code)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	createdAt := code.CreatedAt
	if createdAt.IsZero() {
		createdAt = srv.now()
	}

	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      constants.MailKindOTP,
		Purpose:   string(purpose),
		Email:     user.Email,
		Name:      user.DisplayName(),
		Code:      value,
		ExpiresAt: createdAt.Add(srv.otpTTL),
	}
	if err := srv.publisher.PublishMailEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish otp mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to publish otp mail")
	}

	srv.log(ctx).Info("OTP issued", slog.Any("userID", user.ID), slog.String("purpose", string(purpose)))

	return nil
}

// VerifyOTP consumes a code and applies its effect in the same transaction.
func (srv *userService) VerifyOTP(ctx context.Context, input usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	if !input.Purpose.IsValid() {
		return nil, domainerrors.NewFieldError("purpose", "unknown otp purpose")
	}
	if err := srv.allow(ctx, "otp:verify:"+input.Email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidOTP
	}
	if err != nil {
		return nil, err
	}

	output := &usecase.VerifyOTPOutput{Purpose: input.Purpose}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		code, err := codeRepo.FindLatest(ctx, user.ID, input.Code, input.Purpose)
		if err != nil {
			return err
		}
		if code.IsUsed() {
			return domainerrors.ErrOTPAlreadyUsed
		}
		if code.IsExpired(srv.now(), srv.otpTTL) {
			return domainerrors.ErrOTPExpired
		}

		consumed, err := codeRepo.MarkUsed(ctx, code.ID)
		if err != nil {
			return errors.Wrap(err, "failed to consume otp")
		}
		if !consumed {
			return domainerrors.ErrOTPAlreadyUsed
		}

		switch input.Purpose {
		case entity.OTPPurposeActivation:
			return repoFactory.UserRepo().Activate(ctx, user.ID)
		case entity.OTPPurposePasswordReset:
			raw, err := srv.secrets.Token()
			if err != nil {
				return errors.Wrap(err, "failed to generate reset token")
			}
			token := &entity.ResetToken{UserID: user.ID, TokenHash: hashResetToken(raw)}
			if err := repoFactory.ResetTokenRepo().Create(ctx, token); err != nil {
				return errors.Wrap(err, "failed to store reset token")
			}
			output.ResetToken = raw
		}

		return nil
	})
	if err != nil {
		if errors.IsAny(err, domainerrors.ErrInvalidOTP, domainerrors.ErrOTPExpired, domainerrors.ErrOTPAlreadyUsed) {
			srv.log(ctx).Info("OTP rejected", slog.Any("userID", user.ID), slog.Any("reason", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("OTP verified", slog.Any("userID", user.ID), slog.String("purpose", string(input.Purpose)))

	return output, nil
}

// ResetPassword exchanges a reset token for a new password and signs the user out everywhere.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return domainerrors.ErrInvalidToken
	}
	if err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.ResetTokenRepo()

		token, err := tokenRepo.FindByHash(ctx, hashResetToken(input.Token))
		if err != nil {
			return err
		}
		if token.UserID != user.ID {
			return domainerrors.ErrInvalidToken
		}
		if token.IsUsed() {
			return domainerrors.ErrTokenAlreadyUsed
		}
		if token.IsExpired(srv.now(), srv.resetTokenTTL) {
			return domainerrors.ErrTokenExpired
		}

		consumed, err := tokenRepo.MarkUsed(ctx, token.ID)
		if err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}
		if !consumed {
			return domainerrors.ErrTokenAlreadyUsed
		}

		if err := repoFactory.UserRepo().UpdatePassword(ctx, user.ID, hash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if _, err := repoFactory.SessionRepo().DeactivateAllForUser(ctx, user.ID, ""); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// Login checks the credentials, opens a session for the device and issues a fresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.TokenPair, error) {
	if err := srv.allow(ctx, "login:"+input.Email+":"+input.Device.IP); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Info("Login with unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountNotActive
	}

	session, err := srv.sessions.CreateSession(ctx, user.ID, input.Device)
	if err != nil {
		return nil, err
	}

	pair, err := srv.issueTokenPair(user.ID, session.Key, user.Role, true)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return pair, nil
}

// Refresh rotates the session behind refreshToken. The returned access token is never fresh.
func (srv *userService) Refresh(ctx context.Context, refreshToken string, device entity.DeviceMeta) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		srv.log(ctx).Info("Refresh token rejected", slog.Any("reason", err))

		return nil, domainerrors.ErrInvalidToken
	}
	if claims.Category != entity.TokenCategoryRefresh {
		return nil, domainerrors.ErrInvalidToken
	}

	session, err := srv.sessions.RotateSession(ctx, claims, device)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidToken) {
			srv.log(ctx).Info("Refresh for an inactive session", slog.Any("userID", claims.UserID))
		}

		return nil, err
	}

	return srv.issueTokenPair(session.UserID, session.Key, session.UserRole, false)
}

func (srv *userService) Logout(ctx context.Context, claims *entity.AccessClaims) error {
	return srv.sessions.Revoke(ctx, claims.SessionKey)
}

// UpdateCredentials changes the login email and/or password. A password change
// signs out every other session of the user.
func (srv *userService) UpdateCredentials(ctx context.Context, identity *entity.Identity, input usecase.UpdateCredentialsInput) error {
	if input.Email == nil && input.Password == nil {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "email", Messages: []string{"email or password is required"}},
			{Field: "password", Messages: []string{"email or password is required"}},
		})
	}

	var hash string
	if input.Password != nil {
		var err error
		hash, err = srv.hasher.Hash(*input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if input.Email != nil {
			if err := userRepo.UpdateEmail(ctx, identity.UserID, *input.Email); err != nil {
				return err
			}
		}

		if input.Password != nil {
			if err := userRepo.UpdatePassword(ctx, identity.UserID, hash); err != nil {
				return errors.Wrap(err, "failed to update password")
			}

			revoked, err := repoFactory.SessionRepo().DeactivateAllForUser(ctx, identity.UserID, identity.Claims.SessionKey)
			if err != nil {
				return errors.Wrap(err, "failed to revoke other sessions")
			}
			srv.log(ctx).Debug("Revoked other sessions", slog.Any("userID", identity.UserID), slog.Int64("revoked", revoked))
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Credentials updated", slog.Any("userID", identity.UserID),
		slog.Bool("email", input.Email != nil), slog.Bool("password", input.Password != nil))

	return nil
}

func (srv *userService) issueTokenPair(userID uuid.UUID, sessionKey string, role entity.Role, isFresh bool) (*entity.TokenPair, error) {
	access, err := srv.tokenService.SignAccess(userID, sessionKey, role, isFresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refresh, err := srv.tokenService.SignRefresh(userID, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &entity.TokenPair{UserID: userID, Access: access, Refresh: refresh}, nil
}

// allow consults the rate limiter. A limiter failure lets the attempt through.
func (srv *userService) allow(ctx context.Context, key string) error {
	allowed, retryAfter, err := srv.limiter.Allow(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Rate limiter unavailable", slog.Any("error", err))

		return nil
	}
	if !allowed {
		return domainerrors.ErrTooManyRequests.WithDetails(map[string]any{
			"retryAfter": int(retryAfter.Round(time.Second).Seconds()),
		})
	}

	return nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
