package impl

import (
	"context"
	"testing"
	"time"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/domain/service"
	mockRepo "allergo/internal/mocks/repository"
	mockSvc "allergo/internal/mocks/service"
	mockUsecase "allergo/internal/mocks/usecase"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   *userService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	sessions  *mockUsecase.MockSessionUsecase
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	secrets   *mockSvc.MockSecretGenerator
	publisher *mockSvc.MockEventPublisher
	limiter   *mockSvc.MockRateLimiter
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		secrets:   mockSvc.NewMockSecretGenerator(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		limiter:   mockSvc.NewMockRateLimiter(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Sessions:     f.sessions,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Secrets:      f.secrets,
		Publisher:    f.publisher,
		Limiter:      f.limiter,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*userService)

	return f
}

// runTx executes transaction bodies against factory.
func (f userServiceFixtures) runTx(factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_SendOTP_RateLimited(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow(ctx, "otp:send:a@x.com").Return(false, 90*time.Second, nil)

	err := f.service.SendOTP(ctx, "a@x.com", entity.OTPPurposeActivation)

	require.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]any{"retryAfter": 90}, appErr.Details())
}

func TestUserService_SendOTP_LimiterOutageFailsOpen(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", Profile: &entity.Profile{Name: "A"}}

	f.limiter.EXPECT().Allow(ctx, "otp:send:a@x.com").Return(false, 0, errors.New("redis down"))
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.secrets.EXPECT().OTP().Return(123456, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	codeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	factory.EXPECT().CodeRepo().Return(codeRepo)
	codeRepo.EXPECT().DeleteUnused(ctx, user.ID, entity.OTPPurposeActivation).Return(nil)
	codeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
		RunAndReturn(func(_ context.Context, code *entity.OneTimeCode) error {
			code.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

			return nil
		})
	f.runTx(factory)

	f.publisher.EXPECT().
		PublishMailEvent(ctx, mock.AnythingOfType("*service.MailEvent")).
		Run(func(_ context.Context, event *service.MailEvent) {
			assert.Equal(t, 123456, event.Code)
			assert.Equal(t, "A", event.Name)
			assert.Equal(t, time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC), event.ExpiresAt)
		}).
		Return(nil)

	assert.NoError(t, f.service.SendOTP(ctx, "a@x.com", entity.OTPPurposeActivation))
}

func TestUserService_SendOTP_PublishFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", IsActive: true}

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.secrets.EXPECT().OTP().Return(654321, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	codeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	factory.EXPECT().CodeRepo().Return(codeRepo)
	codeRepo.EXPECT().DeleteUnused(ctx, user.ID, entity.OTPPurposePasswordReset).Return(nil)
	codeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.runTx(factory)

	f.publisher.EXPECT().PublishMailEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	err := f.service.SendOTP(ctx, "a@x.com", entity.OTPPurposePasswordReset)

	assert.ErrorContains(t, err, "topic unavailable")
}

func TestUserService_VerifyOTP_ActivationFailureIsReturned(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}
	code := &entity.OneTimeCode{ID: uuid.New(), UserID: user.ID, Code: 111111, Purpose: entity.OTPPurposeActivation, CreatedAt: time.Now()}
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to activate user")

	f.limiter.EXPECT().Allow(ctx, "otp:verify:a@x.com").Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	codeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().CodeRepo().Return(codeRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	codeRepo.EXPECT().FindLatest(ctx, user.ID, 111111, entity.OTPPurposeActivation).Return(code, nil)
	codeRepo.EXPECT().MarkUsed(ctx, code.ID).Return(true, nil)
	txUserRepo.EXPECT().Activate(ctx, user.ID).Return(dbErr)
	f.runTx(factory)

	_, err := f.service.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "a@x.com", Code: 111111, Purpose: entity.OTPPurposeActivation})

	assert.ErrorIs(t, err, dbErr)
}

func TestUserService_VerifyOTP_LostConsumeRace(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}
	code := &entity.OneTimeCode{ID: uuid.New(), UserID: user.ID, Code: 111111, Purpose: entity.OTPPurposeActivation, CreatedAt: time.Now()}

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	codeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	factory.EXPECT().CodeRepo().Return(codeRepo)
	codeRepo.EXPECT().FindLatest(ctx, user.ID, 111111, entity.OTPPurposeActivation).Return(code, nil)
	codeRepo.EXPECT().MarkUsed(ctx, code.ID).Return(false, nil)
	f.runTx(factory)

	_, err := f.service.VerifyOTP(ctx, usecase.VerifyOTPInput{Email: "a@x.com", Code: 111111, Purpose: entity.OTPPurposeActivation})

	assert.ErrorIs(t, err, domainerrors.ErrOTPAlreadyUsed)
}

func TestUserService_Login_RateLimitedPerEmailAndIP(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow(ctx, "login:a@x.com:10.0.0.1").Return(false, time.Minute, nil)

	_, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "a@x.com",
		Password: "pw12345",
		Device:   entity.DeviceMeta{IP: "10.0.0.1"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

func TestUserService_Login_UnknownEmailStillHashes(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "b@x.com").Return(nil, domainerrors.ErrUserNotFound)
	f.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	f.hasher.EXPECT().Check("pw12345", "dummy-hash").Return(false)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "b@x.com", Password: "pw12345"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionConflict(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hash", IsActive: true, Role: entity.RoleUser}
	device := entity.DeviceMeta{DeviceID: "device-1"}

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.hasher.EXPECT().Check("pw12345", "hash").Return(true)
	f.sessions.EXPECT().CreateSession(ctx, user.ID, device).Return(nil, domainerrors.ErrSessionConflict)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw12345", Device: device})

	assert.ErrorIs(t, err, domainerrors.ErrSessionConflict)
}

func TestUserService_Login_IssuesFreshPair(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hash", IsActive: true, Role: entity.RoleAdmin}
	expires := time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC)

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, 0, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.hasher.EXPECT().Check("pw12345", "hash").Return(true)
	f.sessions.EXPECT().CreateSession(ctx, user.ID, entity.DeviceMeta{}).Return(&entity.Session{Key: "sid", UserID: user.ID}, nil)
	f.tokens.EXPECT().SignAccess(user.ID, "sid", entity.RoleAdmin, true).Return(entity.SignedToken{Token: "access", ExpiresAt: expires}, nil)
	f.tokens.EXPECT().SignRefresh(user.ID, "sid").Return(entity.SignedToken{Token: "refresh", ExpiresAt: expires}, nil)

	pair, err := f.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw12345"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, pair.UserID)
	assert.Equal(t, "access", pair.Access.Token)
	assert.Equal(t, "refresh", pair.Refresh.Token)
}

func TestUserService_Refresh_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		claims *entity.RefreshClaims
		err    error
	}{
		{name: "expired", err: domainerrors.ErrTokenExpired},
		{name: "malformed", err: domainerrors.ErrInvalidToken.WrapMessage("token is malformed")},
		{name: "wrong category", claims: &entity.RefreshClaims{UserID: uuid.New(), SessionKey: "sid", Category: entity.TokenCategoryAccess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)

			f.tokens.EXPECT().VerifyRefresh("token").Return(tt.claims, tt.err)

			_, err := f.service.Refresh(context.Background(), "token", entity.DeviceMeta{})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestUserService_Refresh_UsesLiveRole(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := &entity.RefreshClaims{UserID: userID, SessionKey: "old", Category: entity.TokenCategoryRefresh}

	f.tokens.EXPECT().VerifyRefresh("token").Return(claims, nil)
	f.sessions.EXPECT().RotateSession(ctx, claims, entity.DeviceMeta{}).
		Return(&entity.Session{Key: "new", UserID: userID, UserRole: entity.RoleAdmin}, nil)
	f.tokens.EXPECT().SignAccess(userID, "new", entity.RoleAdmin, false).Return(entity.SignedToken{Token: "access"}, nil)
	f.tokens.EXPECT().SignRefresh(userID, "new").Return(entity.SignedToken{Token: "refresh"}, nil)

	pair, err := f.service.Refresh(ctx, "token", entity.DeviceMeta{})

	require.NoError(t, err)
	assert.Equal(t, "access", pair.Access.Token)
}

func TestUserService_Logout(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.sessions.EXPECT().Revoke(ctx, "sid").Return(nil)

	assert.NoError(t, f.service.Logout(ctx, &entity.AccessClaims{SessionKey: "sid"}))
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.EXPECT().Hash("pw12345").Return("", errors.New("cost out of range"))

	_, err := f.service.Signup(context.Background(), usecase.SignupInput{Email: "a@x.com", Password: "pw12345", Name: "A"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
