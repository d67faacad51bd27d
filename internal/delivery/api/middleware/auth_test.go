package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	mockSvc "allergo/internal/mocks/service"
	mockUsecase "allergo/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	sessionUC  *mockUsecase.MockSessionUsecase
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	f := authFixtures{
		tokenSvc:  mockSvc.NewMockTokenService(t),
		sessionUC: mockUsecase.NewMockSessionUsecase(t),
	}
	f.middleware = NewAuthMiddleware(AuthMiddlewareParams{
		TokenSvc:  f.tokenSvc,
		SessionUC: f.sessionUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

// serve runs one request through the middleware and reports the identity the
// downstream handler saw.
func serve(mw echo.MiddlewareFunc, authorization string) (*entity.Identity, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var (
		seen   *entity.Identity
		called bool
	)
	err := mw(func(c echo.Context) error {
		called = true
		seen, _ = deliverycontext.GetIdentity(c)

		return nil
	})(c)

	return seen, called, err
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	f := createTestAuthMiddleware(t)

	t.Run("strict", func(t *testing.T) {
		_, called, err := serve(f.middleware.Authenticate(nil, true, false), "")

		assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
		assert.False(t, called)
	})

	t.Run("optional passes anonymously", func(t *testing.T) {
		identity, called, err := serve(f.middleware.Authenticate(nil, false, false), "")

		require.NoError(t, err)
		assert.True(t, called)
		assert.Nil(t, identity)
	})
}

func TestAuthMiddleware_Authorized(t *testing.T) {
	f := createTestAuthMiddleware(t)
	userID := uuid.New()
	claims := &entity.AccessClaims{
		UserID:     userID,
		SessionKey: "key",
		Role:       entity.RoleUser,
		Category:   entity.TokenCategoryAccess,
		IsFresh:    true,
	}

	f.tokenSvc.EXPECT().VerifyAccess("good").Return(claims, nil)
	// The role was promoted after the token was signed.
	f.sessionUC.EXPECT().Validate(mock.Anything, "key").
		Return(&entity.Session{Key: "key", UserID: userID, IsActive: true, UserRole: entity.RoleAdmin}, nil)

	identity, called, err := serve(f.middleware.Authenticate(entity.Roles{entity.RoleAdmin}, true, true), "Bearer good")

	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.True(t, identity.IsFresh)
	assert.Same(t, claims, identity.Claims)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	userID := uuid.New()
	access := func(mutate func(*entity.AccessClaims)) *entity.AccessClaims {
		claims := &entity.AccessClaims{
			UserID:     userID,
			SessionKey: "key",
			Role:       entity.RoleUser,
			Category:   entity.TokenCategoryAccess,
			IsFresh:    true,
		}
		if mutate != nil {
			mutate(claims)
		}

		return claims
	}

	tests := []struct {
		name       string
		header     string
		roles      entity.Roles
		strict     bool
		onlyFresh  bool
		claims     *entity.AccessClaims
		verifyErr  error
		session    *entity.Session
		sessionErr error
		wantErr    error
		wantStatus int
	}{
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			strict:     true,
			wantErr:    domainerrors.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token on optional route",
			header:     "Bearer bad",
			verifyErr:  domainerrors.ErrInvalidToken,
			wantErr:    domainerrors.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer old",
			strict:     true,
			verifyErr:  domainerrors.ErrTokenExpired,
			wantErr:    domainerrors.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "refresh category",
			header: "Bearer tok",
			strict: true,
			claims: access(func(c *entity.AccessClaims) {
				c.Category = entity.TokenCategoryRefresh
			}),
			wantErr:    domainerrors.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "stale token on fresh-only route",
			header:    "Bearer tok",
			strict:    true,
			onlyFresh: true,
			claims: access(func(c *entity.AccessClaims) {
				c.IsFresh = false
			}),
			wantErr:    domainerrors.ErrStaleToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked session",
			header:     "Bearer tok",
			strict:     true,
			claims:     access(nil),
			sessionErr: domainerrors.ErrSessionInvalid,
			wantErr:    domainerrors.ErrSessionInvalid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "session of another user",
			header:     "Bearer tok",
			strict:     true,
			claims:     access(nil),
			session:    &entity.Session{Key: "key", UserID: uuid.New(), IsActive: true, UserRole: entity.RoleUser},
			wantErr:    domainerrors.ErrSessionInvalid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role not whitelisted",
			header:     "Bearer tok",
			roles:      entity.Roles{entity.RoleAdmin},
			strict:     true,
			claims:     access(nil),
			session:    &entity.Session{Key: "key", UserID: userID, IsActive: true, UserRole: entity.RoleUser},
			wantErr:    domainerrors.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthMiddleware(t)

			if tt.claims != nil || tt.verifyErr != nil {
				f.tokenSvc.EXPECT().VerifyAccess(mock.Anything).Return(tt.claims, tt.verifyErr)
			}
			if tt.session != nil || tt.sessionErr != nil {
				f.sessionUC.EXPECT().Validate(mock.Anything, "key").Return(tt.session, tt.sessionErr)
			}

			_, called, err := serve(f.middleware.Authenticate(tt.roles, tt.strict, tt.onlyFresh), tt.header)

			assert.False(t, called)
			require.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPCode())
		})
	}
}
