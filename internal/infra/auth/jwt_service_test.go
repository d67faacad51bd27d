package auth

import (
	"testing"
	"time"

	"allergo/config"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SignAndVerifyAccess(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	signed, err := svc.SignAccess(userID, "session-key", entity.RoleAdmin, true)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.Token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), signed.ExpiresAt, 2*time.Second)

	claims, err := svc.VerifyAccess(signed.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "session-key", claims.SessionKey)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, entity.TokenCategoryAccess, claims.Category)
	assert.True(t, claims.IsFresh)
	assert.True(t, signed.ExpiresAt.Equal(claims.ExpiresAt))
}

func TestJWTService_SignAndVerifyRefresh(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	signed, err := svc.SignRefresh(userID, "session-key")
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(signed.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "session-key", claims.SessionKey)
	assert.Equal(t, entity.TokenCategoryRefresh, claims.Category)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, 2*time.Second)
}

func TestJWTService_CategoriesDoNotCrossVerify(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, err := svc.SignAccess(userID, "k", entity.RoleUser, false)
	require.NoError(t, err)
	refresh, err := svc.SignRefresh(userID, "k")
	require.NoError(t, err)

	_, err = svc.VerifyRefresh(access.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.VerifyAccess(refresh.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	signed, err := svc.SignAccess(uuid.New(), "k", entity.RoleUser, true)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyAccess(signed.Token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "foreign secret", token: signWith(t, "another-secret", jwt.SigningMethodHS256)},
		{name: "none algorithm", token: signNone(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.VerifyAccess(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func signWith(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()
	claims := tokenClaims{
		UserID:   uuid.New(),
		Session:  "k",
		Category: entity.TokenCategoryAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func signNone(t *testing.T) string {
	t.Helper()
	claims := tokenClaims{
		UserID:   uuid.New(),
		Session:  "k",
		Category: entity.TokenCategoryAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	return signed
}
