// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"allergo/config"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/service"
	"allergo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// tokenClaims is the wire form shared by both token categories.
type tokenClaims struct {
	UserID   uuid.UUID            `json:"uid"`
	Session  string               `json:"sid"`
	Role     entity.Role          `json:"role,omitempty"`
	Category entity.TokenCategory `json:"category"`
	IsFresh  bool                 `json:"isFresh,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		now:           time.Now,
	}
	if cfg.Token != nil {
		if cfg.Token.AccessTTL > 0 {
			svc.accessTTL = cfg.Token.AccessTTL
		}
		if cfg.Token.RefreshTTL > 0 {
			svc.refreshTTL = cfg.Token.RefreshTTL
		}
	}

	return svc, nil
}

func (s *jwtService) SignAccess(userID uuid.UUID, sessionKey string, role entity.Role, isFresh bool) (entity.SignedToken, error) {
	return s.sign(tokenClaims{
		UserID:   userID,
		Session:  sessionKey,
		Role:     role,
		Category: entity.TokenCategoryAccess,
		IsFresh:  isFresh,
	}, s.accessTTL, s.accessSecret)
}

func (s *jwtService) SignRefresh(userID uuid.UUID, sessionKey string) (entity.SignedToken, error) {
	return s.sign(tokenClaims{
		UserID:   userID,
		Session:  sessionKey,
		Category: entity.TokenCategoryRefresh,
	}, s.refreshTTL, s.refreshSecret)
}

func (s *jwtService) VerifyAccess(token string) (*entity.AccessClaims, error) {
	claims, err := s.parse(token, s.accessSecret)
	if err != nil {
		return nil, err
	}

	return &entity.AccessClaims{
		UserID:     claims.UserID,
		SessionKey: claims.Session,
		Role:       claims.Role,
		Category:   claims.Category,
		IsFresh:    claims.IsFresh,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) VerifyRefresh(token string) (*entity.RefreshClaims, error) {
	claims, err := s.parse(token, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &entity.RefreshClaims{
		UserID:     claims.UserID,
		SessionKey: claims.Session,
		Category:   claims.Category,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// sign is a private helper to create a JWT with specific claims.
func (s *jwtService) sign(claims tokenClaims, ttl time.Duration, secret []byte) (entity.SignedToken, error) {
	now := s.now()
	// JWT timestamps have second precision; report the expiry the token actually carries.
	expiresAt := now.Add(ttl).Truncate(time.Second)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return entity.SignedToken{}, errors.Wrap(err, "sign token")
	}

	return entity.SignedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *jwtService) parse(token string, secret []byte) (*tokenClaims, error) {
	claims := new(tokenClaims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if claims.UserID == uuid.Nil || claims.Session == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
