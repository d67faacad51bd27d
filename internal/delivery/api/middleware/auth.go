package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/service"
	"allergo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc  service.TokenService
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authorizes requests carrying an access token.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:  params.TokenSvc,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate builds an authorization middleware.
//
// roles is a whitelist checked against the live role of the session owner; an
// empty whitelist admits any role. Without strict, a request with no
// Authorization header passes through anonymously; a header that is present
// is always verified. onlyFresh rejects access tokens obtained through refresh.
func (m *AuthMiddleware) Authenticate(roles entity.Roles, strict, onlyFresh bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				if strict {
					return domainerrors.ErrMissingToken
				}

				return next(c)
			}

			token, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || token == "" {
				return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
			}

			identity, err := m.authorize(c, token, roles, onlyFresh)
			if err != nil {
				return err
			}

			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

func (m *AuthMiddleware) authorize(c echo.Context, token string, roles entity.Roles, onlyFresh bool) (*entity.Identity, error) {
	ctx := c.Request().Context()

	claims, err := m.tokenSvc.VerifyAccess(token)
	if err != nil {
		return nil, err
	}
	if claims.Category != entity.TokenCategoryAccess {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not an access token")
	}
	if onlyFresh && !claims.IsFresh {
		return nil, domainerrors.ErrStaleToken
	}

	session, err := m.sessionUC.Validate(ctx, claims.SessionKey)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Access token names a session of another user",
			slog.String("user_id", claims.UserID.String()))

		return nil, domainerrors.ErrSessionInvalid
	}

	role := session.UserRole
	if role == "" {
		role = claims.Role
	}
	if !roles.Admits(role) {
		return nil, domainerrors.ErrForbidden
	}

	return &entity.Identity{
		UserID:  claims.UserID,
		Role:    role,
		IsFresh: claims.IsFresh,
		Claims:  claims,
	}, nil
}
