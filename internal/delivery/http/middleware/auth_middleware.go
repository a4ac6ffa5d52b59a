package middleware

import (
	"strings"

	deliverycontext "hrdesk/internal/delivery/context"
	"hrdesk/internal/domain/entity"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware provides middleware for bearer token authentication and role authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and stores the decoded session claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header must carry a Bearer token")
		}

		claim, err := m.authUC.VerifySession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, claim)

		return next(c)
	}
}

// RequireRole only lets through sessions holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, ok := deliverycontext.GetSession(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !allowed.Contains(claim.Role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + strings.Join(allowed.ToStrings(), " or "))
			}

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
