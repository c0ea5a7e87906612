package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-system/internal/api/apierr"
	"github.com/accounthub/account-system/internal/api/metrics"
	"github.com/accounthub/account-system/internal/auth"
)

const bearerPrefix = "Bearer "

// Auth is the request-boundary authentication gate for protected routes.
// It extracts the bearer token, verifies it, and attaches the resulting
// Principal to the request context. Every branch that does not reach the
// handler short-circuits with an unauthenticated error: the gate fails
// closed, a handler never runs without a verified Principal.
func Auth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return apierr.Unauthenticated("missing authorization header")
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return apierr.Unauthenticated("authorization header must use the Bearer scheme")
			}

			principal, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return apierr.Unauthenticated("not signed in or session expired: " + err.Error())
			}

			ctx := auth.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
