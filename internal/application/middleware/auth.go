package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

const (
	userContextKey  = "auth.user"
	tokenContextKey = "auth.token"
)

// Authenticator resolves the user behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

// CurrentUser loads the signed-in user from the access_token cookie, or a bearer
// Authorization header. Anonymous requests pass through untouched.
func CurrentUser(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := accessToken(c)
			if token == "" {
				return next(c)
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				if !errors.Is(err, model.ErrUnauthenticated) {
					log.Error(msg.GetMessage("auth.lookup-failed"), zap.Error(err))
				}
				return next(c)
			}

			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

// RequireUser answers 401 for anonymous requests.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if UserFrom(c) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		}
		return next(c)
	}
}

// RequirePageUser redirects anonymous browsers to loginPath.
func RequirePageUser(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserFrom(c) == nil {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}

// UserFrom returns the signed-in user or nil.
func UserFrom(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}

// TokenFrom returns the access token the request was authenticated with.
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(api.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}
