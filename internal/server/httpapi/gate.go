package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/logging"
	"github.com/dmitrijs2005/employeehub/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

const (
	msgNoToken      = "Unauthorized: No token provided"
	msgInvalidToken = "Invalid token"
)

// authGate admits requests whose auth header carries a valid token. The
// verified identity is stored on the echo context and on the request's
// context.Context.
func authGate(tokens *auth.TokenIssuer, l logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(common.AuthHeaderName)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, message(msgNoToken))
			}

			id, err := tokens.Verify(token)
			if err != nil {
				l.Debug(c.Request().Context(), "token rejected", "error", err)
				return c.JSON(http.StatusForbidden, message(msgInvalidToken))
			}

			c.Set(identityKey, id)
			c.SetRequest(c.Request().WithContext(auth.WithIdentity(c.Request().Context(), id)))
			return next(c)
		}
	}
}

// identity returns what authGate stored. Handlers behind the gate can rely
// on ok being true.
func identity(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(identityKey).(auth.Identity)
	return id, ok
}
