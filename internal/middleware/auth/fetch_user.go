package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopora/shop-backend/internal/service/token"
)

// HeaderName is the request header carrying the signed credential.
const HeaderName = "auth-token"

const userIDKey = "userID"

// FetchUser validates the auth-token header and puts the embedded user id
// into the echo context for downstream handlers.
func FetchUser(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderName)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"errors": "please authenticate using a valid token",
				})
			}

			userID, err := token.Parse(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"errors": "please authenticate using a valid token",
				})
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID reads the id FetchUser stored on the context.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get(userIDKey).(uint)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing user context")
	}
	return id, nil
}
