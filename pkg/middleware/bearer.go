package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperr "agrow/pkg/errors"
)

// TokenPrefix marks the placeholder tokens issued by login. The user id
// follows it.
const TokenPrefix = "mock-jwt-token-"

const userKey = "uid"

// Bearer reads "Authorization: Bearer mock-jwt-token-<userId>" and stores the
// user id on the context. Anything else is answered with 401.
func Bearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := ParseToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": "Unauthorized"})
			}
			c.Set(userKey, uid)
			return next(c)
		}
	}
}

// ParseToken returns the user id carried by an Authorization header value.
// A missing or foreign token is a KindUnauthorized error.
func ParseToken(header string) (string, error) {
	tok := strings.TrimSpace(header)
	if len(tok) >= 7 && strings.EqualFold(tok[:7], "Bearer ") {
		tok = strings.TrimSpace(tok[7:])
	}
	uid, ok := strings.CutPrefix(tok, TokenPrefix)
	if !ok || uid == "" {
		return "", apperr.E(apperr.KindUnauthorized, "middleware.bearer", apperr.ErrUnauthorized)
	}
	return uid, nil
}

func TokenFor(userID string) string { return TokenPrefix + userID }

func UserID(c echo.Context) string {
	uid, _ := c.Get(userKey).(string)
	return uid
}
