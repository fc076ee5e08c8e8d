package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Guards are pure predicates over the resolved identity; they never touch
// persistence. The failure modes differ deliberately: buyers are humans in a
// browsing flow and get sent to their login page, admins get a hard 401
// (shared with the JSON API).

// RequireBuyer passes only authenticated buyer identities.
func RequireBuyer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentIdentity(c).IsBuyer() {
			return c.Redirect(http.StatusFound, "/user/login")
		}
		return next(c)
	}
}

// RequireAdmin passes only authenticated admin identities.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentIdentity(c).IsAdmin() {
			return echo.NewHTTPError(http.StatusUnauthorized, "Admin access required")
		}
		return next(c)
	}
}
