package middleware

import (
	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// LoadIdentity resolves the session reference to a live row and stores the
// resulting identity in the request context. A stale id (row deleted since
// login) resolves to anonymous.
func LoadIdentity(sess *session.Manager, buyers repository.BuyerRepository, admins repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ref := sess.IdentityRef(c)
			if ref != nil {
				ctx := c.Request().Context()
				switch ref.Role {
				case models.RoleBuyer:
					if _, err := buyers.FindByID(ctx, ref.ID); err != nil {
						ref = nil
					}
				case models.RoleAdmin:
					if _, err := admins.FindByID(ctx, ref.ID); err != nil {
						ref = nil
					}
				}
			}
			c.Set(identityKey, ref)
			return next(c)
		}
	}
}

// CurrentIdentity returns the resolved identity for this request, or nil.
func CurrentIdentity(c echo.Context) *models.Identity {
	ident, _ := c.Get(identityKey).(*models.Identity)
	return ident
}
