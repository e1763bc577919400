package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

// RBAC allows the request through only when the authenticated role is in the
// allow-list. Runs after Auth, which stores the role in the context; the
// central error handler turns the returned sentinel into a 403 response.
func RBAC(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
