package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin asserts that the validated claims carry administrative
// privilege. It only inspects context values set by Auth; no I/O.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
