package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "carwo/internal/log"
	"carwo/internal/services"
)

// RequireAdmin gates the admin console. Every request under /admin
// re-resolves the session, so an expired or remotely-ended session takes
// effect on the next interaction; unauthenticated visitors are redirected
// to the login page before any admin data is fetched.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/admin/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/admin/login")
		}
		if u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"user": u.ID})
			return c.Redirect("/admin/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
