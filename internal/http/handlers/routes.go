package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"carwo/internal/i18n"
	applog "carwo/internal/log"
	"carwo/internal/services"
)

// Register mounts the full application route table. main wires the
// middleware stack around it; handler tests mount the same table so the
// routes under test are the routes that ship.
func Register(app *fiber.App, deps *Deps, authH *AuthHandler, auth *services.AuthService) {
	// Public pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contact", deps.PageHandler.Contact)
	app.Get("/products", deps.ProductHandler.List)

	// Product pages
	app.Get("/product", func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": i18n.T(Lang(c), "notfound.item")})
	})
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/product/:id/order", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.ProductHandler.OrderRedirect)

	// Admin auth (login throttled)
	app.Get("/admin/login", authH.LoginForm)
	app.Post("/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/admin/logout", authH.Logout)

	// The upload endpoint talks to the admin form's fetch call, which needs
	// JSON back even when the session is gone, so it stays outside the
	// redirecting guard; it must also be registered before the :id routes,
	// which would otherwise capture the path as id="image".
	app.Post("/admin/products/image", deps.AdminHandler.UploadImage)

	// Admin console
	admin := app.Group("/admin", RequireAdmin(auth))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/categories", deps.AdminHandler.CreateCategory)
	admin.Post("/categories/:id", deps.AdminHandler.UpdateCategory)
	admin.Post("/categories/:id/delete", deps.AdminHandler.DeleteCategory)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Post("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": i18n.T(Lang(c), "notfound.title")})
	})
}
