package handlers

import (
	"github.com/gofiber/fiber/v2"

	"carwo/internal/domain"
	"carwo/internal/i18n"
)

// render wraps c.Render and injects the per-request ambient data every
// template expects: the resolved language, its UI string table, the
// logged-in user (if any) and the CSRF token.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	lang := Lang(c)
	data["Lang"] = lang
	data["T"] = i18n.Table(lang)
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	tok, _ := c.Locals("CSRFToken").(string)
	data["CSRFToken"] = tok
	return c.Render(tmpl, data)
}

func notFoundPage(c *fiber.Ctx, msgKey string) error {
	lang := Lang(c)
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{
		"Lang": lang, "T": i18n.Table(lang),
		"Message": i18n.T(lang, msgKey),
	})
}

// Lang reads the language resolved by the Language middleware, falling
// back to the storefront default when the middleware did not run (tests).
func Lang(c *fiber.Ctx) domain.Lang {
	if l, ok := c.Locals("lang").(domain.Lang); ok {
		return l
	}
	return domain.LangSO
}
