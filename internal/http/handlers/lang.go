package handlers

import (
	"github.com/gofiber/fiber/v2"

	"carwo/internal/domain"
)

const langCookie = "lang"

// Language resolves the visitor's language preference once per request:
// an explicit ?lang= switch wins and is persisted into a cookie, otherwise
// the cookie applies, otherwise Somali. Every view reads the result from
// Locals; none re-derives its own default.
func Language() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lang domain.Lang
		if q := c.Query("lang"); q != "" {
			lang = domain.ParseLang(q)
			c.Cookie(&fiber.Cookie{
				Name:     langCookie,
				Value:    string(lang),
				Path:     "/",
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		} else {
			lang = domain.ParseLang(c.Cookies(langCookie))
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
