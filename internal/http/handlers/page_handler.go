package handlers

import (
	"github.com/gofiber/fiber/v2"

	"carwo/internal/i18n"
	applog "carwo/internal/log"
	"carwo/internal/services"
)

type PageHandler struct {
	Catalog *services.CatalogService
}

// Home renders the landing page: feature cards, category cards with a
// cover image from each category's first imaged product, and the customer
// counter section (the count-up animation is template script).
func (h *PageHandler) Home(c *fiber.Ctx) error {
	var errMsg string
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "home.categories.fail", err, nil)
		errMsg = err.Error()
	}
	covers := make(map[string]string, len(cats))
	for _, cat := range cats {
		covers[cat.ID] = h.Catalog.CategoryCover(cat.ID)
	}
	return render(c, "home", fiber.Map{
		"Categories": cats,
		"Covers":     covers,
		"Features":   i18n.Features,
		"Err":        errMsg,
	})
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{})
}
