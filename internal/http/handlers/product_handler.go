package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"carwo/internal/domain"
	applog "carwo/internal/log"
	"carwo/internal/services"
	"carwo/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Order   *services.OrderService
}

// List renders the catalog page. The full product list is fetched and the
// visible subset is computed in memory, so filter/search changes are just
// new query parameters over the same fetch.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	selected := strings.TrimSpace(c.Query("category"))
	if selected == "" {
		selected = services.CategoryAll
	} else if _, ok := validate.ID(selected); !ok && selected != services.CategoryAll {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		selected = services.CategoryAll
	}
	q := validate.Q(c.Query("q"))
	view := c.Query("view")
	if view != "list" {
		view = "grid"
	}

	cats, catErr := h.Catalog.ListCategories()
	prods, prodErr := h.Catalog.ListProducts()
	var errMsg string
	if catErr != nil {
		applog.Error(c, "products.categories.fail", catErr, nil)
		errMsg = catErr.Error()
	}
	if prodErr != nil {
		applog.Error(c, "products.list.fail", prodErr, nil)
		errMsg = prodErr.Error()
	}

	visible := services.FilterProducts(prods, selected, q)

	return render(c, "products", fiber.Map{
		"Categories": cats,
		"Products":   visible,
		"Selected":   selected,
		"Q":          q,
		"View":       view,
		"Empty":      len(visible) == 0,
		"Err":        errMsg,
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFoundPage(c, "notfound.item")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return notFoundPage(c, "notfound.item")
	}

	// Default intent so the page can show a ready-made WhatsApp link;
	// the size/qty form goes through OrderRedirect for the final one.
	intent := h.Order.BuildIntent(p, domain.DefaultSize, 1)

	return render(c, "product", fiber.Map{
		"P":      p,
		"Sizes":  domain.Sizes,
		"Intent": intent,
	})
}

// OrderRedirect builds the order intent from the chosen size/quantity and
// hands the visitor off to WhatsApp. The intent is never stored.
func (h *ProductHandler) OrderRedirect(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFoundPage(c, "notfound.item")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return notFoundPage(c, "notfound.item")
	}
	size := validate.Size(c.Query("size"))
	qty := validate.Qty(c.Query("qty"))

	intent := h.Order.BuildIntent(p, size, qty)
	applog.Info(c, "order.intent", map[string]any{
		"product": p.ID, "size": intent.Size, "qty": intent.Quantity, "total": intent.Total,
	})
	return c.Redirect(intent.Link, fiber.StatusFound)
}
