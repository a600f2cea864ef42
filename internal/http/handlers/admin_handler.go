package handlers

import (
	"github.com/gofiber/fiber/v2"

	"carwo/internal/domain"
	"carwo/internal/faults"
	applog "carwo/internal/log"
	"carwo/internal/services"
	"carwo/internal/storage"
	"carwo/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Admin   *services.AdminService
	Media   storage.MediaStore
	Auth    *services.AuthService
}

// Dashboard lists both tables wholesale. Writes redirect back here, so
// consistency with the store comes from the re-fetch, not local patching.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return h.dashboard(c, fiber.StatusOK, "")
}

func (h *AdminHandler) dashboard(c *fiber.Ctx, status int, errMsg string) error {
	cats, catErr := h.Catalog.ListCategories()
	prods, prodErr := h.Catalog.ListProducts()
	if errMsg == "" && catErr != nil {
		errMsg = catErr.Error()
	}
	if errMsg == "" && prodErr != nil {
		errMsg = prodErr.Error()
	}
	c.Status(status)
	return render(c, "admin", fiber.Map{
		"Categories": cats,
		"Products":   prods,
		"Err":        errMsg,
	})
}

func statusFor(err error) int {
	switch faults.KindOf(err) {
	case faults.Validation:
		return fiber.StatusBadRequest
	case faults.NotFound:
		return fiber.StatusNotFound
	case faults.Unauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// POST /admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	cat := domain.Category{
		NameEn: c.FormValue("nameen"),
		NameSo: c.FormValue("nameso"),
	}
	cat, err := h.Admin.CreateCategory(cat)
	if err != nil {
		applog.Error(c, "admin.category.create.fail", err, nil)
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.category.create", map[string]any{"id": cat.ID})
	return c.Redirect("/admin")
}

// POST /admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return h.dashboard(c, fiber.StatusBadRequest, "invalid category id")
	}
	cat := domain.Category{
		ID:     id,
		NameEn: c.FormValue("nameen"),
		NameSo: c.FormValue("nameso"),
	}
	if err := h.Admin.UpdateCategory(cat); err != nil {
		applog.Error(c, "admin.category.update.fail", err, map[string]any{"id": id})
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.category.update", map[string]any{"id": id})
	return c.Redirect("/admin")
}

// POST /admin/categories/:id/delete (confirmation happens client-side)
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return h.dashboard(c, fiber.StatusBadRequest, "invalid category id")
	}
	if err := h.Admin.DeleteCategory(id); err != nil {
		applog.Error(c, "admin.category.delete.fail", err, map[string]any{"id": id})
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.category.delete", map[string]any{"id": id})
	return c.Redirect("/admin")
}

func productFromForm(c *fiber.Ctx) (domain.Product, bool) {
	price, hasPrice := validate.Price(c.FormValue("price"))
	return domain.Product{
		Name:          c.FormValue("name"),
		NameEn:        c.FormValue("nameen"),
		NameSo:        c.FormValue("nameso"),
		Category:      c.FormValue("category"), // '' becomes NULL in the repo
		Price:         price,
		Image:         c.FormValue("image"),
		Description:   c.FormValue("description"),
		DescriptionEn: c.FormValue("descriptionen"),
		DescriptionSo: c.FormValue("descriptionso"),
		Material:      c.FormValue("material"),
	}, hasPrice
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	p, hasPrice := productFromForm(c)
	p, err := h.Admin.CreateProduct(p, hasPrice)
	if err != nil {
		applog.Error(c, "admin.product.create.fail", err, nil)
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.product.create", map[string]any{"id": p.ID})
	return c.Redirect("/admin")
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return h.dashboard(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, _ := productFromForm(c)
	p.ID = id
	if err := h.Admin.UpdateProduct(p); err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"id": id})
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.product.update", map[string]any{"id": id})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return h.dashboard(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Admin.DeleteProduct(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"id": id})
		return h.dashboard(c, statusFor(err), err.Error())
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"id": id})
	return c.Redirect("/admin")
}

// UploadImage stores the selected file and answers with its public URL,
// which the admin form writes into the product's image field. Upload
// errors stay in their own slot: a failed upload never touches the field.
func (h *AdminHandler) UploadImage(c *fiber.Ctx) error {
	// The session is re-checked here even though the route sits behind
	// RequireAdmin: the upload error slot is distinct from CRUD errors.
	sid := c.Cookies("sid")
	if sid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in to upload images."})
	}
	if u, err := h.Auth.CurrentUser(sid); err != nil || u == nil {
		applog.Security(c, "admin.upload.nosession", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in to upload images."})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file selected"})
	}
	f, err := fh.Open()
	if err != nil {
		applog.Error(c, "admin.upload.open.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read file"})
	}
	defer f.Close()

	objPath := storage.ObjectPath(fh.Filename)
	url, err := h.Media.Upload(objPath, f)
	if err != nil {
		applog.Error(c, "admin.upload.fail", err, map[string]any{"path": objPath})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "admin.upload", map[string]any{"path": objPath, "url": url})
	return c.JSON(fiber.Map{"url": url})
}
