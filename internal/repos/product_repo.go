package repos

import (
	"carwo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
    id, name, nameen, nameso,
    COALESCE(category,'')      AS category,
    price,
    COALESCE(image,'')         AS image,
    COALESCE(description,'')   AS description,
    COALESCE(descriptionen,'') AS descriptionen,
    COALESCE(descriptionso,'') AS descriptionso,
    COALESCE(material,'')      AS material,
    created_at,
    COALESCE(updated_at,'')    AS updated_at`

// List returns the full catalog in fetch order. Filtering and search run
// in memory over this list, so the order here is the order the grid keeps.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT`+productCols+`
  FROM products
  ORDER BY created_at, id
`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT`+productCols+`
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

// FirstImageByCategory resolves the cover image for a category card on the
// landing page: the first product in the category that has an image.
func (r *ProductRepo) FirstImageByCategory(catID string) (string, error) {
	var img string
	err := r.db.Get(&img, `
  SELECT image FROM products
  WHERE category = ? AND image IS NOT NULL AND image != ''
  ORDER BY created_at, id LIMIT 1
`, catID)
	return img, err
}

// Insert persists a new product. NULLIF keeps the "uncategorized"
// invariant: an empty category select is stored as NULL, never ''.
func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
  INSERT INTO products(id, name, nameen, nameso, category, price, image,
                       description, descriptionen, descriptionso, material)
  VALUES(?,?,?,?,NULLIF(?,''),?,NULLIF(?,''),?,?,?,NULLIF(?,''))
`, p.ID, p.Name, p.NameEn, p.NameSo, p.Category, p.Price, p.Image,
		p.Description, p.DescriptionEn, p.DescriptionSo, p.Material)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
  UPDATE products SET
    name=?, nameen=?, nameso=?, category=NULLIF(?,''), price=?, image=NULLIF(?,''),
    description=?, descriptionen=?, descriptionso=?, material=NULLIF(?,''),
    updated_at=CURRENT_TIMESTAMP
  WHERE id=?
`, p.Name, p.NameEn, p.NameSo, p.Category, p.Price, p.Image,
		p.Description, p.DescriptionEn, p.DescriptionSo, p.Material, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}
