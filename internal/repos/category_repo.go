package repos

import (
	"carwo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// List returns every category in insertion order, the order the
// storefront filter bar renders them in.
func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
  SELECT
    id, nameen, nameso,
    created_at,
    COALESCE(updated_at,'') AS updated_at
  FROM categories
  ORDER BY created_at, id
`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
  SELECT id, nameen, nameso, created_at, COALESCE(updated_at,'') AS updated_at
  FROM categories WHERE id = ?
`, id)
	return c, err
}

func (r *CategoryRepo) Insert(c domain.Category) error {
	_, err := r.db.Exec(`
  INSERT INTO categories(id, nameen, nameso) VALUES(?,?,?)
`, c.ID, c.NameEn, c.NameSo)
	return err
}

func (r *CategoryRepo) Update(c domain.Category) error {
	_, err := r.db.Exec(`
  UPDATE categories SET nameen=?, nameso=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
`, c.NameEn, c.NameSo, c.ID)
	return err
}

func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	return err
}
