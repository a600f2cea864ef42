package services

import (
	"github.com/google/uuid"

	"carwo/internal/domain"
	"carwo/internal/faults"
	"carwo/internal/repos"
	"carwo/internal/validate"
)

// AdminService mediates every write to the catalog. Required-field gates
// run before any DB call; DB errors come back as typed faults and are
// surfaced verbatim, never retried.
type AdminService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewAdminService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *AdminService {
	return &AdminService{Cats: cats, Prods: prods}
}

type categoryForm struct {
	NameEn string `validate:"required"`
	NameSo string `validate:"required"`
}

type productForm struct {
	Name   string  `validate:"required"`
	NameEn string  `validate:"required"`
	NameSo string  `validate:"required"`
	Price  float64 `validate:"gte=0"`
}

func (s *AdminService) CreateCategory(c domain.Category) (domain.Category, error) {
	if err := validate.Forms.Struct(categoryForm{NameEn: c.NameEn, NameSo: c.NameSo}); err != nil {
		return c, faults.New(faults.Validation, "Missing required category fields")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.Cats.Insert(c); err != nil {
		return c, faults.Classify("insert category", err)
	}
	return c, nil
}

func (s *AdminService) UpdateCategory(c domain.Category) error {
	if err := validate.Forms.Struct(categoryForm{NameEn: c.NameEn, NameSo: c.NameSo}); err != nil {
		return faults.New(faults.Validation, "Missing required category fields")
	}
	if err := s.Cats.Update(c); err != nil {
		return faults.Classify("update category", err)
	}
	return nil
}

func (s *AdminService) DeleteCategory(id string) error {
	if err := s.Cats.Delete(id); err != nil {
		return faults.Classify("delete category", err)
	}
	return nil
}

// CreateProduct gates on the insert-required fields. hasPrice is false
// when the form field was absent or unparseable, which is a validation
// reject even though the zero value would pass a gte=0 check.
func (s *AdminService) CreateProduct(p domain.Product, hasPrice bool) (domain.Product, error) {
	form := productForm{Name: p.Name, NameEn: p.NameEn, NameSo: p.NameSo, Price: p.Price}
	if !hasPrice || validate.Forms.Struct(form) != nil {
		return p, faults.New(faults.Validation, "Missing required product fields")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.Prods.Insert(p); err != nil {
		return p, faults.Classify("insert product", err)
	}
	return p, nil
}

// UpdateProduct has no required-field gate (existing-record assumption);
// category normalization to NULL still happens in the repo.
func (s *AdminService) UpdateProduct(p domain.Product) error {
	if err := s.Prods.Update(p); err != nil {
		return faults.Classify("update product", err)
	}
	return nil
}

func (s *AdminService) DeleteProduct(id string) error {
	if err := s.Prods.Delete(id); err != nil {
		return faults.Classify("delete product", err)
	}
	return nil
}
