package services

import (
	"strings"

	"carwo/internal/domain"
	"carwo/internal/faults"
	"carwo/internal/repos"
)

// CategoryAll is the sentinel filter value meaning no category restriction.
const CategoryAll = "all"

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	out, err := s.Cats.List()
	if err != nil {
		return nil, faults.Classify("list categories", err)
	}
	return out, nil
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	out, err := s.Prods.List()
	if err != nil {
		return nil, faults.Classify("list products", err)
	}
	return out, nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, faults.Classify("get product", err)
	}
	return p, nil
}

// CategoryCover returns the image of the first product in a category, or
// "" when the category has no imaged products yet.
func (s *CatalogService) CategoryCover(catID string) string {
	img, err := s.Prods.FirstImageByCategory(catID)
	if err != nil {
		return ""
	}
	return img
}

// FilterProducts computes the visible subset of the fetched list: exact
// category equality (with the "all" sentinel matching everything) ANDed
// with a case-insensitive substring match over the three name fields.
// Uncategorized products surface only under the sentinel.
// Pure function of its inputs; input order is preserved.
func FilterProducts(list []domain.Product, selectedCategory, searchTerm string) []domain.Product {
	q := strings.ToLower(searchTerm)
	out := make([]domain.Product, 0, len(list))
	for _, p := range list {
		if selectedCategory != CategoryAll && (p.Category == "" || p.Category != selectedCategory) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.NameEn), q) &&
			!strings.Contains(strings.ToLower(p.NameSo), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
