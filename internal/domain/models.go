package domain

// Lang selects which side of a bilingual pair is rendered.
type Lang string

const (
	LangEN Lang = "en"
	LangSO Lang = "so"
)

// ParseLang normalizes a raw language value; anything unknown falls back
// to Somali, the storefront default.
func ParseLang(s string) Lang {
	if s == string(LangEN) {
		return LangEN
	}
	return LangSO
}

type Category struct {
	ID        string `db:"id"`
	NameEn    string `db:"nameen"`
	NameSo    string `db:"nameso"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// Name returns the localized display name.
func (c Category) Name(lang Lang) string {
	if lang == LangEN {
		return c.NameEn
	}
	return c.NameSo
}

type Product struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"` // legacy fallback field
	NameEn        string  `db:"nameen"`
	NameSo        string  `db:"nameso"`
	Category      string  `db:"category"` // empty = uncategorized
	Price         float64 `db:"price"`
	Image         string  `db:"image"`
	Description   string  `db:"description"`
	DescriptionEn string  `db:"descriptionen"`
	DescriptionSo string  `db:"descriptionso"`
	Material      string  `db:"material"`
	CreatedAt     string  `db:"created_at"`
	UpdatedAt     string  `db:"updated_at"`
}

// DisplayName returns the localized name, falling back to the legacy
// name field and then the other language so a product never renders blank.
func (p Product) DisplayName(lang Lang) string {
	if lang == LangEN && p.NameEn != "" {
		return p.NameEn
	}
	if lang == LangSO && p.NameSo != "" {
		return p.NameSo
	}
	if p.Name != "" {
		return p.Name
	}
	if p.NameEn != "" {
		return p.NameEn
	}
	return p.NameSo
}

// Describe returns the localized long-form description with the same
// fallback chain as DisplayName.
func (p Product) Describe(lang Lang) string {
	if lang == LangEN && p.DescriptionEn != "" {
		return p.DescriptionEn
	}
	if lang == LangSO && p.DescriptionSo != "" {
		return p.DescriptionSo
	}
	if p.Description != "" {
		return p.Description
	}
	if p.DescriptionEn != "" {
		return p.DescriptionEn
	}
	return p.DescriptionSo
}

// Sizes offered on the product detail page. Size selection is not
// persisted per product; every garment offers the standard range.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

const DefaultSize = "M"
