// Package i18n holds the static bilingual UI copy. Catalog entities carry
// their own EN/SO pairs; everything chrome-level lives here so views never
// hardcode a language.
package i18n

import "carwo/internal/domain"

// pair is [english, somali].
type pair [2]string

func (p pair) in(lang domain.Lang) string {
	if lang == domain.LangEN {
		return p[0]
	}
	return p[1]
}

var strings = map[string]pair{
	"nav.home":     {"Home", "Guriga"},
	"nav.about":    {"About", "Nagu Saabsan"},
	"nav.products": {"Products", "Alaabta"},
	"nav.contact":  {"Contact", "Nala Soo Xiriir"},

	"home.hero.title":    {"Carwo Fashion", "Carwo Fashion"},
	"home.hero.subtitle": {"Traditional & Modern Fashion for the Modern Gentleman", "Dharka Dhaqameedka & Casriga ah ee Ninka Casriga ah"},
	"home.hero.cta":      {"Shop Now", "Hadda Iibso"},
	"home.categories":    {"Shop by Category", "Ku Iibso Qaybta"},
	"home.customers":     {"Happy Customers", "Macaamiil Faraxsan"},

	"products.title":    {"Our Products", "Alaabteena"},
	"products.subtitle": {"Discover our premium collection of traditional and modern fashion", "Baaro ururinta tayada sare ee dharka dhaqameedka iyo casriga ah"},
	"products.search":   {"Search products...", "Raadi alaabta..."},
	"products.all":      {"All Products", "Dhammaan Alaabta"},
	"products.none":     {"No products found.", "Alaab la ma helin."},

	"product.back":     {"Back to Products", "Ku Noqo Alaabta"},
	"product.size":     {"Size", "Cabbirka"},
	"product.quantity": {"Quantity", "Tirada"},
	"product.material": {"Material", "Qalabka"},
	"product.order":    {"Order via WhatsApp", "Ku Dalbo WhatsApp"},
	"product.total":    {"Total", "Wadarta"},

	"contact.title": {"Contact Us", "Nala Soo Xiriir"},

	"notfound.title": {"Page not found", "Bogga lama helin"},
	"notfound.item":  {"This item is no longer available", "Alaabtan hadda lama heli karo"},
}

// T looks up a UI string; unknown keys render as the key itself, which is
// ugly but visible, instead of an empty hole in the page.
func T(lang domain.Lang, key string) string {
	if p, ok := strings[key]; ok {
		return p.in(lang)
	}
	return key
}

// Table returns every key resolved for one language, for handing a whole
// translation map to a template.
func Table(lang domain.Lang) map[string]string {
	out := make(map[string]string, len(strings))
	for k, p := range strings {
		out[k] = p.in(lang)
	}
	return out
}

// Feature is one of the marketing highlight cards on the landing page.
type Feature struct {
	Icon    string
	TitleEn string
	TitleSo string
	DescEn  string
	DescSo  string
}

func (f Feature) Title(lang domain.Lang) string {
	if lang == domain.LangEN {
		return f.TitleEn
	}
	return f.TitleSo
}

func (f Feature) Desc(lang domain.Lang) string {
	if lang == domain.LangEN {
		return f.DescEn
	}
	return f.DescSo
}

var Features = []Feature{
	{
		Icon:    "users",
		TitleEn: "5000+ Happy Customers",
		TitleSo: "5000+ Macmiil Faraxsan",
		DescEn:  "Trusted by thousands across Ethiopia",
		DescSo:  "Waxaa nagu kalsoon kumaan Itoobiya",
	},
	{
		Icon:    "bag",
		TitleEn: "Premium Quality",
		TitleSo: "Tayada Sare",
		DescEn:  "Finest materials and craftsmanship",
		DescSo:  "Qalabka ugu fiican iyo farsamada",
	},
	{
		Icon:    "award",
		TitleEn: "Traditional & Modern",
		TitleSo: "Dhaqameed & Casri",
		DescEn:  "Perfect blend of culture and style",
		DescSo:  "Isku dhafka dhaqanka iyo quruxda",
	},
	{
		Icon:    "truck",
		TitleEn: "Fast Delivery",
		TitleSo: "Dhoofin Degdeg",
		DescEn:  "Quick and reliable shipping",
		DescSo:  "Dhoofin degdeg ah oo la isku halayn karo",
	},
}
