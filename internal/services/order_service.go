package services

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"carwo/internal/domain"
)

const waBaseURL = "https://wa.me/"

// OrderService turns a product plus the buyer's size/quantity choice into
// a WhatsApp deep link. Nothing is persisted and no network call is made;
// the handler just redirects the browser to the link.
type OrderService struct {
	Phone string // destination number, digits only
}

func NewOrderService(phone string) *OrderService {
	return &OrderService{Phone: phone}
}

// ClampQty enforces the quantity floor of 1.
func ClampQty(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (s *OrderService) BuildIntent(p domain.Product, size string, qty int) domain.OrderIntent {
	if size == "" {
		size = domain.DefaultSize
	}
	qty = ClampQty(qty)

	total := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty)))
	totalStr := formatAmount(total)

	msg := fmt.Sprintf(
		"Hello! I'm interested in ordering:\n\nProduct: %s\nSize: %s\nQuantity: %d\nTotal: %s ETB\n\nPlease confirm availability and delivery details.",
		p.DisplayName(domain.LangEN), size, qty, totalStr)

	link := waBaseURL + s.Phone + "?text=" + url.QueryEscape(msg)

	return domain.OrderIntent{
		Product:  p,
		Size:     size,
		Quantity: qty,
		Total:    totalStr,
		Message:  msg,
		Link:     link,
	}
}

// formatAmount renders a money amount with thousand separators, dropping
// the fraction when it is zero (2500 -> "2,500", 2500.5 -> "2,500.50").
func formatAmount(d decimal.Decimal) string {
	pr := message.NewPrinter(language.English)
	if d.Equal(d.Truncate(0)) {
		return pr.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Float64()
	return pr.Sprintf("%.2f", f)
}
