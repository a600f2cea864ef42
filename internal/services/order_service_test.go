package services_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"carwo/internal/domain"
	"carwo/internal/services"
)

func TestClampQtyFloor(t *testing.T) {
	assert.Equal(t, 1, services.ClampQty(0))
	assert.Equal(t, 1, services.ClampQty(-5))
	assert.Equal(t, 1, services.ClampQty(1))
	assert.Equal(t, 7, services.ClampQty(7))

	// starting at 1, repeated decrement leaves quantity == 1
	q := 1
	for i := 0; i < 5; i++ {
		q = services.ClampQty(q - 1)
	}
	assert.Equal(t, 1, q)
}

func TestBuildIntentMessage(t *testing.T) {
	svc := services.NewOrderService("251995817222")
	p := domain.Product{ID: "p1", NameEn: "Premium Khamiis", NameSo: "Khamiis Tayada Sare", Price: 2500}

	it := svc.BuildIntent(p, "L", 2)

	assert.Equal(t, "L", it.Size)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, "5,000", it.Total)
	assert.Contains(t, it.Message, "Product: Premium Khamiis")
	assert.Contains(t, it.Message, "Size: L")
	assert.Contains(t, it.Message, "Quantity: 2")
	assert.Contains(t, it.Message, "Total: 5,000 ETB")
	assert.Contains(t, it.Message, "Please confirm availability and delivery details.")
}

func TestBuildIntentDefaultsAndClamp(t *testing.T) {
	svc := services.NewOrderService("251995817222")
	p := domain.Product{ID: "p1", NameEn: "Classic Suit", Price: 4500}

	it := svc.BuildIntent(p, "", 0)
	assert.Equal(t, "M", it.Size)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, "4,500", it.Total)
}

func TestBuildIntentLink(t *testing.T) {
	svc := services.NewOrderService("251995817222")
	p := domain.Product{ID: "p1", NameEn: "Premium Khamiis", Price: 2500}

	it := svc.BuildIntent(p, "M", 1)

	assert.True(t, strings.HasPrefix(it.Link, "https://wa.me/251995817222?text="), it.Link)
	enc := strings.TrimPrefix(it.Link, "https://wa.me/251995817222?text=")
	assert.Equal(t, url.QueryEscape(it.Message), enc)

	// the encoded text round-trips to the plain message
	dec, err := url.QueryUnescape(enc)
	assert.NoError(t, err)
	assert.Equal(t, it.Message, dec)
	assert.Contains(t, dec, "2,500 ETB")
}

func TestBuildIntentFractionalTotal(t *testing.T) {
	svc := services.NewOrderService("251995817222")
	p := domain.Product{ID: "p1", NameEn: "Sandals", Price: 1250.5}

	it := svc.BuildIntent(p, "M", 2)
	assert.Equal(t, "2,501", it.Total) // 2501.0 is integral, fraction dropped

	it = svc.BuildIntent(p, "M", 1)
	assert.Equal(t, "1,250.50", it.Total)
}
