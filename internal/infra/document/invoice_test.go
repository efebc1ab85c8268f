package document

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *entity.Order {
	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	return &entity.Order{
		ID:        "7c0e3d1a-58f2-5b9e-8a61-2f4d9c3b1e07",
		UserID:    "uid-1",
		UserEmail: "ada@example.com",
		UserName:  "Ada",
		Items: []entity.OrderItem{
			{ProductID: "1", Name: "Essence Mascara Lash Princess", UnitPrice: 20, Quantity: 2},
			{ProductID: "2", Name: "T-shirt", UnitPrice: 5, Quantity: 1, Variant: entity.Variant{Size: "M", Color: "red"}},
		},
		Subtotal:      45,
		Shipping:      9.99,
		Tax:           4.5,
		Total:         59.49,
		Status:        entity.OrderStatusProcessing,
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: entity.PaymentStatusPending,
		ShippingAddress: entity.ShippingAddress{
			FullName:   "Ada Lovelace",
			Line1:      "12 St James's Square",
			City:       "London",
			PostalCode: "SW1Y 4JH",
			Country:    "United Kingdom",
		},
		EstimatedDelivery: created.AddDate(0, 0, 5),
		Notes:             "Leave at the door",
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestRenderInvoice(t *testing.T) {
	renderer := NewInvoiceRenderer("Storefront")

	t.Run("without QR", func(t *testing.T) {
		pdf, err := renderer.RenderInvoice(newTestOrder(), nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	})

	t.Run("with QR", func(t *testing.T) {
		order := newTestOrder()
		qr, err := qrcode.NewQRCodeService(128, "M", "https://shop.example.com").GenerateOrderQR(order.ID)
		require.NoError(t, err)

		withQR, err := renderer.RenderInvoice(order, qr)
		require.NoError(t, err)
		without, err := renderer.RenderInvoice(order, nil)
		require.NoError(t, err)

		assert.Greater(t, len(withQR), len(without))
	})

	t.Run("broken image is reported", func(t *testing.T) {
		_, err := renderer.RenderInvoice(newTestOrder(), []byte("not a png"))
		assert.Error(t, err)
	})
}
