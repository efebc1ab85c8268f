package service

import "storefront/internal/domain/entity"

// InvoiceRenderer renders printable order documents.
type InvoiceRenderer interface {
	// RenderInvoice returns a PDF invoice for the order; qrPNG is embedded when non-empty.
	RenderInvoice(order *entity.Order, qrPNG []byte) ([]byte, error)
}
