package service

// QRCodeService renders QR codes for orders.
type QRCodeService interface {
	// GenerateOrderQR returns a PNG encoding the public URL of the order.
	GenerateOrderQR(orderID string) ([]byte, error)

	// OrderURL is the URL the QR code points at.
	OrderURL(orderID string) string
}
