package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://shop.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_OrderURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		orderID string
		want    string
	}{
		{"absolute", "https://shop.example.com", "abc", "https://shop.example.com/orders/abc"},
		{"trailing slash", "https://shop.example.com/", "abc", "https://shop.example.com/orders/abc"},
		{"relative", "", "abc", "/orders/abc"},
		{"escaped", "https://shop.example.com", "a/b", "https://shop.example.com/orders/a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL)
			assert.Equal(t, tt.want, service.OrderURL(tt.orderID))
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")

	qrBytes, err := service.GenerateOrderQR("0b6f5a52-1c1e-5d5e-9f5c-1d2c3b4a5f60")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "https://shop.example.com")

		qrBytes, err := service.GenerateOrderQR("order-1")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateOrderQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateOrderQR("")
	assert.Error(t, err)
}
