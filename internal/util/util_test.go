package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "empty upload", size: 0, expected: "0 B"},
		{name: "under a kilobyte", size: 900, expected: "900 B"},
		{name: "thumbnail", size: 1536, expected: "1.5 KB"},
		{name: "upload limit", size: 5 * 1024 * 1024, expected: "5 MB"},
		{name: "request body limit", size: 6 * 1024 * 1024, expected: "6 MB"},
		{name: "gigabytes", size: 3 * 1024 * 1024 * 1024, expected: "3 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	sum, err := Checksum(strings.NewReader("storefront"))
	require.NoError(t, err)
	assert.Len(t, sum, 64)

	again, err := Checksum(strings.NewReader("storefront"))
	require.NoError(t, err)
	assert.Equal(t, sum, again)

	other, err := Checksum(strings.NewReader("storefront2"))
	require.NoError(t, err)
	assert.NotEqual(t, sum, other)
}
