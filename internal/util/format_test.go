package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "zero", amount: 0, expected: "$0.00"},
		{name: "cents only", amount: 0.5, expected: "$0.50"},
		{name: "checkout total", amount: 59.49, expected: "$59.49"},
		{name: "float noise", amount: 45 + 9.99 + 4.5, expected: "$59.49"},
		{name: "thousands", amount: 1234.5, expected: "$1,234.50"},
		{name: "millions", amount: 1234567.891, expected: "$1,234,567.89"},
		{name: "negative", amount: -5, expected: "-$5.00"},
		{name: "negative rounding to zero", amount: -0.001, expected: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, "-1,234,567", FormatCount(-1234567))
}

func TestFormatCompact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "999", FormatCompact(999))
	assert.Equal(t, "1K", FormatCompact(1000))
	assert.Equal(t, "1.5K", FormatCompact(1520))
	assert.Equal(t, "2.3M", FormatCompact(2_340_000))
	assert.Equal(t, "7B", FormatCompact(7_000_000_000))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10%", FormatPercent(10))
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "7.4%", FormatPercent(7.44))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.March, 4, 22, 15, 0, 0, time.UTC)

	assert.Equal(t, "Mar 4, 2026", FormatDate(ts))
	assert.Equal(t, "Mar 4, 2026 22:15 UTC", FormatDateTime(ts))
	assert.Equal(t, "-", FormatDate(time.Time{}))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "15s", FormatDuration(15*time.Second))
	assert.Equal(t, "1m0s", FormatDuration(59*time.Second+600*time.Millisecond))
	assert.Equal(t, "2m30s", FormatDuration(150*time.Second))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "0s", FormatDuration(-time.Second))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short enough", input: "Lipstick", max: 10, expected: "Lipstick"},
		{name: "exact", input: "Lipstick", max: 8, expected: "Lipstick"},
		{name: "cut mid word", input: "Essence Mascara Lash Princess", max: 16, expected: "Essence Masca..."},
		{name: "multibyte", input: "café au lait special", max: 8, expected: "café..."},
		{name: "tiny limit", input: "abcdef", max: 2, expected: "ab"},
		{name: "zero", input: "abc", max: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "6f1d8a3e", ShortID("6f1d8a3e-2b7c-4d9e-a5f0-3c8b1e7d2a94"))
	assert.Equal(t, "abc", ShortID("abc"))
}
