// Package util holds the display formatters and small helpers shared across layers.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"storefront/internal/errors"
)

// Checksum returns the hex SHA-256 of everything read from r. Product images
// are stored under their checksum so a re-upload of the same file is a no-op.
func Checksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", errors.Wrap(err, "failed to checksum content")
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FormatBytes renders a size for upload limits and logs, e.g. 5242880 -> "5 MB".
// Units are binary and the fraction is dropped when it is zero.
func FormatBytes(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}

	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return strconv.FormatInt(n, 10) + " B"
	}

	s := strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")

	return s + " " + units[i]
}
