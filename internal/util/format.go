package util

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const ellipsis = "..."

// FormatCurrency renders a dollar amount with two decimals and thousands
// separators, e.g. 1234.5 -> "$1,234.50" and -5 -> "-$5.00".
func FormatCurrency(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	sign := ""
	if amount < 0 && cents != 0 {
		sign = "-"
	}

	return sign + "$" + groupThousands(cents/100) + "." + pad2(cents%100)
}

// FormatCount renders an integer with thousands separators, e.g. 12345 -> "12,345".
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}

	return groupThousands(n)
}

// FormatCompact renders large counts with a K/M/B suffix and one decimal,
// e.g. 1520 -> "1.5K". Values below 1000 are returned as is.
func FormatCompact(n int64) string {
	abs := math.Abs(float64(n))
	suffixes := []struct {
		limit  float64
		suffix string
	}{
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}

	for _, s := range suffixes {
		if abs >= s.limit {
			v := strconv.FormatFloat(float64(n)/s.limit, 'f', 1, 64)

			return strings.TrimSuffix(v, ".0") + s.suffix
		}
	}

	return strconv.FormatInt(n, 10)
}

// FormatPercent renders a percentage with at most one decimal, e.g. 12.5 -> "12.5%".
func FormatPercent(p float64) string {
	v := strconv.FormatFloat(math.Round(p*10)/10, 'f', 1, 64)

	return strings.TrimSuffix(v, ".0") + "%"
}

// FormatDate renders a date as "Jan 2, 2006" in UTC. The zero time renders as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format("Jan 2, 2006")
}

// FormatDateTime renders a timestamp as "Jan 2, 2006 15:04 UTC".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format("Jan 2, 2006 15:04") + " UTC"
}

// FormatDuration renders a wait compactly: "45s", "2m30s", "1h30m".
// Sub-second remainders round to the nearest second.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		d = 0
	}

	h := int64(d / time.Hour)
	m := int64(d%time.Hour) / int64(time.Minute)
	s := int64(d%time.Minute) / int64(time.Second)

	switch {
	case h > 0:
		return strconv.FormatInt(h, 10) + "h" + strconv.FormatInt(m, 10) + "m"
	case m > 0:
		return strconv.FormatInt(m, 10) + "m" + strconv.FormatInt(s, 10) + "s"
	default:
		return strconv.FormatInt(s, 10) + "s"
	}
}

// Truncate shortens s to at most maxRunes runes, ending with "..." when cut.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	if maxRunes <= len(ellipsis) {
		return string([]rune(s)[:maxRunes])
	}

	runes := []rune(s)

	return strings.TrimRight(string(runes[:maxRunes-len(ellipsis)]), " ") + ellipsis
}

// ShortID returns the first eight characters of an id for labels like "Order #1a2b3c4d".
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}

	return id[:8]
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}

	return strconv.FormatInt(n, 10)
}
