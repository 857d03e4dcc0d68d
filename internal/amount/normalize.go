// Package amount parses money strings written with either comma or dot
// decimal marks ("1.234,56" and "1,234.56").
package amount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingNumber = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)`)

// Normalize returns the numeric value of s. The decimal mark is whichever of
// '.' or ',' appears last; the other one is treated as a thousands separator.
// ok is false when s holds no number at all.
func Normalize(s string) (decimal.Decimal, bool) {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	var cleaned string
	if lastComma > lastDot || lastDot == -1 {
		cleaned = strings.ReplaceAll(s, ".", "")
		if i := strings.LastIndex(cleaned, ","); i != -1 {
			cleaned = cleaned[:i] + "." + cleaned[i+1:]
		}
	} else {
		cleaned = strings.ReplaceAll(s, ",", "")
	}

	cleaned = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, cleaned)

	// Lenient prefix parse: "1.234.567" reads as 1.234, "12-3" as 12.
	num := leadingNumber.FindString(cleaned)
	if num == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(num, "."))
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}
