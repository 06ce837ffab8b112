package bidtree

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parses a currency formatted amount such as "$1,234.50". The currency symbol and thousands
// separators are dropped. Unlike a bare atof, garbage is an error rather than 0.
func ParseAmount(s string) (float64, error) {
	return parseAmount(s, "$")
}

// Plain decimal only: an optional leading sign, digits and at most one point. This keeps out
// the NaN, Inf, exponent and hex forms strconv would otherwise accept.
func isDecimal(s string) bool {
	s = strings.TrimLeft(s, "+-")
	digits := 0
	points := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}
	return digits != 0 && points <= 1
}

func parseAmount(s string, symbol string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	if symbol != "" {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, errors.Errorf("empty amount %q", s)
	}
	if !isDecimal(cleaned) {
		return 0, errors.Errorf("amount %q is not a decimal number", s)
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing amount %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("amount %q is not finite", s)
	}
	return f, nil
}
