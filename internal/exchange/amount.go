// ABOUTME: Parsing and display formatting of user-entered exchange amounts
// ABOUTME: Accepts both comma and dot decimal separators

package exchange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotPositive is returned for amounts that parse but are zero or negative.
var ErrNotPositive = errors.New("amount must be greater than zero")

// ParseAmount parses a user-entered amount. Both "0.5" and "0,5" are valid.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parsing amount %q: not a finite number", s)
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// FormatAmount renders an amount for display with 6 fractional digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
