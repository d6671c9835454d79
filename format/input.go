// Package format converts between free-text user input and display strings.
package format

import (
	"math"
	"strconv"
	"strings"
)

// sanitize keeps digits and the first decimal point. Everything after a second
// decimal point is dropped, the way a number prefix would be read.
func sanitize(raw string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenPoint {
				return b.String()
			}
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount reads a non-negative amount from free text such as "250,000.50"
// or "LKR 1200". Unparsable input is 0.
func ParseAmount(raw string) float64 {
	s := sanitize(raw)
	if s == "" || s == "." {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// ParseYears reads a whole number of years; any fraction is dropped.
func ParseYears(raw string) int {
	s := sanitize(raw)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
