package utils

import (
	"math"
	"strconv"
	"strings"
)

// centsEpsilon absorbs float noise sitting a hair above an exact cent
// (e.g. 90/0.9 landing on 100.00000000000001) so CeilToCents does not
// push such values to the next cent.
const centsEpsilon = 1e-9

// CeilToCents rounds a currency amount up to the nearest cent.
// 149.995 becomes 150.00, 10.001 becomes 10.01.
func CeilToCents(v float64) float64 {
	return math.Ceil(v*100-centsEpsilon) / 100
}

// FormatBRL formats an amount as Brazilian reais with thousands separators:
// 1234.5 -> "R$ 1.234,50"
func FormatBRL(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	s := strconv.FormatInt(whole, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteString("-R$ ")
	} else {
		b.WriteString("R$ ")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
		if len(s) > rem {
			b.WriteString(".")
		}
	}
	for i := rem; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(".")
		}
	}

	b.WriteString(",")
	if frac < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}
