package utils

import (
	"fmt"
	"strings"
)

// NaturalSortKey maps s to a key whose byte order is natural order: digit runs compare by
// numeric value, so "INV-2" sorts before "INV-10". Each run becomes its length (two digits)
// followed by the run without leading zeros.
func NaturalSortKey(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		run := strings.TrimLeft(s[i:j], "0")
		if run == "" {
			run = "0"
		}
		fmt.Fprintf(&b, "%02d%s", len(run), run)
		i = j
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
