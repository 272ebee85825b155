package utils

import (
	"strconv"
	"strings"
)

// ExtractDigits concatenates the ASCII digits in s and parses them ("field12" -> 12).
// ok is false when s holds no digits or the number overflows.
func ExtractDigits(s string) (n uint64, ok bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
