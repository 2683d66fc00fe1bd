package bignum

import (
	"strconv"
	"strings"
)

// FormatPoly renders the magnitude as a base-256 polynomial, most significant
// term first, e.g. "1*256**2+44*256**0". The result is meant to be evaluated
// by an external checker (it is valid Python) and is never parsed back.
func FormatPoly(i BigInt) string {
	if len(i.mag) == 0 {
		return "0"
	}

	var sb strings.Builder
	if i.neg {
		sb.WriteString("-(")
	}
	n := len(i.mag)
	first := true
	for idx, b := range i.mag {
		if b == 0 {
			continue
		}
		if !first {
			sb.WriteByte('+')
		}
		first = false
		sb.WriteString(strconv.Itoa(int(b)))
		sb.WriteString("*256**")
		sb.WriteString(strconv.Itoa(n - 1 - idx))
	}
	if i.neg {
		sb.WriteByte(')')
	}
	return sb.String()
}
