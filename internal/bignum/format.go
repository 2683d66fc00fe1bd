package bignum

// FormatInt renders i as decimal text.
func FormatInt(i BigInt) string {
	if len(i.mag) == 0 {
		return "0"
	}

	cur := make([]byte, len(i.mag))
	copy(cur, i.mag)

	// Digits come out least significant first.
	digits := make([]byte, 0, len(cur)*5/2+2)
	for len(cur) > 0 {
		var r byte
		cur, r = divModSmall(cur, 10)
		digits = append(digits, '0'+r)
	}
	if i.neg {
		digits = append(digits, '-')
	}
	reverseBytes(digits)
	return string(digits)
}

// divModSmall divides a big-endian magnitude by d in place and returns the
// trimmed quotient and the remainder.
func divModSmall(mag []byte, d byte) ([]byte, byte) {
	var rem uint16
	for i := range mag {
		cur := rem<<8 | uint16(mag[i])
		mag[i] = byte(cur / uint16(d))
		rem = cur % uint16(d)
	}
	return trimBytes(mag), byte(rem)
}

// String implements fmt.Stringer.
func (i BigInt) String() string { return FormatInt(i) }

// MarshalText implements encoding.TextMarshaler.
func (i BigInt) MarshalText() ([]byte, error) {
	return []byte(FormatInt(i)), nil
}
