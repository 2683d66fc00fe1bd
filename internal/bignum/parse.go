package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates text that is not an optionally signed run of decimal digits.
	ErrInvalidFormat = errors.New("invalid numeric format")
	// ErrOutOfRange indicates a value that does not fit the requested machine integer.
	ErrOutOfRange = errors.New("value out of int64 range")
)

// ParseInt parses an optionally signed decimal integer.
func ParseInt(s string) (BigInt, error) {
	digits := s
	neg := false
	if digits != "" {
		switch digits[0] {
		case '+':
			digits = digits[1:]
		case '-':
			neg = true
			digits = digits[1:]
		}
	}
	if digits == "" {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	// acc is little-endian while it grows; it is reversed once at the end.
	var acc []byte
	for i := range len(digits) {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		acc = mulSmall(acc, 10)
		acc = addSmall(acc, ch-'0')
	}
	reverseBytes(acc)
	return newInt(neg, acc), nil
}

// mulSmall multiplies a little-endian magnitude by m in place, growing it on carry.
func mulSmall(acc []byte, m byte) []byte {
	var carry uint16
	for i := range acc {
		prod := uint16(acc[i])*uint16(m) + carry
		acc[i] = byte(prod)
		carry = prod >> 8
	}
	if carry != 0 {
		acc = append(acc, byte(carry))
	}
	return acc
}

// addSmall adds d to a little-endian magnitude in place, growing it on carry.
func addSmall(acc []byte, d byte) []byte {
	carry := uint16(d)
	for i := 0; carry != 0 && i < len(acc); i++ {
		sum := uint16(acc[i]) + carry
		acc[i] = byte(sum)
		carry = sum >> 8
	}
	if carry != 0 {
		acc = append(acc, byte(carry))
	}
	return acc
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The receiver is only replaced when text parses.
func (i *BigInt) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
