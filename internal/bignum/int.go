package bignum

import "bytes"

// BigInt represents a big signed integer.
type BigInt struct {
	neg bool
	// mag is the base-256 big-endian magnitude (mag[0] is most significant).
	//
	// Canonical zero is represented as neg=false and nil/empty mag.
	// No function in this package writes into an existing mag slice, so
	// values may share storage after a plain assignment.
	mag []byte
}

// IntZero returns a zero BigInt.
func IntZero() BigInt { return BigInt{} }

// FromBytes creates a BigInt from a sign and a big-endian magnitude.
// The magnitude is copied and stripped of leading zero bytes.
func FromBytes(neg bool, mag []byte) BigInt {
	mag = trimBytes(mag)
	if len(mag) == 0 {
		return BigInt{}
	}
	out := make([]byte, len(mag))
	copy(out, mag)
	return BigInt{neg: neg, mag: out}
}

// newInt takes ownership of mag.
func newInt(neg bool, mag []byte) BigInt {
	mag = trimBytes(mag)
	if len(mag) == 0 {
		return BigInt{}
	}
	return BigInt{neg: neg, mag: mag}
}

// Len returns the magnitude length in bytes. Zero has length 0.
func (i BigInt) Len() int { return len(i.mag) }

// Byte returns the magnitude byte at idx, where idx 0 is the most significant.
func (i BigInt) Byte(idx int) byte { return i.mag[idx] }

// Bytes returns a copy of the big-endian magnitude.
func (i BigInt) Bytes() []byte {
	if len(i.mag) == 0 {
		return nil
	}
	out := make([]byte, len(i.mag))
	copy(out, i.mag)
	return out
}

// Clone returns a deep copy with its own storage.
func (i BigInt) Clone() BigInt {
	return BigInt{neg: i.neg, mag: i.Bytes()}
}

// IsZero reports whether the integer is zero.
func (i BigInt) IsZero() bool { return len(i.mag) == 0 }

// IsNeg reports whether the integer is strictly negative.
func (i BigInt) IsNeg() bool { return i.neg }

// Sign returns -1, 0 or 1.
func (i BigInt) Sign() int {
	switch {
	case len(i.mag) == 0:
		return 0
	case i.neg:
		return -1
	default:
		return 1
	}
}

// Equal reports whether i and j hold the same value.
func (i BigInt) Equal(j BigInt) bool {
	return i.neg == j.neg && bytes.Equal(i.mag, j.mag)
}

func trimBytes(mag []byte) []byte {
	for len(mag) > 0 && mag[0] == 0 {
		mag = mag[1:]
	}
	if len(mag) == 0 {
		return nil
	}
	return mag
}
