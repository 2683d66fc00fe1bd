package bignum

// IntAdd adds two BigInt values. Neither operand is modified.
func IntAdd(a, b BigInt) BigInt {
	if a.neg == b.neg {
		return newInt(a.neg, addMag(a.mag, b.mag))
	}

	switch cmpMag(a.mag, b.mag) {
	case 0:
		return BigInt{}
	case 1:
		return newInt(a.neg, subMag(a.mag, b.mag))
	default:
		return newInt(b.neg, subMag(b.mag, a.mag))
	}
}

// Add returns i + j.
func (i BigInt) Add(j BigInt) BigInt { return IntAdd(i, j) }

// addMag returns a fresh big-endian a+b.
func addMag(a, b []byte) []byte {
	n := max(len(a), len(b))
	if n == 0 {
		return nil
	}
	// out[0] is reserved for the final carry.
	out := make([]byte, n+1)
	var carry uint16
	for k := 1; k <= n; k++ {
		sum := uint16(byteFromEnd(a, k)) + uint16(byteFromEnd(b, k)) + carry
		out[n+1-k] = byte(sum)
		carry = sum >> 8
	}
	out[0] = byte(carry)
	return trimBytes(out)
}

// subMag returns a fresh big-endian a-b. Requires |a| >= |b|.
func subMag(a, b []byte) []byte {
	out := make([]byte, len(a))
	var borrow int16
	for k := 1; k <= len(a); k++ {
		diff := int16(byteFromEnd(a, k)) - int16(byteFromEnd(b, k)) - borrow
		borrow = 0
		if diff < 0 {
			diff += 256
			borrow = 1
		}
		out[len(a)-k] = byte(diff)
	}
	return trimBytes(out)
}

// cmpMag compares two trimmed big-endian magnitudes.
func cmpMag(a, b []byte) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// byteFromEnd returns the k-th least significant byte (k starts at 1), or 0
// past the top of the magnitude.
func byteFromEnd(mag []byte, k int) byte {
	if k > len(mag) {
		return 0
	}
	return mag[len(mag)-k]
}
