package bignum

import (
	"encoding/binary"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// IntFromInt64 creates a BigInt from an int64.
func IntFromInt64(v int64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	u := uint64(v) //nolint:gosec // G115: reinterpreted below for negatives.
	if v < 0 {
		u = uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
		u++
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	return FromBytes(v < 0, buf[:])
}

// Int64 converts i to int64, or fails with ErrOutOfRange.
func (i BigInt) Int64() (int64, error) {
	if len(i.mag) > 8 {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, FormatInt(i))
	}
	var mag uint64
	for _, b := range i.mag {
		mag = mag<<8 | uint64(b)
	}
	if i.neg {
		// Negative: allow magnitude up to 2^63.
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, FormatInt(i))
	}
	if i.neg {
		return -v, nil
	}
	return v, nil
}
