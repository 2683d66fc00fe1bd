package bignum

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestFromBytesCanonicalizes(t *testing.T) {
	tests := []struct {
		name    string
		neg     bool
		mag     []byte
		wantNeg bool
		wantMag []byte
	}{
		{"nil", false, nil, false, nil},
		{"negative nil", true, nil, false, nil},
		{"zero byte", false, []byte{0}, false, nil},
		{"negative zeros", true, []byte{0, 0, 0}, false, nil},
		{"leading zeros", false, []byte{0, 0, 1, 2}, false, []byte{1, 2}},
		{"negative", true, []byte{0, 255}, true, []byte{255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBytes(tt.neg, tt.mag)
			if got.IsNeg() != tt.wantNeg {
				t.Fatalf("IsNeg() = %v, want %v", got.IsNeg(), tt.wantNeg)
			}
			if !bytes.Equal(got.Bytes(), tt.wantMag) {
				t.Fatalf("Bytes() = %v, want %v", got.Bytes(), tt.wantMag)
			}
			if got.Len() != len(tt.wantMag) {
				t.Fatalf("Len() = %d, want %d", got.Len(), len(tt.wantMag))
			}
			again := FromBytes(got.IsNeg(), got.Bytes())
			if !again.Equal(got) {
				t.Fatalf("normalization not idempotent: %v vs %v", again, got)
			}
		})
	}
}

func TestFromBytesCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	v := FromBytes(false, src)
	src[0] = 9
	if v.Byte(0) != 1 {
		t.Fatalf("mutating the source slice changed the value: %v", v.Bytes())
	}
}

func TestBytesAndCloneAreIndependent(t *testing.T) {
	v, err := ParseInt("-65536")
	if err != nil {
		t.Fatalf("ParseInt: %v", err)
	}
	out := v.Bytes()
	out[0] = 42
	if v.Byte(0) != 1 {
		t.Fatalf("Bytes() exposed internal storage")
	}

	c := v.Clone()
	if !c.Equal(v) {
		t.Fatalf("Clone() = %v, want %v", c, v)
	}
	cb := c.Bytes()
	if &cb[0] == &out[0] {
		t.Fatalf("Clone() shares storage")
	}
}

func TestByteIndexing(t *testing.T) {
	v := IntFromInt64(0x010203)
	want := []byte{1, 2, 3}
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	for i, b := range want {
		if v.Byte(i) != b {
			t.Fatalf("Byte(%d) = %d, want %d", i, v.Byte(i), b)
		}
	}
}

func TestSign(t *testing.T) {
	cases := map[string]int{"0": 0, "-0": 0, "7": 1, "-7": -1}
	for in, want := range cases {
		v, err := ParseInt(in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", in, err)
		}
		if v.Sign() != want {
			t.Errorf("Sign(%q) = %d, want %d", in, v.Sign(), want)
		}
		if v.IsZero() != (want == 0) {
			t.Errorf("IsZero(%q) = %v", in, v.IsZero())
		}
	}
	if !IntZero().Equal(BigInt{}) {
		t.Fatalf("IntZero() is not the zero value")
	}
}

func TestInt64RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 255, 256, -256, 65535, 65536,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	}
	for _, v := range values {
		bi := IntFromInt64(v)
		got, err := bi.Int64()
		if err != nil {
			t.Fatalf("Int64(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("Int64 round trip: got %d, want %d", got, v)
		}
	}
}

func TestIntFromInt64MinValue(t *testing.T) {
	v := IntFromInt64(math.MinInt64)
	if got, want := FormatInt(v), "-9223372036854775808"; got != want {
		t.Fatalf("FormatInt = %q, want %q", got, want)
	}
	if !bytes.Equal(v.Bytes(), []byte{0x80, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("Bytes() = %v", v.Bytes())
	}
}

func TestInt64Boundaries(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"9223372036854775807", math.MaxInt64, false},
		{"-9223372036854775808", math.MinInt64, false},
		{"9223372036854775808", 0, true},
		{"-9223372036854775809", 0, true},
		{"18446744073709551615", 0, true},
		{"18446744073709551616", 0, true},
		{"123456789012345678901234567890", 0, true},
	}
	for _, tt := range tests {
		v, err := ParseInt(tt.in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.in, err)
		}
		got, err := v.Int64()
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Int64(%s) error = %v, want ErrOutOfRange", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Int64(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Int64(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
