package bignum

import (
	"errors"
	"math/big"
	"testing"
)

const maxFuzzInput = 1 << 12

func FuzzParseInt(f *testing.F) {
	for _, seed := range []string{"0", "-0", "007", "-045", "255", "65536", "", "-", "12a", "+9", "123456789012345678901234567890"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		v, err := ParseInt(input)
		ref, ok := new(big.Int).SetString(input, 10)
		if err != nil {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("unexpected error kind for %q: %v", input, err)
			}
			return
		}
		if !ok {
			t.Fatalf("ParseInt accepted %q but math/big did not", input)
		}
		if got := FormatInt(v); got != ref.String() {
			t.Fatalf("FormatInt(ParseInt(%q)) = %q, want %q", input, got, ref.String())
		}
	})
}

func FuzzAdd(f *testing.F) {
	f.Add(int64(255), int64(1), "999")
	f.Add(int64(-5), int64(3), "-65536")
	f.Fuzz(func(t *testing.T, a, b int64, digits string) {
		x := IntFromInt64(a)
		y := IntFromInt64(b)
		want := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
		if got := IntAdd(x, y).String(); got != want.String() {
			t.Fatalf("%d + %d = %s, want %s", a, b, got, want)
		}

		z, err := ParseInt(digits)
		if err != nil {
			return
		}
		ref, _ := new(big.Int).SetString(digits, 10)
		want.Add(want, ref)
		if got := IntAdd(IntAdd(x, y), z).String(); got != want.String() {
			t.Fatalf("%d + %d + %s = %s, want %s", a, b, digits, got, want)
		}
	})
}
