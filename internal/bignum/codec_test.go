package bignum

import (
	"errors"
	"math/big"
	"regexp"
	"strings"
	"testing"
)

func TestParseFormatCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000", "0"},
		{"-000", "0"},
		{"7", "7"},
		{"007", "7"},
		{"-045", "-45"},
		{"+45", "45"},
		{"255", "255"},
		{"256", "256"},
		{"-256", "-256"},
		{"65535", "65535"},
		{"1000000", "1000000"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-99999999999999999999999999999999999999", "-99999999999999999999999999999999999999"},
	}
	for _, tt := range tests {
		v, err := ParseInt(tt.in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.in, err)
		}
		if got := FormatInt(v); got != tt.want {
			t.Errorf("FormatInt(ParseInt(%q)) = %q, want %q", tt.in, got, tt.want)
		}
		if got := v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseIntRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "-", "+", "--1", "+-1", "12a", "a12", " 12", "12 ", "1_000", "0x10", "1.5", "١٢"} {
		_, err := ParseInt(in)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseInt(%q) error = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestParseIntErrorNamesInput(t *testing.T) {
	_, err := ParseInt("12x")
	if err == nil || !strings.Contains(err.Error(), `"12x"`) {
		t.Fatalf("error %v should quote the input", err)
	}
}

func TestParseIntByteLayout(t *testing.T) {
	v, err := ParseInt("256")
	if err != nil {
		t.Fatalf("ParseInt: %v", err)
	}
	if v.Len() != 2 || v.Byte(0) != 1 || v.Byte(1) != 0 {
		t.Fatalf("256 bytes = %v, want [1 0]", v.Bytes())
	}
	if _, err := ParseInt("0"); err != nil {
		t.Fatalf("ParseInt(0): %v", err)
	}
	if z, _ := ParseInt("0000"); z.Len() != 0 {
		t.Fatalf("zero should have an empty magnitude, got %v", z.Bytes())
	}
}

func TestTextMarshaling(t *testing.T) {
	var v BigInt
	if err := v.UnmarshalText([]byte("-123456789012345678901234567890")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	out, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(out) != "-123456789012345678901234567890" {
		t.Fatalf("MarshalText = %q", out)
	}

	before := v
	if err := v.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("UnmarshalText(nope) error = %v", err)
	}
	if !v.Equal(before) {
		t.Fatalf("failed UnmarshalText modified the receiver: %v", v)
	}
}

func TestFormatPoly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"1", "1*256**0"},
		{"255", "255*256**0"},
		{"256", "1*256**1"},
		{"257", "1*256**1+1*256**0"},
		{"65536", "1*256**2"},
		{"-300", "-(1*256**1+44*256**0)"},
	}
	for _, tt := range tests {
		v, err := ParseInt(tt.in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.in, err)
		}
		if got := FormatPoly(v); got != tt.want {
			t.Errorf("FormatPoly(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var polyTerm = regexp.MustCompile(`^(\d+)\*256\*\*(\d+)$`)

// evalPoly evaluates FormatPoly output with math/big.
func evalPoly(t *testing.T, s string) *big.Int {
	t.Helper()
	if s == "0" {
		return new(big.Int)
	}
	neg := false
	if strings.HasPrefix(s, "-(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[2 : len(s)-1]
	}
	sum := new(big.Int)
	for _, term := range strings.Split(s, "+") {
		m := polyTerm.FindStringSubmatch(term)
		if m == nil {
			t.Fatalf("malformed polynomial term %q", term)
		}
		coef, _ := new(big.Int).SetString(m[1], 10)
		exp, _ := new(big.Int).SetString(m[2], 10)
		pow := new(big.Int).Exp(big.NewInt(256), exp, nil)
		sum.Add(sum, pow.Mul(pow, coef))
	}
	if neg {
		sum.Neg(sum)
	}
	return sum
}

func TestFormatPolyEvaluatesToValue(t *testing.T) {
	for _, in := range []string{
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
		"18446744073709551616",
		"340282366920938463463374607431768211455",
		"-1",
	} {
		v, err := ParseInt(in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", in, err)
		}
		got := evalPoly(t, FormatPoly(v))
		if got.String() != in {
			t.Errorf("poly of %s evaluates to %s", in, got)
		}
	}
}

func TestAddScenarios(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"999", "1", "1000"},
		{"999999", "1", "1000000"},
		{"255", "1", "256"},
		{"65535", "1", "65536"},
		{"-5", "3", "-2"},
		{"5", "-5", "0"},
		{"-5", "5", "0"},
		{"-255", "-1", "-256"},
		{"256", "-1", "255"},
		{"-256", "1", "-255"},
		{"1", "-65536", "-65535"},
		{"0", "0", "0"},
		{"0", "-17", "-17"},
		{"9223372036854775807", "1", "9223372036854775808"},
		{"-9223372036854775808", "-1", "-9223372036854775809"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, tt := range tests {
		a, err := ParseInt(tt.a)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.a, err)
		}
		b, err := ParseInt(tt.b)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.b, err)
		}
		got := IntAdd(a, b)
		if FormatInt(got) != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
		if tt.want == "0" && (got.IsNeg() || got.Len() != 0) {
			t.Errorf("%s + %s produced non-canonical zero", tt.a, tt.b)
		}
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a, _ := ParseInt("65535")
	b, _ := ParseInt("-255")
	aBytes, bBytes := a.Bytes(), b.Bytes()
	_ = a.Add(b)
	_ = b.Add(a)
	_ = a.Add(a)
	if string(a.Bytes()) != string(aBytes) || string(b.Bytes()) != string(bBytes) {
		t.Fatalf("Add modified an operand: a=%v b=%v", a.Bytes(), b.Bytes())
	}
	if a.String() != "65535" || b.String() != "-255" {
		t.Fatalf("operands changed: %s %s", a, b)
	}
}

func TestAddSelfAliasing(t *testing.T) {
	a, _ := ParseInt("128")
	sum := a.Add(a)
	if sum.String() != "256" || a.String() != "128" {
		t.Fatalf("128+128 = %s (a=%s)", sum, a)
	}
}
