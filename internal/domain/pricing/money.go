package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"parkme/internal/pkg/errs"
)

// Money is an amount in minor units (cents). It renders as a decimal string
// with two fractional digits and never passes through floating point.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func Zero() Money { return Money{} }

// ParseMoney accepts "16", "16.5" or "16.50". More than two fractional
// digits or a negative sign is rejected.
func ParseMoney(s string) (Money, error) {
	v, err := parseFixed(s, 2)
	if err != nil {
		return Money{}, errs.Validation("invalid money amount %q", s)
	}
	if v < 0 {
		return Money{}, errs.Validation("money amount cannot be negative: %q", s)
	}
	return Money{cents: v}, nil
}

func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money { return Money{cents: m.cents + other.cents} }

func (m Money) Sub(other Money) Money {
	r := m.cents - other.cents
	if r < 0 {
		r = 0
	}
	return Money{cents: r}
}

func (m Money) Mul(n int64) Money { return Money{cents: m.cents * n} }

// Scale multiplies by a fixed-point multiplier, rounding half up to the cent.
func (m Money) Scale(x Multiplier) Money {
	num := m.cents * x.bps
	q := num / multiplierScale
	if rem := num % multiplierScale; rem*2 >= multiplierScale {
		q++
	}
	return Money{cents: q}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(b []byte) error {
	parsed, err := ParseMoney(unquote(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const multiplierScale = 10000

// Multiplier is a non-negative factor with four fractional digits ("1.5" is
// stored as 15000 basis points).
type Multiplier struct {
	bps int64
}

var One = Multiplier{bps: multiplierScale}

func ParseMultiplier(s string) (Multiplier, error) {
	v, err := parseFixed(s, 4)
	if err != nil || v < 0 {
		return Multiplier{}, errs.Validation("invalid multiplier %q", s)
	}
	return Multiplier{bps: v}, nil
}

func (x Multiplier) IsZero() bool { return x.bps == 0 }

func (x Multiplier) String() string {
	s := fmt.Sprintf("%d.%04d", x.bps/multiplierScale, x.bps%multiplierScale)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (x Multiplier) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *Multiplier) UnmarshalJSON(b []byte) error {
	parsed, err := ParseMultiplier(unquote(b))
	if err != nil {
		return err
	}
	*x = parsed
	return nil
}

func unquote(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return string(b)
}

// parseFixed parses a plain decimal string into an integer scaled by
// 10^scale without going through float64.
func parseFixed(s string, scale int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !isDigits(intPart) || (hasDot && !isDigits(fracPart)) {
		return 0, fmt.Errorf("malformed decimal %q", s)
	}
	if len(fracPart) > scale {
		return 0, fmt.Errorf("too many fractional digits in %q", s)
	}
	fracPart += strings.Repeat("0", scale-len(fracPart))

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, err
	}
	var frac int64
	if scale > 0 {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, err
		}
	}
	pow := int64(1)
	for range scale {
		pow *= 10
	}
	v := whole*pow + frac
	if neg {
		v = -v
	}
	return v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
