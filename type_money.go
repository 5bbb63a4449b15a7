package shoply

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single currency the tracker operates in. The store has
// no multi-currency requirement, so Money carries only the value.
const currencyCode = "NGN"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in the store currency.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a plain decimal amount like "25000" or "24.5".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool  { return m.value.Equal(n.value) }
func (m Money) IsZero() bool        { return m.value.IsZero() }
func (m Money) IsPositive() bool    { return m.value.IsPositive() }
func (m Money) Add(n Money) Money   { return Money{value: m.value.Add(n.value)} }
func (m Money) Mul(n int) Money     { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// String returns the display form: currency symbol followed by the value with
// grouped integer digits, e.g. "₦250,000". Fractional digits appear only when
// the value is not a whole number.
func (m Money) String() string {
	cur := money.GetCurrency(currencyCode)

	v := m.value
	var b strings.Builder
	if v.IsNegative() {
		b.WriteByte('-')
		v = v.Neg()
	}
	b.WriteString(cur.Grapheme)

	intPart, frac, _ := strings.Cut(v.String(), ".")
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// Plain returns the bare decimal digits, for machine formats like CSV.
func (m Money) Plain() string { return m.value.String() }

// MarshalJSON encodes the value as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
