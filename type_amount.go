package bookkeeping

import (
	"iter"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

// Amount represents an exact quantity of one currency (or commodity).
//
// The zero Amount has no currency and stands for an amount that has not been
// set, e.g. the omitted amount of a posting before resolution.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// A creates an Amount from any numeric value and a currency code.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// Currency returns the amount's currency code.
func (a Amount) Currency() string { return a.cur }

// Quantity returns the amount's exact quantity.
func (a Amount) Quantity() decimal.Decimal { return a.value }

// IsSet reports whether the amount carries a currency. Postings parsed with an
// omitted amount have an unset Amount until resolution fills it in.
func (a Amount) IsSet() bool { return a.cur != "" }

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }

// Equal reports whether both amounts have the same currency and quantity.
func (a Amount) Equal(b Amount) bool { return a.cur == b.cur && a.value.Equal(b.value) }

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount { return Amount{value: a.value.Neg(), cur: a.cur} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value), cur: cur(a, b)} }

// Mul scales the amount by an exact factor, keeping the currency.
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{value: a.value.Mul(factor), cur: a.cur}
}

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// String returns the plain "<quantity> <currency>" form used in reports.
func (a Amount) String() string {
	if a.cur == "" {
		return a.value.String()
	}
	return a.value.String() + " " + a.cur
}

// currency returns the full currency metadata, never nil: unknown codes get a
// generic fallback with two fraction digits.
func (a Amount) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, a.cur).Currency()
}

// Round returns the amount rounded to the currency's minor unit (e.g. cents).
func (a Amount) Round() Amount {
	return Amount{value: a.value.Round(int32(a.currency().Fraction)), cur: a.cur}
}

// Display returns the amount formatted with the currency's symbol and
// grouping, e.g. "$1,234.50". Reports use String; Display is for humans.
func (a Amount) Display() string {
	c := a.currency()
	dec := a.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.IntPart())
}

// MultiAmount is a balance in one or more currencies.
//
// It maps currency codes to exact quantities. An entry is removed as soon as
// its quantity reaches zero, so IsZero holds exactly when the map is empty.
// Currencies keep their insertion order for display.
type MultiAmount struct {
	order  []string
	values map[string]decimal.Decimal
}

// NewMultiAmount returns a MultiAmount holding the given amounts.
func NewMultiAmount(amounts ...Amount) *MultiAmount {
	m := &MultiAmount{values: make(map[string]decimal.Decimal)}
	for _, a := range amounts {
		m.Add(a)
	}
	return m
}

// Add merges the amount into the entry for its currency, creating the entry if
// absent, and drops the entry if the result is zero.
func (m *MultiAmount) Add(a Amount) {
	if !a.IsSet() {
		return
	}
	v, ok := m.values[a.cur]
	if !ok {
		m.order = append(m.order, a.cur)
	}
	v = v.Add(a.value)
	if v.IsZero() {
		m.remove(a.cur)
		return
	}
	m.values[a.cur] = v
}

// Sub is Add with the sign flipped.
func (m *MultiAmount) Sub(a Amount) { m.Add(a.Neg()) }

// AddAll merges every entry of o into m.
func (m *MultiAmount) AddAll(o *MultiAmount) {
	for a := range o.Amounts() {
		m.Add(a)
	}
}

// SubAll subtracts every entry of o from m.
func (m *MultiAmount) SubAll(o *MultiAmount) {
	for a := range o.Amounts() {
		m.Sub(a)
	}
}

func (m *MultiAmount) remove(currency string) {
	delete(m.values, currency)
	for i, c := range m.order {
		if c == currency {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// IsZero reports whether the balance holds no currency at all.
func (m *MultiAmount) IsZero() bool { return len(m.values) == 0 }

// Len returns the number of currencies in the balance.
func (m *MultiAmount) Len() int { return len(m.values) }

// AmountIn returns the entry for the given currency, zero if absent.
func (m *MultiAmount) AmountIn(currency string) Amount {
	return Amount{value: m.values[currency], cur: currency}
}

// Amounts yields one Amount per currency, in currency-insertion order.
func (m *MultiAmount) Amounts() iter.Seq[Amount] {
	return func(yield func(Amount) bool) {
		for _, c := range m.order {
			if !yield(Amount{value: m.values[c], cur: c}) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the balance.
func (m *MultiAmount) Clone() *MultiAmount {
	c := NewMultiAmount()
	c.order = append(c.order, m.order...)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Equal reports whether both balances hold the same amounts, regardless of
// insertion order.
func (m *MultiAmount) Equal(o *MultiAmount) bool {
	if len(m.values) != len(o.values) {
		return false
	}
	for c, v := range m.values {
		w, ok := o.values[c]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// ValueIn converts the whole balance into a single currency using the price
// index as of the given date.
func (m *MultiAmount) ValueIn(currency string, on Date, prices *PriceIndex) (Amount, error) {
	result := A(decimal.Zero, currency)
	for a := range m.Amounts() {
		if a.cur == currency {
			result = result.Add(a)
			continue
		}
		converted, err := prices.Convert(a, currency, on)
		if err != nil {
			return Amount{}, err
		}
		result = result.Add(converted)
	}
	return result, nil
}

// ValueInRounded is ValueIn rounded to the currency's minor unit.
func (m *MultiAmount) ValueInRounded(currency string, on Date, prices *PriceIndex) (Amount, error) {
	v, err := m.ValueIn(currency, on, prices)
	if err != nil {
		return Amount{}, err
	}
	return v.Round(), nil
}

// String renders one "<quantity> <currency>" line per currency, in
// currency-insertion order.
func (m *MultiAmount) String() string {
	var b strings.Builder
	first := true
	for a := range m.Amounts() {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(a.String())
	}
	return b.String()
}
