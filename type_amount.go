package finbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// displayCurrency is the currency the presentation helper formats amounts in.
// The ledger itself is single-currency and stores plain two-decimal values.
const displayCurrency = money.NGN

// Amount represents a monetary value with two-decimal precision.
// All arithmetic is exact decimal arithmetic.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a numeric value, rounded to two decimals.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value).Round(2)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseAmount parses the decimal-string form of an amount, rounding to two decimals.
func ParseAmount(str string) (Amount, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d.Round(2)}, nil
}

// String returns the plain decimal-string form of the amount, with no
// trailing zeros ("2000", "150.5"). This is the form the filter engine
// matches against and the CSV codec writes.
func (a Amount) String() string { return a.value.String() }

// StringFixed returns the amount with exactly two decimals.
func (a Amount) StringFixed() string { return a.value.StringFixed(2) }

// Display formats the amount as naira for presentation ("₦2,000.00").
// Never used in arithmetic or persistence.
func (a Amount) Display() string {
	cur := money.GetCurrency(displayCurrency)
	minor := a.value.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), displayCurrency).Display()
}

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) Neg() Amount            { return Amount{value: a.value.Neg()} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Cmp compares a and b and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) int { return a.value.Cmp(b.value) }

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.Round(2).MarshalJSON()
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d.Round(2)
	return nil
}
