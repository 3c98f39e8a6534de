package catalog

import (
	"fmt"
	"math"
	"strconv"
)

const minorUnits = 100

// MaxAmount is the largest single catalog amount, in major units.
const MaxAmount = 1_000_000

// Money is an amount in minor units (cents) of the resort currency.
type Money int64

func FromMajor(v int64) Money {
	return Money(v * minorUnits)
}

func moneyFromFloat(v float64) (Money, error) {
	if v < 0 {
		return 0, ErrNegativeAmount
	}

	if v > MaxAmount {
		return 0, ErrAmountTooLarge
	}

	scaled := v * minorUnits
	rounded := math.Round(scaled)

	if math.Abs(scaled-rounded) > 1e-6 { //nolint:gomnd
		return 0, ErrAmountPrecision
	}

	return Money(rounded), nil
}

func (m Money) Times(n int) Money {
	return m * Money(n)
}

func (m Money) Major() float64 {
	return float64(m) / minorUnits
}

func (m Money) String() string {
	sign := ""
	v := int64(m)

	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/minorUnits, v%minorUnits)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse money %q: %w", data, err)
	}

	parsed, err := moneyFromFloat(v)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
