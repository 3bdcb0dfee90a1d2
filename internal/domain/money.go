package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed decimal scale for all balances and amounts,
// matching the DECIMAL(19,4) storage columns. Money never passes through a
// float: repeated transfers must not drift.
const MoneyScale = 4

// ParseAmount parses a wire amount into a scale-4 decimal. It rejects
// values that are not valid decimals or that carry more than four
// fractional digits.
func ParseAmount(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", v, err)
	}
	if d.Exponent() < -MoneyScale {
		return decimal.Zero, fmt.Errorf("amount %q exceeds scale %d", v, MoneyScale)
	}
	return d, nil
}

// FormatAmount renders a decimal at the fixed money scale for storage and
// wire output.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
