package order

import (
	"fmt"
)

// currencyExponents maps ISO currency codes to their minor-unit exponent.
// Unlisted currencies default to 2.
var currencyExponents = map[string]int32{
	"EUR": 2,
	"USD": 2,
	"SEK": 2,
	"JPY": 0,
}

// ToMinorUnits converts a decimal price to an integer amount in the smallest
// currency unit. A price that is not representable in minor units (more
// precision than the currency carries) is an error, never rounded.
func ToMinorUnits(p Price) (int64, error) {
	exp, ok := currencyExponents[p.Currency]
	if !ok {
		exp = 2
	}

	shifted := p.Number.Shift(exp)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("price %s %s is not representable in minor units", p.Number, p.Currency)
	}
	return shifted.IntPart(), nil
}
