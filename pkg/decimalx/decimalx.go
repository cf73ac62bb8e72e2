package decimalx

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// PercentDiff returns (a-b)/b*100. b must be non-zero; callers guard.
func PercentDiff(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Div(b).Mul(hundred)
}
