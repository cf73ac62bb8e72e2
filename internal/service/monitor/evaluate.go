package monitor

import (
	"time"

	"github.com/shopspring/decimal"

	"pricesentinel/internal/service/exchange"
	"pricesentinel/pkg/decimalx"
)

// evaluate classifies the deviation of the authenticated source's price
// against the bulk reference price. The direction is load-bearing: source is
// the numerator term and reference the denominator, so a negative deviation
// means the authenticated source is cheaper (buy there, sell at reference).
// A non-positive price on either side means the symbol is unavailable.
func evaluate(market exchange.Market, source, reference decimal.Decimal, at time.Time) (Signal, bool) {
	if !source.IsPositive() || !reference.IsPositive() {
		return Signal{}, false
	}

	diff := decimalx.PercentDiff(source, reference)
	sig := Signal{
		Symbol:         market.Symbol,
		Base:           market.Base,
		Quote:          market.Quote,
		SourcePrice:    source,
		ReferencePrice: reference,
		Diff:           diff,
		At:             at,
	}
	if diff.IsNegative() {
		sig.Action = ActionBuy
		sig.Magnitude = diff.Neg()
	} else {
		sig.Action = ActionSell
		sig.Magnitude = diff
	}
	return sig, true
}
