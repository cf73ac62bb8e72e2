package monitor

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"pricesentinel/internal/service/exchange"
)

// pairing is one market from the authenticated listing together with its bulk
// price, when the bulk source has one.
type pairing struct {
	market    exchange.Market
	bulkPrice decimal.Decimal
	hasBulk   bool
}

// reconcile intersects the authenticated market listing with the bulk price
// table. The listing defines the symbol universe: the bulk source is cheap to
// call once for everything, while the authenticated source costs one call per
// symbol, so only listed markets are worth checking. Symbols are ordered so
// cycles are deterministic.
func reconcile(markets map[string]exchange.Market, prices map[string]decimal.Decimal) []pairing {
	symbols := lo.Keys(markets)
	sort.Strings(symbols)

	return lo.Map(symbols, func(symbol string, _ int) pairing {
		price, ok := prices[symbol]
		return pairing{
			market:    markets[symbol],
			bulkPrice: price,
			hasBulk:   ok,
		}
	})
}
