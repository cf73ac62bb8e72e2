package exchange

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Market is one tradable pair from the authenticated source's listing.
type Market struct {
	Symbol string
	Base   string
	Quote  string
}

// ErrNoRecentTrade is returned when the per-symbol endpoint has no usable trade.
var ErrNoRecentTrade = errors.New("no recent trade for symbol")

// MarketService lists the markets of the authenticated source,
// filtered to the configured pivot quote asset.
type MarketService interface {
	GetMarkets(ctx context.Context) (map[string]Market, error)
}

// TickerService returns all symbol prices of the bulk source in one call.
type TickerService interface {
	GetAllPrices(ctx context.Context) (map[string]decimal.Decimal, error)
}

// TradeService fetches the most recent trade price for a single symbol.
// Calls are authenticated and rate limited.
type TradeService interface {
	GetLastTradePrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	CredentialConfigured() bool
}
