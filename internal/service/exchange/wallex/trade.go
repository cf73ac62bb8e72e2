package wallex

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"pricesentinel/internal/service/exchange"
)

type tradesResponse struct {
	Result struct {
		// Most recent trade first.
		LatestTrades []struct {
			Price string `json:"price"`
		} `json:"latestTrades"`
	} `json:"result"`
}

// GetLastTradePrice returns the price of the newest trade for symbol.
// It blocks on the client's rate limiter before issuing the request.
func (c *Client) GetLastTradePrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, err
	}

	u := c.cfg.BaseURL + c.cfg.TradesEndpoint + "?symbol=" + url.QueryEscape(symbol)
	var body tradesResponse
	if err := c.getJSON(ctx, u, true, &body); err != nil {
		return decimal.Zero, fmt.Errorf("fetch wallex last trade for %s: %w", symbol, err)
	}

	trades := body.Result.LatestTrades
	if len(trades) == 0 {
		return decimal.Zero, fmt.Errorf("%s: %w", symbol, exchange.ErrNoRecentTrade)
	}
	price, err := decimal.NewFromString(trades[0].Price)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s has unusable trade price %q: %w", symbol, trades[0].Price, exchange.ErrNoRecentTrade)
	}
	return price, nil
}
