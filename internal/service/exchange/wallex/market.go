package wallex

import (
	"context"
	"fmt"

	"pricesentinel/internal/service/exchange"
)

type marketsResponse struct {
	Result struct {
		Symbols map[string]struct {
			BaseAsset  string `json:"baseAsset"`
			QuoteAsset string `json:"quoteAsset"`
		} `json:"symbols"`
	} `json:"result"`
}

// GetMarkets returns all markets quoted in the pivot asset.
func (c *Client) GetMarkets(ctx context.Context) (map[string]exchange.Market, error) {
	var body marketsResponse
	if err := c.getJSON(ctx, c.cfg.BaseURL+c.cfg.MarketsEndpoint, false, &body); err != nil {
		return nil, fmt.Errorf("fetch wallex markets: %w", err)
	}

	markets := make(map[string]exchange.Market, len(body.Result.Symbols))
	for sym, m := range body.Result.Symbols {
		if m.QuoteAsset != c.cfg.PivotAsset {
			continue
		}
		markets[sym] = exchange.Market{
			Symbol: sym,
			Base:   m.BaseAsset,
			Quote:  m.QuoteAsset,
		}
	}
	return markets, nil
}
