package coincatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

type tickersResponse struct {
	Data []struct {
		Symbol string `json:"symbol"`
		// json.Number so both "50000" and 50000 parse.
		Close json.Number `json:"close"`
	} `json:"data"`
}

// GetAllPrices fetches every ticker in one call and returns symbol -> close
// price. Symbols are normalized by stripping the dash separator. Entries with
// a missing, non-numeric or non-positive close are dropped; whatever parsed
// successfully is returned even if some entries failed.
func (c *Client) GetAllPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	var body tickersResponse
	if err := c.getJSON(ctx, c.cfg.BaseURL+c.cfg.TickersEndpoint, &body); err != nil {
		return nil, fmt.Errorf("fetch coincatch tickers: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(body.Data))
	for _, t := range body.Data {
		symbol := strings.ReplaceAll(t.Symbol, "-", "")
		if symbol == "" {
			continue
		}
		price, err := decimal.NewFromString(t.Close.String())
		if err != nil || !price.IsPositive() {
			continue
		}
		prices[symbol] = price
	}
	slog.Info("fetched coincatch tickers", "count", len(prices))
	return prices, nil
}
