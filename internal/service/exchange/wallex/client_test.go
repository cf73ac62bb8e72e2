package wallex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pricesentinel/internal/service/exchange"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:         srv.URL,
		MarketsEndpoint: "/v1/markets",
		TradesEndpoint:  "/v1/trades",
		APIKey:          "test-key",
		PivotAsset:      "USDT",
		Pace:            time.Millisecond,
	})
}

func TestGetMarkets_KeepsOnlyPivotQuote(t *testing.T) {
	cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/markets", r.URL.Path)
		w.Write([]byte(`{"result":{"symbols":{
			"BTCUSDT":{"baseAsset":"BTC","quoteAsset":"USDT"},
			"ETHUSDT":{"baseAsset":"ETH","quoteAsset":"USDT"},
			"BTCTMN":{"baseAsset":"BTC","quoteAsset":"TMN"}
		}}}`))
	}))

	markets, err := cli.GetMarkets(context.Background())
	require.NoError(t, err)

	require.Len(t, markets, 2)
	require.Equal(t, exchange.Market{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT"}, markets["BTCUSDT"])
	require.NotContains(t, markets, "BTCTMN")
}

func TestGetMarkets_ServerErrorIsReported(t *testing.T) {
	cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := cli.GetMarkets(context.Background())
	require.Error(t, err)
}

func TestGetLastTradePrice_TakesNewestTrade(t *testing.T) {
	cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/trades", r.URL.Path)
		require.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Write([]byte(`{"result":{"latestTrades":[{"price":"49000"},{"price":"48000"}]}}`))
	}))

	price, err := cli.GetLastTradePrice(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	require.Equal(t, "49000", price.String())
}

func TestGetLastTradePrice_NoTrades(t *testing.T) {
	cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"latestTrades":[]}}`))
	}))

	_, err := cli.GetLastTradePrice(context.Background(), "BTCUSDT")
	require.ErrorIs(t, err, exchange.ErrNoRecentTrade)
}

func TestGetLastTradePrice_UnusablePrice(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"non-numeric", `{"result":{"latestTrades":[{"price":"abc"}]}}`},
		{"zero", `{"result":{"latestTrades":[{"price":"0"}]}}`},
		{"negative", `{"result":{"latestTrades":[{"price":"-1"}]}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			_, err := cli.GetLastTradePrice(context.Background(), "BTCUSDT")
			require.ErrorIs(t, err, exchange.ErrNoRecentTrade)
		})
	}
}

func TestGetLastTradePrice_CancelledContext(t *testing.T) {
	cli := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"latestTrades":[{"price":"1"}]}}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cli.GetLastTradePrice(ctx, "BTCUSDT")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCredentialConfigured(t *testing.T) {
	require.True(t, NewClient(Config{APIKey: "real-key"}).CredentialConfigured())
	require.False(t, NewClient(Config{APIKey: ""}).CredentialConfigured())
	require.False(t, NewClient(Config{APIKey: "YOUR_API_KEY_HERE"}).CredentialConfigured())
}
