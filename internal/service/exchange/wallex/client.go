package wallex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const placeholderAPIKey = "YOUR_API_KEY_HERE"

const (
	defaultPivotAsset = "USDT"
	defaultTimeout    = 10 * time.Second
	defaultPace       = 500 * time.Millisecond
)

type Config struct {
	BaseURL         string
	MarketsEndpoint string
	TradesEndpoint  string
	APIKey          string
	PivotAsset      string
	Timeout         time.Duration
	// Pace is the minimum interval between per-symbol trade calls.
	Pace time.Duration
}

// Client talks to the authenticated, rate-limited source.
// The per-symbol trade endpoint is guarded by a token bucket so sequential
// calls never exceed one request per Pace.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.PivotAsset == "" {
		cfg.PivotAsset = defaultPivotAsset
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Pace <= 0 {
		cfg.Pace = defaultPace
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Every(cfg.Pace), 1),
	}
}

// CredentialConfigured reports whether a real API key is set.
// The config template ships with a placeholder value that must be rejected
// before any per-symbol call is attempted.
func (c *Client) CredentialConfigured() bool {
	return c.cfg.APIKey != "" && c.cfg.APIKey != placeholderAPIKey
}

func (c *Client) getJSON(ctx context.Context, url string, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if authed {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wallex: unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
