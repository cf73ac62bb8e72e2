package ioc

import (
	"time"

	"github.com/spf13/viper"

	"pricesentinel/internal/service/exchange/coincatch"
)

func InitCoincatchCli(timeout time.Duration) *coincatch.Client {
	type Config struct {
		BaseURL         string `mapstructure:"base_url"`
		TickersEndpoint string `mapstructure:"tickers_endpoint"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("price_sources.coincatch", &cfg); err != nil {
		panic(err)
	}

	return coincatch.NewClient(coincatch.Config{
		BaseURL:         cfg.BaseURL,
		TickersEndpoint: cfg.TickersEndpoint,
		Timeout:         timeout,
	})
}
