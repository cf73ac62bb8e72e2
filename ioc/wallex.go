package ioc

import (
	"time"

	"github.com/spf13/viper"

	"pricesentinel/internal/service/exchange/wallex"
)

func InitWallexCli(timeout, pace time.Duration) *wallex.Client {
	type Config struct {
		BaseURL         string `mapstructure:"base_url"`
		MarketsEndpoint string `mapstructure:"markets_endpoint"`
		TradesEndpoint  string `mapstructure:"trades_endpoint"`
		ApiKey          string `mapstructure:"api_key"`
		PivotAsset      string `mapstructure:"pivot_asset"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("price_sources.wallex", &cfg); err != nil {
		panic(err)
	}

	return wallex.NewClient(wallex.Config{
		BaseURL:         cfg.BaseURL,
		MarketsEndpoint: cfg.MarketsEndpoint,
		TradesEndpoint:  cfg.TradesEndpoint,
		APIKey:          cfg.ApiKey,
		PivotAsset:      cfg.PivotAsset,
		Timeout:         timeout,
		Pace:            pace,
	})
}
