package ioc

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Settings struct {
	Threshold      decimal.Decimal
	CheckInterval  time.Duration
	SymbolPace     time.Duration
	RequestTimeout time.Duration
}

func InitSettings() Settings {
	type Config struct {
		Threshold       float64 `mapstructure:"price_difference_threshold"`
		IntervalSeconds int     `mapstructure:"check_interval_seconds"`
		SymbolPaceMs    int     `mapstructure:"symbol_pace_ms"`
		RequestTimeout  int     `mapstructure:"request_timeout_sec"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("settings", &cfg); err != nil {
		panic(err)
	}
	if cfg.Threshold < 0 {
		panic(fmt.Errorf("settings.price_difference_threshold must be >= 0, got %v", cfg.Threshold))
	}
	if cfg.IntervalSeconds <= 0 {
		panic(fmt.Errorf("settings.check_interval_seconds must be > 0, got %d", cfg.IntervalSeconds))
	}
	if cfg.SymbolPaceMs <= 0 {
		cfg.SymbolPaceMs = 500
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10
	}

	return Settings{
		Threshold:      decimal.NewFromFloat(cfg.Threshold),
		CheckInterval:  time.Duration(cfg.IntervalSeconds) * time.Second,
		SymbolPace:     time.Duration(cfg.SymbolPaceMs) * time.Millisecond,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}
}
