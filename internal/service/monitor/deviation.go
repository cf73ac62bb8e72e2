package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"pricesentinel/internal/service/exchange"
)

type DeviationMonitor struct {
	marketSvc exchange.MarketService
	tickerSvc exchange.TickerService
	tradeSvc  exchange.TradeService

	notifier  Notifier
	threshold decimal.Decimal

	rejectMarket func(market exchange.Market) bool // if true, reject
}

type consoleNotifier struct {
}

func (c consoleNotifier) Notify(ctx context.Context, signal Signal) error {
	fmt.Println("deviation signal", signal.Action, signal.Symbol, signal.Diff)
	return nil
}

type Option func(m *DeviationMonitor)

func WithNotifier(notifier Notifier) Option {
	return func(m *DeviationMonitor) {
		m.notifier = notifier
	}
}

// WithMarketReject excludes markets from the scan, e.g. delisted pairs.
func WithMarketReject(reject func(market exchange.Market) bool) Option {
	return func(m *DeviationMonitor) {
		m.rejectMarket = reject
	}
}

func NewDeviationMonitor(marketSvc exchange.MarketService, tickerSvc exchange.TickerService,
	tradeSvc exchange.TradeService, threshold decimal.Decimal, opts ...Option) DeviationService {
	monitor := &DeviationMonitor{
		marketSvc: marketSvc,
		tickerSvc: tickerSvc,
		tradeSvc:  tradeSvc,
		threshold: threshold,
		notifier:  consoleNotifier{},
		rejectMarket: func(market exchange.Market) bool {
			return false
		},
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

// Scan runs one comparison cycle. A degraded source skips the cycle; a failed
// symbol skips only that symbol. Nothing here may take the process down.
func (m *DeviationMonitor) Scan(ctx context.Context) error {
	slog.Info("starting new analysis cycle")

	prices, err := m.tickerSvc.GetAllPrices(ctx)
	if err != nil {
		return fmt.Errorf("bulk price fetch failed: %w", err)
	}
	markets, err := m.marketSvc.GetMarkets(ctx)
	if err != nil {
		return fmt.Errorf("market listing fetch failed: %w", err)
	}
	if len(prices) == 0 || len(markets) == 0 {
		slog.Warn("could not fetch necessary data, skipping cycle",
			"prices", len(prices), "markets", len(markets))
		return nil
	}

	if !m.tradeSvc.CredentialConfigured() {
		return fmt.Errorf("authenticated source api key is missing or a placeholder")
	}

	slog.Info("comparing markets with bulk prices", "markets", len(markets))
	for _, p := range reconcile(markets, prices) {
		if m.rejectMarket(p.market) {
			continue
		}
		if !p.hasBulk {
			continue
		}

		source, err := m.tradeSvc.GetLastTradePrice(ctx, p.market.Symbol)
		if err != nil {
			slog.Warn("could not fetch last trade", "symbol", p.market.Symbol, "error", err)
			continue
		}

		sig, ok := evaluate(p.market, source, p.bulkPrice, time.Now())
		if !ok {
			continue
		}
		m.echo(sig)

		if !sig.Exceeds(m.threshold) {
			continue
		}
		go func() {
			if err := m.notifier.Notify(ctx, sig); err != nil {
				slog.Error("failed to notify deviation signal", "symbol", sig.Symbol, "error", err)
			}
		}()
	}
	return nil
}

// echo prints the comparison to stdout for human monitoring. This stream is
// not consumed by anything else.
func (m *DeviationMonitor) echo(sig Signal) {
	fmt.Println("=======================================")
	fmt.Printf("Symbol: %s\n", sig.Symbol)
	fmt.Printf("  - Last Trade : %s $\n", sig.SourcePrice.StringFixed(4))
	fmt.Printf("  - Bulk Price : %s $\n", sig.ReferencePrice.StringFixed(4))
	fmt.Printf("  - Difference : %+.2f%%\n", sig.Diff.InexactFloat64())
	if sig.Exceeds(m.threshold) {
		fmt.Println("  - SIGNAL FOUND")
	} else {
		fmt.Println("  - No signal, difference is below threshold")
	}
}
