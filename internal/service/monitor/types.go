package monitor

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Signal is one detected price deviation. It lives for a single evaluation
// and, when above threshold, one notification send.
type Signal struct {
	Symbol         string
	Base           string
	Quote          string
	SourcePrice    decimal.Decimal // authenticated source's last trade
	ReferencePrice decimal.Decimal // bulk source, the "fair" price
	Diff           decimal.Decimal // signed percentage
	Magnitude      decimal.Decimal
	Action         Action
	At             time.Time
}

// Exceeds reports whether the deviation reaches threshold. The comparison is
// inclusive: a deviation exactly at the threshold triggers.
func (s Signal) Exceeds(threshold decimal.Decimal) bool {
	return s.Magnitude.GreaterThanOrEqual(threshold)
}

// DeviationService runs one full comparison cycle.
type DeviationService interface {
	Scan(ctx context.Context) error
}

type Notifier interface {
	Notify(ctx context.Context, signal Signal) error
}
