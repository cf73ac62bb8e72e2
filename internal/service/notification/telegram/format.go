package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pricesentinel/internal/service/monitor"
)

const tradeLinkBase = "https://wallex.ir/app/trade/"

// Alerts always carry the Tehran timestamp, independent of the host zone.
var reportZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		return time.FixedZone("+0330", 12600)
	}
	return loc
}()

// FormatSignal renders a signal as a MarkdownV2 message. Every dynamic value
// is escaped before interpolation.
func FormatSignal(sig monitor.Signal) string {
	pair := EscapeMarkdownV2(sig.Base + "-" + sig.Quote)
	entryPrice := EscapeMarkdownV2(formatPrice(sig.SourcePrice))
	targetPrice := EscapeMarkdownV2(formatPrice(sig.ReferencePrice))
	diff := EscapeMarkdownV2(sig.Magnitude.StringFixed(2))
	at := EscapeMarkdownV2(sig.At.In(reportZone).Format("2006-01-02 15:04:05"))

	anchor := "فروش در والکس"
	if sig.Action == monitor.ActionBuy {
		anchor = "خرید در والکس"
	}

	return fmt.Sprintf(
		"*%s : %s*\n\n"+
			"Inter Price : `$%s`\n"+
			"Target Price : `$%s`\n"+
			"Difference : *%s\\%%*\n\n"+
			"[%s](%s%s)\n\n"+
			"Time : `%s`",
		sig.Action, pair, entryPrice, targetPrice, diff, anchor, tradeLinkBase, sig.Symbol, at,
	)
}

// formatPrice renders a price with thousands separators and four decimals,
// e.g. 49,000.0000.
func formatPrice(d decimal.Decimal) string {
	s := d.StringFixed(4)
	intPart, fracPart, _ := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
