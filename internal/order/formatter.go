package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"order-assistant/internal/types"
)

const (
	// DefaultType is the order type used when none is given.
	DefaultType = "market"

	placeholderUnknown     = "UNKNOWN"
	placeholderNotInformed = "NOT INFORMED"
	origin                 = "Automatic System"

	boxWidth = 42
)

// FormatOrder renders the boxed confirmation shown before an order is sent.
// Missing fields are rendered as placeholders.
func FormatOrder(o types.Order) string {
	var b strings.Builder
	border := strings.Repeat("═", boxWidth)

	b.WriteString("╔" + border + "╗\n")
	b.WriteString(boxLine(center("📊 ORDER TICKET")))
	b.WriteString("╠" + border + "╣\n")
	b.WriteString(boxLine(""))
	b.WriteString(boxField("ACTION", displayAction(o.Action)))
	b.WriteString(boxField("ASSET", orDefault(o.Ticker, placeholderUnknown)))
	b.WriteString(boxField("QUANTITY", formatQuantity(o.Quantity)))
	b.WriteString(boxField("TYPE", displayType(o.Type)))
	b.WriteString(boxField("ACCOUNT", orDefault(o.Account, placeholderNotInformed)))
	b.WriteString(boxLine(""))
	b.WriteString(boxLine("  Date/Time: NOW"))
	b.WriteString(boxLine("  Origin: " + origin))
	b.WriteString(boxLine(""))
	b.WriteString("╠" + border + "╣\n")
	b.WriteString(boxLine("   CONFIRM EXECUTION?"))
	b.WriteString("╚" + border + "╝\n")

	return b.String()
}

// FormatSimple renders a short chat-style version of the order.
func FormatSimple(o types.Order) string {
	return fmt.Sprintf(`📊 *ORDER %s*

• *Asset:* %s
• *Quantity:* %s
• *Type:* %s
• *Account:* %s
• *Origin:* %s

_This order is ready for execution._
`,
		displayAction(o.Action),
		orDefault(o.Ticker, placeholderUnknown),
		formatQuantity(o.Quantity),
		displayType(o.Type),
		orDefault(o.Account, placeholderNotInformed),
		origin,
	)
}

// FormatBrokerMessage renders the urgent message sent straight to the broker.
// Any action other than buy is rendered as SELL.
func FormatBrokerMessage(o types.Order) string {
	return fmt.Sprintf(`🚨 *URGENT ORDER - EXECUTE IMMEDIATELY*

%s %s %s

📋 Details:
• Client account: %s
• Type: Market
• Time in force: Day
• Origin: %s

⚠️ Confirm execution within 2 minutes.
`,
		brokerSide(o.Action),
		formatQuantity(o.Quantity),
		orDefault(o.Ticker, placeholderUnknown),
		orDefault(o.Account, placeholderNotInformed),
		origin,
	)
}

func brokerSide(action string) string {
	if strings.EqualFold(strings.TrimSpace(action), string(types.ActionBuy)) {
		return "BUY"
	}
	return "SELL"
}

func displayAction(action string) string {
	return strings.ToUpper(orDefault(action, placeholderUnknown))
}

func displayType(t string) string {
	return strings.ToUpper(orDefault(t, DefaultType))
}

func formatQuantity(q *float64) string {
	if q == nil {
		return placeholderNotInformed
	}
	return strconv.FormatFloat(*q, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

// boxField renders "  > LABEL: value" padded to the box width.
func boxField(label, value string) string {
	return boxLine("  > " + label + ": " + value)
}

// boxLine pads content to the inner box width by display cells, truncating
// overlong content.
func boxLine(content string) string {
	if runewidth.StringWidth(content) > boxWidth {
		content = runewidth.Truncate(content, boxWidth, "...")
	}
	return "║" + runewidth.FillRight(content, boxWidth) + "║\n"
}

func center(s string) string {
	w := runewidth.StringWidth(s)
	if w >= boxWidth {
		return s
	}
	return strings.Repeat(" ", (boxWidth-w)/2) + s
}
