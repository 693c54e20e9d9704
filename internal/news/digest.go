package news

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"order-assistant/internal/types"
)

const (
	// DefaultTitleBudget is the widest title shown in a digest.
	DefaultTitleBudget = 80
	digestItems        = 5
	linkBudget         = 50
)

var rankMarkers = []string{"🟢", "🔵"}

// FormatDigest renders up to five items as a chat-style summary.
func FormatDigest(items []types.NewsItem, ticker string, titleBudget int) string {
	label := strings.ToUpper(strings.TrimSpace(ticker))
	if label == "" {
		label = marketLabel
	}
	if len(items) == 0 {
		return fmt.Sprintf("📭 No recent news found for %s.", label)
	}
	if titleBudget < 4 {
		titleBudget = DefaultTitleBudget
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📰 *LATEST NEWS - %s*\n\n", label)

	for i, item := range items[:min(len(items), digestItems)] {
		marker := "⚪"
		if i < len(rankMarkers) {
			marker = rankMarkers[i]
		}
		fmt.Fprintf(&b, "%s *%s*\n", marker, truncate(item.Title, titleBudget))
		if item.Source != "" && item.RelativeTime != "" {
			fmt.Fprintf(&b, "   ⏳ %s | 📰 %s\n", item.RelativeTime, item.Source)
		}
		if item.Link != "" {
			link := item.Link
			if utf8.RuneCountInString(link) > linkBudget {
				link = string([]rune(link)[:linkBudget]) + "..."
			}
			fmt.Fprintf(&b, "   🔗 %s\n", link)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "📊 *Total:* %d news items found\n", len(items))
	if anySimulated(items) {
		b.WriteString("⚠️ *Note:* Simulated headlines, live news was unavailable.")
	} else {
		b.WriteString("⚠️ *Note:* For educational use. Use official APIs in production.")
	}
	return b.String()
}

// truncate keeps s within budget runes, ending in "..." when cut.
func truncate(s string, budget int) string {
	if utf8.RuneCountInString(s) <= budget {
		return s
	}
	return string([]rune(s)[:budget-3]) + "..."
}

func anySimulated(items []types.NewsItem) bool {
	for _, it := range items {
		if it.Simulated {
			return true
		}
	}
	return false
}
