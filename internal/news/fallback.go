package news

import (
	"fmt"
	"strings"

	"order-assistant/internal/types"
)

const (
	simulatedSource = "Simulated for development"
	marketLabel     = "MARKET"
)

// Fallback returns canned headlines for ticker so the assistant still answers
// when scraping is disabled or the page cannot be read. Every item is flagged
// as simulated.
func Fallback(ticker string, max int) []types.NewsItem {
	label := strings.ToUpper(ticker)
	if label == "" {
		label = marketLabel
	}
	slug := strings.ToLower(label)
	query := BuildQuery(ticker)

	items := []types.NewsItem{
		{
			Title:        fmt.Sprintf("%s quarterly results beat market expectations", label),
			Link:         fmt.Sprintf("https://example.com/news/%s-results", slug),
			RelativeTime: "Today",
		},
		{
			Title:        fmt.Sprintf("Analysts recommend buying %s with 15%% higher price target", label),
			Link:         fmt.Sprintf("https://example.com/news/%s-analysts", slug),
			RelativeTime: "Yesterday",
		},
		{
			Title:        fmt.Sprintf("%s announces dividend payment above sector average", label),
			Link:         fmt.Sprintf("https://example.com/news/%s-dividends", slug),
			RelativeTime: "2 days ago",
		},
	}
	for i := range items {
		items[i].Source = simulatedSource
		items[i].Simulated = true
		items[i].Query = query
	}

	if max > 0 && max < len(items) {
		items = items[:max]
	}
	return items
}
