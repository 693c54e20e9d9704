package interfaces

import (
	"context"

	"order-assistant/internal/types"
)

// NewsFetcher returns recent headlines for a ticker. An empty ticker asks for
// general market news. The result may be empty.
type NewsFetcher interface {
	FetchNews(ctx context.Context, ticker string) ([]types.NewsItem, error)
}
