package newsobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"order-assistant/internal/interfaces"
	"order-assistant/internal/logger"
	"order-assistant/internal/trace"
	"order-assistant/internal/types"
)

// observableFetcher wraps a NewsFetcher with observability (logging & tracing)
type observableFetcher struct {
	fetcher interfaces.NewsFetcher
}

// Compile-time interface check
var _ interfaces.NewsFetcher = (*observableFetcher)(nil)

// Wrap wraps a news fetcher with observability middleware
func Wrap(fetcher interfaces.NewsFetcher) interfaces.NewsFetcher {
	return &observableFetcher{
		fetcher: fetcher,
	}
}

func (of *observableFetcher) FetchNews(ctx context.Context, ticker string) ([]types.NewsItem, error) {
	ctx, span := trace.StartSpan(ctx, "news.FetchNews")
	defer span.End()
	span.SetAttributes(attribute.String("ticker", ticker))

	start := time.Now()
	logger.DebugSkip(ctx, 1, "Fetching news", "ticker", ticker)

	items, err := of.fetcher.FetchNews(ctx, ticker)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "News fetch failed", err,
			"ticker", ticker,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	simulated := 0
	for _, it := range items {
		if it.Simulated {
			simulated++
		}
	}
	span.SetAttributes(attribute.Int("items", len(items)), attribute.Int("simulated", simulated))

	logger.InfoSkip(ctx, 1, "News fetched",
		"ticker", ticker,
		"items", len(items),
		"simulated", simulated,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}
