package news

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"order-assistant/internal/logger"
	"order-assistant/internal/store"
	"order-assistant/internal/textutil"
	"order-assistant/internal/types"
)

const (
	ModeLive     = "LIVE"
	ModeFallback = "FALLBACK"

	marketCacheKey = "_market"
)

// ErrDisabled is returned when news lookups are switched off in config.
var ErrDisabled = errors.New("news lookups are disabled")

// searcher is the part of Scraper the service depends on.
type searcher interface {
	Search(ctx context.Context, query string, max int) ([]types.NewsItem, error)
}

// ServiceConfig configures the news service
type ServiceConfig struct {
	Enabled           bool
	Mode              string // LIVE scrapes, FALLBACK serves canned items only
	BaseURL           string
	MaxItems          int
	CacheDuration     time.Duration
	ScraperTimeout    time.Duration
	RequestsPerSecond float64
	MaxRetry          time.Duration // total time spent retrying a failed scrape
}

// DefaultServiceConfig returns default configuration
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfigFrom(store.DefaultConfig())
}

// ServiceConfigFrom maps the news section of the config file.
func ServiceConfigFrom(cfg *store.Config) ServiceConfig {
	n := cfg.News
	return ServiceConfig{
		Enabled:           n.Enabled,
		Mode:              strings.ToUpper(n.Mode),
		BaseURL:           n.BaseURL,
		MaxItems:          n.MaxItems,
		CacheDuration:     time.Duration(n.CacheMinutes) * time.Minute,
		ScraperTimeout:    time.Duration(n.TimeoutSeconds) * time.Second,
		RequestsPerSecond: n.RequestsPerSecond,
		MaxRetry:          time.Duration(n.MaxRetrySeconds) * time.Second,
	}
}

// Service fetches headlines for a ticker, caching results per ticker and
// degrading to simulated items when the live page yields nothing.
type Service struct {
	cfg     ServiceConfig
	search  searcher
	cache   *cache.Cache
	limiter *rate.Limiter
}

// NewService creates a news service backed by the colly scraper.
func NewService(cfg ServiceConfig) *Service {
	return newService(cfg, NewScraper(cfg.BaseURL, cfg.ScraperTimeout))
}

func newService(cfg ServiceConfig, s searcher) *Service {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 5
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeLive
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	ttl := cfg.CacheDuration
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &Service{
		cfg:     cfg,
		search:  s,
		cache:   cache.New(ttl, 10*time.Minute),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// FetchNews returns headlines for ticker, or market headlines when ticker is
// empty. Scrape failures are logged and answered with simulated items; only a
// disabled service or a cancelled context produce an error.
func (s *Service) FetchNews(ctx context.Context, ticker string) ([]types.NewsItem, error) {
	if !s.cfg.Enabled {
		return nil, ErrDisabled
	}

	ticker = normalizeTicker(ctx, ticker)
	key := ticker
	if key == "" {
		key = marketCacheKey
	}

	if cached, ok := s.cache.Get(key); ok {
		items := cached.([]types.NewsItem)
		logger.Debug(ctx, "Using cached news", "ticker", key, "items", len(items))
		return append([]types.NewsItem(nil), items...), nil
	}

	var items []types.NewsItem
	if s.cfg.Mode == ModeLive {
		live, err := s.fetchLive(ctx, BuildQuery(ticker))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn(ctx, "Live news unavailable, using fallback", "ticker", key, "error", err)
		}
		items = live
	}

	if len(items) > 0 {
		s.cache.SetDefault(key, items)
		return append([]types.NewsItem(nil), items...), nil
	}

	// simulated items are only cached when the network is off by config, so a
	// recovered page is picked up on the next call
	items = Fallback(ticker, min(s.cfg.MaxItems, 3))
	if s.cfg.Mode != ModeLive {
		s.cache.SetDefault(key, items)
	}
	return append([]types.NewsItem(nil), items...), nil
}

// fetchLive scrapes with the rate limiter in front and exponential backoff
// around each attempt.
func (s *Service) fetchLive(ctx context.Context, query string) ([]types.NewsItem, error) {
	timer := logger.StartOperation(ctx, "news.scrape", "query", query)
	ctx = timer.GetContext()

	var items []types.NewsItem

	var b backoff.BackOff = &backoff.StopBackOff{}
	if s.cfg.MaxRetry > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.MaxElapsedTime = s.cfg.MaxRetry
		b = eb
	}

	attempt := 0
	operation := func() error {
		attempt++
		if err := s.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		res, err := s.search.Search(ctx, query, s.cfg.MaxItems)
		if err != nil {
			logger.Debug(ctx, "News scrape attempt failed", "attempt", attempt, "error", err)
			return err
		}
		items = res
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		timer.EndWithError(err, "attempts", attempt)
		return nil, err
	}
	timer.End("attempts", attempt, "items", len(items))
	return items, nil
}

// ClearCache removes all cached headlines
func (s *Service) ClearCache() {
	s.cache.Flush()
}

// CachedTickers returns the tickers currently held in the cache
func (s *Service) CachedTickers() []string {
	entries := s.cache.Items()
	tickers := make([]string, 0, len(entries))
	for k := range entries {
		tickers = append(tickers, k)
	}
	return tickers
}

func normalizeTicker(ctx context.Context, ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return ""
	}
	if _, err := textutil.ValidateTicker(t); err != nil {
		logger.Debug(ctx, "Searching news for non-standard ticker", "ticker", t, "reason", err)
	}
	return t
}
