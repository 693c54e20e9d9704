package news

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"order-assistant/internal/logger"
	"order-assistant/internal/types"
)

const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	unknownSource  = "Unknown source"
	unknownTime    = "Some time ago"
	headlineSource = "Google News"
	headlineTime   = "Recent"
)

var wordStart = regexp.MustCompile(`^\w`)

// Scraper reads a Google News style search page.
type Scraper struct {
	baseURL string
	timeout time.Duration
}

// NewScraper creates a scraper rooted at baseURL.
func NewScraper(baseURL string, timeout time.Duration) *Scraper {
	return &Scraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// SearchURL is the page visited for query.
func (s *Scraper) SearchURL(query string) string {
	return fmt.Sprintf("%s/search?q=%s&hl=pt-BR&gl=BR&ceid=BR:pt-419", s.baseURL, url.QueryEscape(query))
}

// Search fetches the results page for query and extracts up to max headlines.
func (s *Scraper) Search(ctx context.Context, query string, max int) ([]types.NewsItem, error) {
	var items []types.NewsItem

	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.baseURL)),
		colly.MaxDepth(1),
		colly.Async(false),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
		r.Headers.Set("Accept-Language", "pt-BR,pt;q=0.9")
	})

	c.OnHTML("html", func(e *colly.HTMLElement) {
		items = parseResults(e.DOM, s.baseURL, query, max)
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "url", r.Request.URL.String(), "status", r.StatusCode)
	})

	searchURL := s.SearchURL(query)
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", searchURL, err)
	}
	c.Wait()

	logger.Debug(ctx, "News page scraped", "query", query, "items", len(items))
	return items, nil
}

// parseResults prefers <article> blocks and falls back to bare <h3> headlines
// wrapped in links when the page has none.
func parseResults(doc *goquery.Selection, baseURL, query string, max int) []types.NewsItem {
	items := []types.NewsItem{}
	if max <= 0 {
		return items
	}

	doc.Find("article").EachWithBreak(func(_ int, art *goquery.Selection) bool {
		link := art.Find("a[href]").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			title = strings.TrimSpace(art.Find("h3, h4").First().Text())
		}
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return true
		}

		source := strings.TrimSpace(art.Find("div").FilterFunction(func(_ int, d *goquery.Selection) bool {
			return d.Children().Length() == 0 && wordStart.MatchString(strings.TrimSpace(d.Text()))
		}).First().Text())
		if source == "" {
			source = unknownSource
		}
		when := strings.TrimSpace(art.Find("time").First().Text())
		if when == "" {
			when = unknownTime
		}

		items = append(items, types.NewsItem{
			Title:        title,
			Link:         resolveLink(baseURL, href),
			Source:       source,
			RelativeTime: when,
			Query:        query,
		})
		return len(items) < max
	})
	if len(items) > 0 {
		return items
	}

	doc.Find("h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		title := strings.TrimSpace(h.Text())
		a := h.Closest("a[href]")
		if a.Length() == 0 {
			a = h.Find("a[href]").First()
		}
		href, _ := a.Attr("href")
		if title == "" || href == "" {
			return true
		}
		items = append(items, types.NewsItem{
			Title:        title,
			Link:         resolveLink(baseURL, href),
			Source:       headlineSource,
			RelativeTime: headlineTime,
			Query:        query,
		})
		return len(items) < max
	})
	return items
}

func resolveLink(baseURL, href string) string {
	switch {
	case strings.HasPrefix(href, "./"):
		return baseURL + href[1:]
	case strings.HasPrefix(href, "/"):
		return baseURL + href
	default:
		return href
	}
}

// getDomain extracts domain from URL
func getDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
