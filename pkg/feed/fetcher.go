package feed

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/homedeck/homedeck/pkg/domain"
	"github.com/homedeck/homedeck/pkg/metrics"
)

// HTTPFetcher fetches RSS/Atom feeds via HTTP and converts entries to reader
// items. Responses are read fully before parsing so received bytes can be
// counted against the usage tracker.
type HTTPFetcher struct {
	client   *http.Client
	tracker  *metrics.Tracker
	sanitize *bluemonday.Policy
	maxItems int
	nowFn    func() time.Time
}

// NewHTTPFetcher creates a new feed fetcher. The tracker may be nil.
func NewHTTPFetcher(timeout time.Duration, maxItems int, tracker *metrics.Tracker) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tracker:  tracker,
		sanitize: bluemonday.StrictPolicy(),
		maxItems: maxItems,
		nowFn:    time.Now,
	}
}

// Fetch retrieves the source's feed and returns up to the configured number
// of most recent entries
func (f *HTTPFetcher) Fetch(ctx context.Context, src Source) ([]domain.FeedItem, error) {
	data, err := f.fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", src.Name, err)
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	entries := parsed.Items
	if f.maxItems > 0 && len(entries) > f.maxItems {
		entries = entries[:f.maxItems]
	}

	items := make([]domain.FeedItem, 0, len(entries))
	for _, entry := range entries {
		item := domain.FeedItem{
			Title:     f.cleanText(entry.Title),
			Link:      strings.TrimSpace(entry.Link),
			Published: strings.TrimSpace(entry.Published),
			Source:    src.Name,
		}
		if item.Published == "" {
			item.Published = f.nowFn().Format("2006-01-02 15:04:05")
		}
		items = append(items, item)
	}

	return items, nil
}

// fetch retrieves the raw feed body and meters it
func (f *HTTPFetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	f.tracker.AddRx(int64(len(data)))

	return data, nil
}

// cleanText strips markup feeds occasionally embed in titles
func (f *HTTPFetcher) cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(f.sanitize.Sanitize(s)))
}
