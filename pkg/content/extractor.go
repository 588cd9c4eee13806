// Package content pulls readable article text out of news pages. Extraction
// is layered: structured article markup is preferred, with progressively
// looser fallbacks for sites that lack it. Failures degrade to a diagnostic
// result instead of an error so callers can always show something.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/homedeck/homedeck/pkg/metrics"
)

// diagnostic reasons for degraded results
const (
	reasonGoogleBlocked = "Content extraction failed. Google News often blocks full-text extraction tools. Use the article link to read the original."
	reasonNoContent     = "Could not extract text content. Site structure might be complex."
)

// redirectRe matches the script-based redirect interstitial some aggregators
// serve instead of the article
var redirectRe = regexp.MustCompile(`window\.location\.replace\("(.+?)"\)`)

// escapedEquals decodes the escape sequences aggregators use inside redirect
// target URLs
var escapedEquals = strings.NewReplacer(`\u003d`, "=", `\x3d`, "=")

// Result is the outcome of one extraction. Text carries the article body on
// success. Degraded marks a diagnostic outcome and Reason says why, callers
// never see an error.
type Result struct {
	Text     string
	Degraded bool
	Reason   string
}

// Extractor fetches article pages and extracts their main text
type Extractor struct {
	client       *http.Client
	tracker      *metrics.Tracker
	minParagraph int
}

// page is one fetched and decoded article page
type page struct {
	doc  *goquery.Document
	body string
	url  string
}

// NewExtractor creates a content extractor. The timeout applies per fetch,
// minParagraph bounds the paragraph fallback, the tracker may be nil.
func NewExtractor(timeout time.Duration, minParagraph int, tracker *metrics.Tracker) *Extractor {
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
		},
		tracker:      tracker,
		minParagraph: minParagraph,
	}
}

// Extract retrieves pageURL and returns its article text, following one
// redirect interstitial if needed
func (e *Extractor) Extract(ctx context.Context, pageURL string) Result {
	pg, err := e.fetchPage(ctx, pageURL)
	if err != nil {
		lgr.Printf("[WARN] extraction fetch failed for %s: %v", pageURL, err)
		return Result{Degraded: true, Reason: fmt.Sprintf("error fetching content: %v", err)}
	}

	// aggregator links hide the article behind a redirect page
	if isGoogleNews(pageURL) || isGoogleNews(pg.url) {
		if target := redirectTarget(pg); target != "" {
			lgr.Printf("[INFO] following redirect to %s", target)
			redirected, rerr := e.fetchPage(ctx, target)
			if rerr != nil {
				lgr.Printf("[WARN] redirect fetch failed for %s: %v", target, rerr)
				return Result{Degraded: true, Reason: fmt.Sprintf("error fetching content: %v", rerr)}
			}
			pg = redirected
		}
	}

	text := e.extractText(pg.doc)
	if text == "" {
		if isGoogleNews(pageURL) {
			return Result{Degraded: true, Reason: reasonGoogleBlocked}
		}
		return Result{Degraded: true, Reason: reasonNoContent}
	}

	return Result{Text: text}
}

// extractText runs the strategy cascade over a parsed page
func (e *Extractor) extractText(doc *goquery.Document) string {
	// boilerplate elements only pollute the text
	doc.Find("script, style, nav, header, footer").Remove()

	// structured article body markup is the most reliable signal
	if sel := doc.Find(`[itemprop="articleBody"]`).First(); sel.Length() > 0 {
		return blockText(sel)
	}

	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return blockText(sel)
	}

	// container classes used by the Korean news sites the default sources cover
	var parts []string
	doc.Find("div.art_txt, div.view_txt, div.news_view").Each(func(_ int, sel *goquery.Selection) {
		if t := blockText(sel); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, "\n\n")
	}

	// last resort, keep paragraphs long enough to be prose
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		t := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(t) > e.minParagraph {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n\n")
}

// fetchPage retrieves and decodes one page
func (e *Extractor) fetchPage(ctx context.Context, pageURL string) (*page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, pageURL)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	e.tracker.AddRx(int64(len(raw)))

	// Korean news sites still serve EUC-KR, decode before parsing
	decoded := raw
	if reader, cerr := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type")); cerr == nil {
		if converted, rerr := io.ReadAll(reader); rerr == nil {
			decoded = converted
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &page{doc: doc, body: string(decoded), url: finalURL}, nil
}

// redirectTarget finds where an interstitial page wants to send the browser.
// It tries the script-based redirect first, then a bare page with a single
// usable anchor.
func redirectTarget(pg *page) string {
	if m := redirectRe.FindStringSubmatch(pg.body); len(m) == 2 {
		return escapedEquals.Replace(m[1])
	}

	links := pg.doc.Find("a")
	if links.Length() > 0 && links.Length() < 5 {
		if href, ok := links.First().Attr("href"); ok && strings.HasPrefix(href, "http") {
			return href
		}
	}
	return ""
}

// blockText linearizes the selection's text nodes, one line per node
func blockText(sel *goquery.Selection) string {
	var lines []string
	for _, node := range sel.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*lines = append(*lines, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}

func isGoogleNews(u string) bool {
	return strings.Contains(u, "news.google.com")
}
