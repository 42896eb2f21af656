package parser

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
	"github.com/yoshi-675/sl-political-war-tracker/internal/scanner"
)

const (
	// Candidates per source; also the snapshot sample size.
	maxCandidates = 15

	minTitleLen = 20
	maxTitleLen = 200

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Class tokens that commonly mark a news item across the configured sites.
var itemClassExpr = regexp.MustCompile(`news|story|item|headline`)

// HeadlineScanner extracts headline candidates from generic news listing
// pages: elements whose class suggests a news item, titled by their first
// heading or link.
type HeadlineScanner struct {
	client    *http.Client
	userAgent string
	now       func() time.Time
}

// NewHeadlineScanner wires an HTTP client; the client defaults to a 30s
// timeout and the user agent to a desktop browser string.
func NewHeadlineScanner(client *http.Client, userAgent string) *HeadlineScanner {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HeadlineScanner{client: client, userAgent: userAgent, now: time.Now}
}

// Name identifies the strategy inside the registry.
func (h *HeadlineScanner) Name() string {
	return "headline"
}

// Scan fetches the source page and extracts its headline candidates.
func (h *HeadlineScanner) Scan(ctx context.Context, src scanner.Source) ([]domain.Article, error) {
	doc, err := h.fetchDocument(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src.ID, err)
	}

	return h.extractArticles(doc, src.ID), nil
}

func (h *HeadlineScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractArticles walks item-like elements in document order, capped at the
// first maxCandidates matches. A candidate is kept only when its title text
// is strictly between minTitleLen and maxTitleLen characters; its URL is the
// first anchor's href, or empty.
func (h *HeadlineScanner) extractArticles(doc *goquery.Document, sourceID string) []domain.Article {
	fetchedAt := h.now()
	articles := make([]domain.Article, 0, maxCandidates)

	candidates := 0
	doc.Find("article, div, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !hasItemClass(sel) {
			return true
		}
		candidates++

		title := strings.TrimSpace(sel.Find("h1, h2, h3, h4, a").First().Text())
		if length := utf8.RuneCountInString(title); length > minTitleLen && length < maxTitleLen {
			href, _ := sel.Find("a").First().Attr("href")
			articles = append(articles, domain.Article{
				Title:     title,
				Source:    sourceID,
				URL:       href,
				FetchedAt: fetchedAt,
			})
		}

		return candidates < maxCandidates
	})

	return articles
}

func hasItemClass(sel *goquery.Selection) bool {
	class, ok := sel.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(class) {
		if itemClassExpr.MatchString(strings.ToLower(token)) {
			return true
		}
	}
	return false
}
