// Package fetcher provides the HTTP clients for the bulletin page and the
// bunker price feed. Neither client retries; resilience belongs to the
// caller's scheduler.
package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const defaultUserAgent = "freightwatch/1.0 (freight rate bulletin monitor)"

// BulletinOptions parameterise the bulletin page fetcher.
type BulletinOptions struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Bulletin fetches the public freight-rate bulletin page.
type Bulletin struct {
	opts   BulletinOptions
	logger zerolog.Logger
	client *http.Client
}

// NewBulletin constructs a bulletin fetcher.
func NewBulletin(opts BulletinOptions, logger zerolog.Logger) *Bulletin {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Bulletin{
		opts:   opts,
		logger: logger.With().Str("component", "bulletin_fetcher").Logger(),
		client: &http.Client{Timeout: timeout},
	}
}

// FetchBulletin retrieves the page body and reduces any HTML markup to
// line-oriented text for the extractor. Any non-2xx status is a hard
// failure carrying the upstream status and body excerpt.
func (b *Bulletin) FetchBulletin(ctx context.Context) (string, error) {
	if b.opts.URL == "" {
		return "", errors.New("bulletin url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.opts.URL, nil)
	if err != nil {
		return "", err
	}
	ua := strings.TrimSpace(b.opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,text/plain")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newStatusError(resp.StatusCode, body)
	}

	text := pageText(string(body))
	b.logger.Debug().Int("bytes", len(body)).Msg("bulletin page fetched")
	return text, nil
}

// pageText flattens an HTML body into one text line per block element.
// Plain-text bodies pass through unchanged.
func pageText(body string) string {
	if !strings.Contains(body, "<") {
		return body
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return body
	}

	var lines []string
	doc.Find("li, p, h1, h2, h3, td").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}

var _ BulletinFetcher = (*Bulletin)(nil)
