package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"freight-rate-watch/internal/bunker"
	"freight-rate-watch/internal/rates"
)

// BunkerOptions parameterise the bunker price fetcher.
type BunkerOptions struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Bunker fetches per-hub fuel prices from a JSON quote endpoint.
type Bunker struct {
	opts   BunkerOptions
	logger zerolog.Logger
	client *http.Client
}

// NewBunker constructs a bunker price fetcher.
func NewBunker(opts BunkerOptions, logger zerolog.Logger) *Bunker {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Bunker{
		opts:   opts,
		logger: logger.With().Str("component", "bunker_fetcher").Logger(),
		client: &http.Client{Timeout: timeout},
	}
}

type bunkerResponse struct {
	Prices []struct {
		Hub   string          `json:"hub"`
		VLSFO decimal.Decimal `json:"vlsfo"`
		MGO   decimal.Decimal `json:"mgo"`
		Date  string          `json:"date"`
	} `json:"prices"`
}

// FetchBunker retrieves current hub prices. Callers treat any failure here
// as non-fatal and degrade to empty bunker data.
func (b *Bunker) FetchBunker(ctx context.Context) ([]bunker.Price, error) {
	if b.opts.URL == "" {
		return nil, errors.New("bunker url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.opts.URL, nil)
	if err != nil {
		return nil, err
	}
	ua := strings.TrimSpace(b.opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp.StatusCode, body)
	}

	var payload bunkerResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode bunker payload: %w", err)
	}

	prices := make([]bunker.Price, 0, len(payload.Prices))
	for _, p := range payload.Prices {
		if p.Hub == "" {
			continue
		}
		scraped := rates.Midnight(time.Now())
		if p.Date != "" {
			parsed, parseErr := time.Parse("2006-01-02", p.Date)
			if parseErr != nil {
				b.logger.Debug().Str("hub", p.Hub).Str("date", p.Date).Msg("skipping price with bad date")
				continue
			}
			scraped = parsed
		}
		prices = append(prices, bunker.Price{
			Hub:         strings.ToUpper(p.Hub),
			VLSFO:       p.VLSFO,
			MGO:         p.MGO,
			ScrapedDate: scraped,
		})
	}
	return prices, nil
}

var _ BunkerFetcher = (*Bunker)(nil)
