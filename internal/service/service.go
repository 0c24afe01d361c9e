// Package service orchestrates the extraction write path and the
// aggregated read path. It owns the error policy: per-line rejects are
// silent, an empty extraction is fatal, upstream failures propagate, and
// bunker data is never allowed to fail a response.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"freight-rate-watch/internal/alerting"
	"freight-rate-watch/internal/bunker"
	"freight-rate-watch/internal/config"
	"freight-rate-watch/internal/extract"
	"freight-rate-watch/internal/fetcher"
	"freight-rate-watch/internal/rates"
	"freight-rate-watch/internal/storage"
)

// Service wires fetchers, the extractor, persistence, and alerting.
type Service struct {
	bulletin    fetcher.BulletinFetcher
	bunkerFeed  fetcher.BunkerFetcher
	extractor   *extract.Extractor
	rateStore   storage.RateStore
	bunkerStore storage.BunkerStore
	notifier    alerting.Notifier
	logger      zerolog.Logger

	lookbackDays int
	maxRows      int
	bunkerLimit  int
}

// New constructs the pipeline service. rateStore may be nil for dry runs;
// bunkerFeed, bunkerStore, and notifier are all optional.
func New(cfg *config.Config, bulletin fetcher.BulletinFetcher, bunkerFeed fetcher.BunkerFetcher, extractor *extract.Extractor, rateStore storage.RateStore, bunkerStore storage.BunkerStore, notifier alerting.Notifier, logger zerolog.Logger) *Service {
	return &Service{
		bulletin:     bulletin,
		bunkerFeed:   bunkerFeed,
		extractor:    extractor,
		rateStore:    rateStore,
		bunkerStore:  bunkerStore,
		notifier:     notifier,
		logger:       logger.With().Str("component", "service").Logger(),
		lookbackDays: cfg.Rates.LookbackDays,
		maxRows:      cfg.Rates.MaxRows,
		bunkerLimit:  cfg.Rates.BunkerLimit,
	}
}

// ExtractionResult summarises one extraction run.
type ExtractionResult struct {
	Date     time.Time      `json:"date"`
	Inserted int            `json:"inserted"`
	Rates    []rates.Record `json:"rates"`
}

// RunExtraction fetches the bulletin, extracts records, tags them with the
// given day, and appends them to the store. The bunker leg is best-effort.
// Failures are alerted (when a notifier is configured) and returned; no
// retries happen here.
func (s *Service) RunExtraction(ctx context.Context, day time.Time) (ExtractionResult, error) {
	day = rates.Midnight(day)

	body, err := s.bulletin.FetchBulletin(ctx)
	if err != nil {
		return ExtractionResult{}, s.fail(ctx, day, "fetch", err)
	}

	records, err := s.extractor.ExtractRates(body)
	if err != nil {
		return ExtractionResult{}, s.fail(ctx, day, "extract", err)
	}
	for i := range records {
		records[i].ScrapedDate = day
	}

	inserted := 0
	if s.rateStore != nil {
		if err := s.rateStore.InsertRates(ctx, records); err != nil {
			return ExtractionResult{}, s.fail(ctx, day, "store", err)
		}
		inserted = len(records)
	} else {
		s.logger.Warn().Msg("rate store not configured; extraction not persisted")
	}

	s.storeBunker(ctx)

	s.logger.Info().
		Time("day", day).
		Int("records", len(records)).
		Int("inserted", inserted).
		Msg("extraction run complete")

	return ExtractionResult{Date: day, Inserted: inserted, Rates: records}, nil
}

// storeBunker runs the secondary bunker leg; failure never fails the run.
func (s *Service) storeBunker(ctx context.Context) {
	if s.bunkerFeed == nil {
		return
	}
	prices, err := s.bunkerFeed.FetchBunker(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("bunker fetch failed; continuing without bunker data")
		return
	}
	if s.bunkerStore == nil || len(prices) == 0 {
		return
	}
	if err := s.bunkerStore.InsertBunker(ctx, prices); err != nil {
		s.logger.Warn().Err(err).Msg("bunker insert failed; continuing")
	}
}

func (s *Service) fail(ctx context.Context, day time.Time, stage string, err error) error {
	wrapped := fmt.Errorf("%s: %w", stage, err)
	if s.notifier != nil {
		if notifyErr := s.notifier.Notify(ctx, alerting.Failure{Day: day, Stage: stage, Err: err}); notifyErr != nil {
			s.logger.Error().Err(notifyErr).Msg("failed to dispatch failure alert")
		}
	}
	return wrapped
}

// View is the read-side response: freshness-scored best rates per route
// plus the latest bunker quote per hub.
type View struct {
	Success   bool                    `json:"success"`
	Count     int                     `json:"count"`
	FetchedAt time.Time               `json:"fetchedAt"`
	Rates     []rates.AggregatedRate  `json:"rates"`
	Bunker    map[string]bunker.Quote `json:"bunker"`
}

// RatesView loads the lookback window and aggregates it as of asOf. The
// rate and bunker scans run concurrently; a bunker failure degrades to an
// empty map and never fails the response.
func (s *Service) RatesView(ctx context.Context, asOf time.Time) (View, error) {
	if s.rateStore == nil {
		return View{}, storage.ErrNotConfigured
	}

	since := rates.Midnight(asOf).AddDate(0, 0, -s.lookbackDays)

	var (
		records []rates.Record
		prices  []bunker.Price
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.rateStore.ListRatesSince(gctx, since, s.maxRows)
		if err != nil {
			return fmt.Errorf("list rates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if s.bunkerStore == nil {
			return nil
		}
		rows, err := s.bunkerStore.ListRecentBunker(gctx, s.bunkerLimit)
		if err != nil {
			// Non-fatal by contract; the rate leg must not be cancelled.
			s.logger.Warn().Err(err).Msg("bunker query failed; degrading to empty bunker data")
			return nil
		}
		prices = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	aggregated := rates.Aggregate(records, asOf)
	if aggregated == nil {
		aggregated = []rates.AggregatedRate{}
	}

	return View{
		Success:   true,
		Count:     len(aggregated),
		FetchedAt: time.Now().UTC(),
		Rates:     aggregated,
		Bunker:    bunker.Latest(prices, asOf),
	}, nil
}
