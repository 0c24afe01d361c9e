package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"freight-rate-watch/internal/bunker"
	"freight-rate-watch/internal/rates"
	"freight-rate-watch/internal/vocab"
)

// ErrNotConfigured indicates the storage pool was not initialised.
var ErrNotConfigured = errors.New("storage: pool not configured")

const (
	insertRateSQL = `INSERT INTO rate_snapshots (
        vessel_type,
        origin_region,
        origin_text,
        destination_region,
        destination_text,
        rate_usd_day,
        scraped_date,
        raw_line
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`

	listRatesSinceSQL = `SELECT
        vessel_type,
        origin_region,
        origin_text,
        destination_region,
        destination_text,
        rate_usd_day,
        scraped_date,
        raw_line
    FROM rate_snapshots
    WHERE scraped_date >= $1
    ORDER BY scraped_date DESC, id DESC
    LIMIT $2;`

	insertBunkerSQL = `INSERT INTO bunker_prices (
        hub,
        vlsfo_usd_mt,
        mgo_usd_mt,
        scraped_date
    ) VALUES ($1,$2,$3,$4);`

	listRecentBunkerSQL = `SELECT
        hub,
        vlsfo_usd_mt,
        mgo_usd_mt,
        scraped_date
    FROM bunker_prices
    ORDER BY scraped_date DESC, id DESC
    LIMIT $1;`
)

// RateStore defines the rate snapshot persistence operations. Uniqueness
// is not enforced at write time; the read path collapses duplicates.
type RateStore interface {
	InsertRates(ctx context.Context, rows []rates.Record) error
	ListRatesSince(ctx context.Context, since time.Time, limit int) ([]rates.Record, error)
}

// BunkerStore defines the bunker price persistence operations.
type BunkerStore interface {
	InsertBunker(ctx context.Context, prices []bunker.Price) error
	ListRecentBunker(ctx context.Context, limit int) ([]bunker.Price, error)
}

// Store aggregates access to rate snapshots and bunker prices.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// InsertRates appends a batch of dated records as one logical write: all
// rows commit or none do.
func (s *Store) InsertRates(ctx context.Context, rows []rates.Record) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin rate insert: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(insertRateSQL,
			string(row.VesselType),
			string(row.OriginRegion),
			row.OriginText,
			string(row.DestinationRegion),
			row.DestinationText,
			row.Rate,
			row.ScrapedDate,
			row.RawLine,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range rows {
		if _, execErr := results.Exec(); execErr != nil {
			_ = results.Close()
			return fmt.Errorf("insert rate snapshot: %w", execErr)
		}
	}
	if closeErr := results.Close(); closeErr != nil {
		return fmt.Errorf("close rate insert batch: %w", closeErr)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("commit rate insert: %w", commitErr)
	}
	return nil
}

// ListRatesSince returns snapshots scraped on or after since, newest
// first, capped at limit. No vessel or region filtering is pushed down;
// the aggregation layer does that in memory.
func (s *Store) ListRatesSince(ctx context.Context, since time.Time, limit int) ([]rates.Record, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listRatesSinceSQL, since, limit)
	if queryErr != nil {
		return nil, fmt.Errorf("list rates since: %w", queryErr)
	}
	defer rows.Close()

	records := make([]rates.Record, 0, limit)
	for rows.Next() {
		var (
			rec                  rates.Record
			vessel, origin, dest string
		)
		if err := rows.Scan(
			&vessel,
			&origin,
			&rec.OriginText,
			&dest,
			&rec.DestinationText,
			&rec.Rate,
			&rec.ScrapedDate,
			&rec.RawLine,
		); err != nil {
			return nil, err
		}
		rec.VesselType = vocab.VesselType(vessel)
		rec.OriginRegion = vocab.RegionCode(origin)
		rec.DestinationRegion = vocab.RegionCode(dest)
		rec.ScrapedDate = rates.Midnight(rec.ScrapedDate)
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// InsertBunker appends bunker price rows.
func (s *Store) InsertBunker(ctx context.Context, prices []bunker.Price) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}
	for _, p := range prices {
		if _, execErr := pool.Exec(ctx, insertBunkerSQL,
			p.Hub,
			p.VLSFO.String(),
			p.MGO.String(),
			p.ScrapedDate,
		); execErr != nil {
			return fmt.Errorf("insert bunker price: %w", execErr)
		}
	}
	return nil
}

// ListRecentBunker returns the most recent bunker rows, newest first.
func (s *Store) ListRecentBunker(ctx context.Context, limit int) ([]bunker.Price, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listRecentBunkerSQL, limit)
	if queryErr != nil {
		return nil, fmt.Errorf("list recent bunker: %w", queryErr)
	}
	defer rows.Close()

	prices := make([]bunker.Price, 0, limit)
	for rows.Next() {
		var (
			p                bunker.Price
			vlsfoStr, mgoStr string
		)
		if err := rows.Scan(&p.Hub, &vlsfoStr, &mgoStr, &p.ScrapedDate); err != nil {
			return nil, err
		}
		var convErr error
		p.VLSFO, convErr = decimal.NewFromString(vlsfoStr)
		if convErr != nil {
			return nil, fmt.Errorf("parse vlsfo price: %w", convErr)
		}
		p.MGO, convErr = decimal.NewFromString(mgoStr)
		if convErr != nil {
			return nil, fmt.Errorf("parse mgo price: %w", convErr)
		}
		p.ScrapedDate = rates.Midnight(p.ScrapedDate)
		prices = append(prices, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return prices, nil
}
