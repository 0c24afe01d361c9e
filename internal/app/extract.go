package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"freight-rate-watch/internal/extract"
	"freight-rate-watch/internal/fetcher"
	"freight-rate-watch/internal/rates"
	"freight-rate-watch/internal/storage"
)

// Extract performs one extraction run outside the scheduler: against the
// live page or a saved file, optionally without touching storage.
func (a *App) Extract(ctx context.Context, opts ExtractOptions) error {
	day := rates.Midnight(time.Now())
	if opts.Date != "" {
		parsed, err := time.Parse("2006-01-02", opts.Date)
		if err != nil {
			return fmt.Errorf("invalid --date value: %w", err)
		}
		day = parsed
	}

	var bulletin fetcher.BulletinFetcher
	if opts.File != "" {
		bulletin = fetcher.NewFile(opts.File)
	} else {
		bulletin = a.newBulletinFetcher()
	}

	var store *storage.Store
	if !opts.DryRun {
		opened, closeStore, err := a.openStore(ctx)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		store = opened
	}

	svc := a.newService(store, bulletin, nil)
	result, err := svc.RunExtraction(ctx, day)
	if err != nil {
		return err
	}

	if opts.DryRun {
		fmt.Fprintf(os.Stdout, "dry-run: %d records extracted for %s (not persisted)\n", len(result.Rates), result.Date.Format("2006-01-02"))
	} else {
		fmt.Fprintf(os.Stdout, "%d records inserted for %s\n", result.Inserted, result.Date.Format("2006-01-02"))
	}
	for _, rec := range result.Rates {
		fmt.Fprintf(os.Stdout, "  %-9s %-12s -> %-12s $%d/day\n", rec.VesselType, rec.OriginRegion, rec.DestinationRegion, rec.Rate)
	}
	return nil
}

// Parse feeds a single bulletin line through the parser and prints the
// record, for debugging source wording drift.
func (a *App) Parse(line string) error {
	parser := extract.NewParser(a.Config.Rates.MinRate, a.Config.Rates.MaxRate)
	rec, ok := parser.ParseLine(line)
	if !ok {
		return fmt.Errorf("line did not parse: %q", line)
	}
	encoded, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}
