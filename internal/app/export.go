package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"freight-rate-watch/internal/rates"
	"freight-rate-watch/internal/vocab"
)

// Export renders one route's rate history as CSV and/or a PNG chart.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	vessel, ok := vocab.ResolveVessel(opts.Vessel)
	if !ok {
		return fmt.Errorf("unrecognized vessel class %q", opts.Vessel)
	}
	origin, ok := vocab.ResolveRegion(opts.Origin)
	if !ok {
		return fmt.Errorf("unrecognized origin region %q", opts.Origin)
	}
	dest, ok := vocab.ResolveRegion(opts.Dest)
	if !ok {
		return fmt.Errorf("unrecognized destination region %q", opts.Dest)
	}

	opts.MaxPoints = a.Config.ResolveMaxPoints(opts.MaxPoints)
	days := opts.Days
	if days <= 0 {
		days = a.Config.Rates.LookbackDays
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot export")
	}
	if closeStore != nil {
		defer closeStore()
	}

	since := rates.Midnight(time.Now()).AddDate(0, 0, -days)
	all, err := store.ListRatesSince(ctx, since, a.Config.Rates.MaxRows)
	if err != nil {
		return err
	}

	key := rates.RouteKey{Vessel: vessel, Origin: origin, Destination: dest}
	var history []rates.Record
	for _, rec := range all {
		if rec.Key() == key {
			history = append(history, rec)
		}
	}
	if len(history) == 0 {
		a.Logger.Info().Msg("no records found for route in export window")
		return nil
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].ScrapedDate.Before(history[j].ScrapedDate)
	})
	history = downsample(history, opts.MaxPoints)

	a.Logger.Info().
		Str("vessel", string(vessel)).
		Str("origin", string(origin)).
		Str("destination", string(dest)).
		Int("points", len(history)).
		Msg("exporting route history")

	if opts.CSVPath != "" {
		if err := writeHistoryCSV(opts.CSVPath, history); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := writeHistoryPNG(opts.PNGPath, key, history); err != nil {
			return err
		}
	}
	return nil
}

func downsample(records []rates.Record, max int) []rates.Record {
	if max <= 0 || len(records) <= max {
		return records
	}
	result := make([]rates.Record, 0, max)
	step := float64(len(records)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= len(records) {
			idx = len(records) - 1
		}
		result = append(result, records[idx])
	}
	return result
}

func writeHistoryCSV(path string, records []rates.Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"scraped_date", "vessel_type", "origin_region", "destination_region", "rate_usd_day", "raw_line"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.ScrapedDate.Format("2006-01-02"),
			string(rec.VesselType),
			string(rec.OriginRegion),
			string(rec.DestinationRegion),
			strconv.Itoa(rec.Rate),
			rec.RawLine,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}

func writeHistoryPNG(path string, key rates.RouteKey, records []rates.Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	x := make([]time.Time, len(records))
	y := make([]float64, len(records))
	for i, rec := range records {
		x[i] = rec.ScrapedDate
		y[i] = float64(rec.Rate)
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "USD/day",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.0f")
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    fmt.Sprintf("%s %s to %s", key.Vessel, key.Origin, key.Destination),
				XValues: x,
				YValues: y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
