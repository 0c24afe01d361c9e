package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"
)

// Show prints the current aggregated view: the best known rate per route
// with its freshness score, plus the latest bunker quote per hub.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot show rates")
	}
	if closeStore != nil {
		defer closeStore()
	}

	svc := a.newService(store, nil, nil)
	view, err := svc.RatesView(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if view.Count == 0 {
		fmt.Fprintln(os.Stdout, "no rates found")
		return nil
	}

	shown := view.Rates
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Vessel\tOrigin\tDestination\tUSD/day\tScraped\tAge\tTier\tConfidence")
	for _, r := range shown {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%dd\t%d\t%d\n",
			r.VesselType,
			r.OriginRegion,
			r.DestinationRegion,
			r.Rate,
			r.ScrapedDate.Format("2006-01-02"),
			r.DaysOld,
			r.Tier,
			r.Confidence,
		)
	}
	writer.Flush()

	if len(view.Bunker) > 0 {
		hubs := make([]string, 0, len(view.Bunker))
		for hub := range view.Bunker {
			hubs = append(hubs, hub)
		}
		sort.Strings(hubs)

		fmt.Fprintln(os.Stdout)
		bw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(bw, "Hub\tVLSFO\tMGO\tAge")
		for _, hub := range hubs {
			q := view.Bunker[hub]
			fmt.Fprintf(bw, "%s\t%s\t%s\t%dd\n", hub, q.VLSFO.StringFixed(2), q.MGO.StringFixed(2), q.DaysOld)
		}
		bw.Flush()
	}
	return nil
}
