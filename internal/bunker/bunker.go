// Package bunker models marine fuel prices per bunkering hub. Bunker data
// rides alongside the charter-rate view and is always non-fatal: callers
// degrade to an empty map when it cannot be obtained.
package bunker

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"freight-rate-watch/internal/rates"
)

// Price is one dated fuel price observation for a hub.
type Price struct {
	Hub         string          `json:"hub"`
	VLSFO       decimal.Decimal `json:"vlsfo"`
	MGO         decimal.Decimal `json:"mgo"`
	ScrapedDate time.Time       `json:"scrapedDate"`
}

// Quote is the read-side view: the freshest price per hub plus its age.
type Quote struct {
	Price
	DaysOld int `json:"daysOld"`
}

// Latest keeps one quote per hub, most recent scrape winning.
func Latest(prices []Price, asOf time.Time) map[string]Quote {
	ordered := make([]Price, len(prices))
	copy(ordered, prices)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ScrapedDate.After(ordered[j].ScrapedDate)
	})

	out := make(map[string]Quote, len(ordered))
	for _, p := range ordered {
		if _, dup := out[p.Hub]; dup {
			continue
		}
		age := rates.DaysOld(p.ScrapedDate, asOf)
		if age < 0 {
			age = 0
		}
		out[p.Hub] = Quote{Price: p, DaysOld: age}
	}
	return out
}
