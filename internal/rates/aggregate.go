package rates

import (
	"sort"
	"time"
)

// AggregatedRate is the read-side view of a record: the most recent
// observation for its route plus an age-derived freshness score. It is
// computed on every read and never persisted.
type AggregatedRate struct {
	Record
	DaysOld    int `json:"daysOld"`
	Tier       int `json:"tier"`
	Confidence int `json:"confidence"`
}

// Freshness maps record age in days to a tier and confidence score.
func Freshness(daysOld int) (tier, confidence int) {
	switch {
	case daysOld <= 3:
		return 1, 95
	case daysOld <= 14:
		return 2, 75
	case daysOld <= 45:
		return 3, 50
	default:
		return 4, 30
	}
}

// DaysOld returns the whole days between the scraped date and asOf, both
// taken as UTC calendar dates.
func DaysOld(scraped, asOf time.Time) int {
	return int(Midnight(asOf).Sub(Midnight(scraped)).Hours() / 24)
}

// Aggregate collapses dated records into one best entry per route key,
// most recent scrape winning, and scores each by age. The descending date
// sort is load-bearing: "first seen per key" is only "most recent" under
// that order. Output is stable-sorted by vessel type then origin region so
// responses are deterministic and diff-friendly.
func Aggregate(records []Record, asOf time.Time) []AggregatedRate {
	ordered := make([]Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ScrapedDate.After(ordered[j].ScrapedDate)
	})

	seen := make(map[RouteKey]struct{}, len(ordered))
	out := make([]AggregatedRate, 0, len(ordered))
	for _, rec := range ordered {
		key := rec.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		age := DaysOld(rec.ScrapedDate, asOf)
		if age < 0 {
			age = 0
		}
		tier, confidence := Freshness(age)
		out = append(out, AggregatedRate{
			Record:     rec,
			DaysOld:    age,
			Tier:       tier,
			Confidence: confidence,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VesselType != out[j].VesselType {
			return out[i].VesselType < out[j].VesselType
		}
		return out[i].OriginRegion < out[j].OriginRegion
	})
	return out
}
