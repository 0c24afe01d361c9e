// Package rates defines the charter-rate record extracted from bulletin
// lines and the freshness aggregation over dated snapshots.
package rates

import (
	"time"

	"freight-rate-watch/internal/vocab"
)

// Record is one charter-rate observation. Records are immutable once
// built; ScrapedDate is attached by the caller that ran the extraction,
// not by the parser.
type Record struct {
	VesselType        vocab.VesselType `json:"vesselType"`
	OriginRegion      vocab.RegionCode `json:"originRegion"`
	DestinationRegion vocab.RegionCode `json:"destinationRegion"`
	OriginText        string           `json:"originText"`
	DestinationText   string           `json:"destinationText"`
	Rate              int              `json:"rate"`
	ScrapedDate       time.Time        `json:"scrapedDate"`
	RawLine           string           `json:"rawLine"`
}

// RouteKey identifies the vessel/origin/destination combination a record
// is deduplicated and aggregated on.
type RouteKey struct {
	Vessel      vocab.VesselType
	Origin      vocab.RegionCode
	Destination vocab.RegionCode
}

// Key returns the record's dedup/aggregation key.
func (r Record) Key() RouteKey {
	return RouteKey{Vessel: r.VesselType, Origin: r.OriginRegion, Destination: r.DestinationRegion}
}

// Midnight truncates t to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
