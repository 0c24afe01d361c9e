// Package vocab resolves free-text place and vessel-class names from
// bulletin prose into the canonical codes the rest of the pipeline keys on.
package vocab

import (
	"regexp"
	"strings"
)

// RegionCode is a canonical shipping-region identifier, e.g. "US GULF".
type RegionCode string

// VesselType is a dry-bulk carrier size class.
type VesselType string

const (
	Capesize VesselType = "CAPESIZE"
	Panamax  VesselType = "PANAMAX"
	Ultramax VesselType = "ULTRAMAX"
	Supramax VesselType = "SUPRAMAX"
	Handy    VesselType = "HANDY"
)

var parentheticalSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// normalizeRegion lowercases, trims, and drops a trailing parenthetical
// abbreviation such as "(USG)".
func normalizeRegion(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = parentheticalSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ResolveRegion maps free text to a canonical region code. Exact alias
// matches win; otherwise the first alias (in table order) contained in the
// input wins. ok is false when nothing matches; callers must drop the
// record rather than substitute a default.
func ResolveRegion(text string) (RegionCode, bool) {
	s := normalizeRegion(text)
	if s == "" {
		return "", false
	}
	for _, entry := range regionAliases {
		if s == entry.alias {
			return entry.code, true
		}
	}
	for _, entry := range regionAliases {
		if strings.Contains(s, entry.alias) {
			return entry.code, true
		}
	}
	return "", false
}

// ResolveVessel maps free text to a vessel class by substring containment,
// checked in priority order so "capesize" is claimed before the generic
// "handy" keyword can false-positive.
func ResolveVessel(text string) (VesselType, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	for _, entry := range vesselKeywords {
		if strings.Contains(s, entry.keyword) {
			return entry.class, true
		}
	}
	return "", false
}
