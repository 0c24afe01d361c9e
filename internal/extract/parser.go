// Package extract turns raw bulletin page text into typed charter-rate
// records: a line parser for single sentences and a page extractor that
// filters, parses, and deduplicates a whole page body.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"freight-rate-watch/internal/rates"
	"freight-rate-watch/internal/vocab"
)

const (
	// DefaultMinRate and DefaultMaxRate bound accepted USD/day figures.
	// This is a noise filter against OCR and formatting artifacts on the
	// source page, not a market judgment; both ends are configurable.
	DefaultMinRate = 1000
	DefaultMaxRate = 200000
)

// bulletGlyphs are the markers a bulletin line may start with. Listed
// longest-first so multi-byte dashes are stripped whole.
var bulletGlyphs = []string{"•", "●", "◦", "·", "–", "—", "-", "*"}

var ratePhrase = regexp.MustCompile(`(?i)fixed around \$([0-9][0-9,]*)`)

// Parser turns one bulletin sentence into a rate record.
type Parser struct {
	minRate int
	maxRate int
}

// NewParser builds a line parser with the given sanity bounds; zero or
// negative bounds fall back to the defaults.
func NewParser(minRate, maxRate int) *Parser {
	if minRate <= 0 {
		minRate = DefaultMinRate
	}
	if maxRate <= 0 {
		maxRate = DefaultMaxRate
	}
	return &Parser{minRate: minRate, maxRate: maxRate}
}

// stripBullet removes a single leading bullet marker plus surrounding
// whitespace.
func stripBullet(line string) string {
	s := strings.TrimSpace(line)
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(s, glyph) {
			return strings.TrimSpace(s[len(glyph):])
		}
	}
	return s
}

// hasBullet reports whether the trimmed line starts with a bullet marker.
func hasBullet(line string) bool {
	s := strings.TrimSpace(line)
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(s, glyph) {
			return true
		}
	}
	return false
}

// asciiLower lowercases ASCII letters only. Unlike strings.ToLower it
// never changes byte length, so separator offsets found on the lowered
// copy stay valid on the original string even when the input carries
// runes whose case folding grows or shrinks.
func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

// ParseLine parses one bulletin sentence. ok is false for anything that
// does not match the documented shape; unparseable lines are normal page
// content, not errors. ScrapedDate is left zero for the caller to attach.
// The returned RawLine is the cleaned, bullet-stripped sentence, so
// re-parsing a record's own RawLine yields an equal record.
func (p *Parser) ParseLine(rawLine string) (rates.Record, bool) {
	line := stripBullet(rawLine)
	if line == "" {
		return rates.Record{}, false
	}

	m := ratePhrase.FindStringSubmatchIndex(line)
	if m == nil {
		return rates.Record{}, false
	}

	digits := strings.ReplaceAll(line[m[2]:m[3]], ",", "")
	rate, err := strconv.Atoi(digits)
	if err != nil || rate < p.minRate || rate > p.maxRate {
		return rates.Record{}, false
	}

	descriptor := strings.TrimSpace(line[:m[0]])
	if descriptor == "" {
		return rates.Record{}, false
	}

	fields := strings.Fields(descriptor)
	vesselToken := fields[0]
	vessel, ok := vocab.ResolveVessel(vesselToken)
	if !ok {
		return rates.Record{}, false
	}

	route := strings.TrimSpace(strings.TrimPrefix(descriptor, vesselToken))
	lower := asciiLower(route)
	if strings.HasPrefix(lower, "open ") {
		route = strings.TrimSpace(route[len("open "):])
		lower = asciiLower(route)
	}

	// The final " to " introduces the destination; origin descriptions may
	// themselves contain transit phrasing, so earlier occurrences are not
	// the separator.
	sep := strings.LastIndex(lower, " to ")
	if sep < 0 {
		return rates.Record{}, false
	}

	originPart := route[:sep]
	destText := strings.TrimSpace(route[sep+len(" to "):])
	if destText == "" {
		return rates.Record{}, false
	}

	// Waypoint text after the last " via " is not part of the origin.
	if via := strings.LastIndex(lower[:sep], " via "); via >= 0 {
		originPart = originPart[:via]
	}
	originText := strings.TrimSpace(originPart)
	if originText == "" {
		return rates.Record{}, false
	}

	origin, ok := vocab.ResolveRegion(originText)
	if !ok {
		return rates.Record{}, false
	}
	dest, ok := vocab.ResolveRegion(destText)
	if !ok {
		return rates.Record{}, false
	}

	return rates.Record{
		VesselType:        vessel,
		OriginRegion:      origin,
		DestinationRegion: dest,
		OriginText:        originText,
		DestinationText:   destText,
		Rate:              rate,
		RawLine:           line,
	}, true
}
