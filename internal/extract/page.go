package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"freight-rate-watch/internal/rates"
)

// ErrNoRates signals that a successfully fetched page yielded zero rate
// records. That almost always means the source wording or markup changed,
// so it is surfaced as a hard error for operator attention rather than an
// empty success.
var ErrNoRates = errors.New("no rate lines extracted from page")

// Extractor scans a whole page body for bulletin rate lines.
type Extractor struct {
	parser *Parser
	logger zerolog.Logger
}

// NewExtractor wires a line parser into a page extractor.
func NewExtractor(parser *Parser, logger zerolog.Logger) *Extractor {
	return &Extractor{
		parser: parser,
		logger: logger.With().Str("component", "extractor").Logger(),
	}
}

// ExtractRates splits the page into lines, keeps bullet lines mentioning a
// fixed rate, parses each, and deduplicates by route key keeping the first
// match in page order. Every call rescans from scratch. Returns ErrNoRates
// when nothing survives.
func (e *Extractor) ExtractRates(pageBody string) ([]rates.Record, error) {
	var (
		out       []rates.Record
		seen      = make(map[rates.RouteKey]struct{})
		candidate int
	)

	for _, line := range strings.Split(pageBody, "\n") {
		if !hasBullet(line) || !strings.Contains(strings.ToLower(line), "fixed around") {
			continue
		}
		candidate++

		rec, ok := e.parser.ParseLine(line)
		if !ok {
			// Unparseable bullet lines are normal page content.
			e.logger.Debug().Str("line", strings.TrimSpace(line)).Msg("dropped unparseable bullet line")
			continue
		}

		key := rec.Key()
		if _, dup := seen[key]; dup {
			e.logger.Debug().
				Str("vessel", string(rec.VesselType)).
				Str("origin", string(rec.OriginRegion)).
				Str("destination", string(rec.DestinationRegion)).
				Msg("dropped duplicate route within page")
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w (%d candidate lines scanned)", ErrNoRates, candidate)
	}
	return out, nil
}
