package extract

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func testExtractor() *Extractor {
	return NewExtractor(NewParser(0, 0), zerolog.Nop())
}

const samplePage = `Dry Bulk Weekly Fixtures

Atlantic remained firm through the week.

• Capesize open Brazil to China fixed around $24,500
• Ultramax open Continent to China fixed around $17,500
• Ultramax open Rotterdam to South China fixed around $18,000
• Supramax open US Gulf via Gibraltar to Japan fixed around $21,250
Panamax open ECSA to SE Asia fixed around $16,000 (no bullet, must be ignored)
• Panamax was rumoured fixed in the mid teens

Bunker desks quiet.`

func TestExtractRatesFiltersAndDedupes(t *testing.T) {
	got, err := testExtractor().ExtractRates(samplePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three distinct routes: the second Ultramax Continent→China line
	// resolves to the same key and the first page-order record wins; the
	// bullet-less Panamax line and the rumour line never qualify.
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(got), got)
	}
	if got[1].VesselType != "ULTRAMAX" || got[1].Rate != 17500 {
		t.Fatalf("first page-order duplicate should win, got %+v", got[1])
	}
	if got[2].OriginRegion != "US GULF" || got[2].DestinationRegion != "JAPAN" {
		t.Fatalf("via clause handling broke: %+v", got[2])
	}
}

func TestExtractRatesEmptyPageIsStructuralFailure(t *testing.T) {
	pages := map[string]string{
		"empty":            "",
		"prose only":       "Market commentary without any fixtures today.",
		"bullets, no rate": "• Owners held offers steady\n• Charterers stayed away",
		"rate, no bullet":  "Panamax open US Gulf to Japan fixed around $15,000",
	}
	for name, page := range pages {
		_, err := testExtractor().ExtractRates(page)
		if err == nil {
			t.Fatalf("%s: expected structural failure, got success", name)
		}
		if !errors.Is(err, ErrNoRates) {
			t.Fatalf("%s: error should wrap ErrNoRates, got %v", name, err)
		}
	}
}

func TestExtractRatesUnparseableBulletsDroppedSilently(t *testing.T) {
	page := "• Garbage fixed around $17,500\n• Ultramax open Continent to China fixed around $17,500"
	got, err := testExtractor().ExtractRates(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
}
