package extract

import (
	"testing"

	"freight-rate-watch/internal/vocab"
)

func TestParseLineBasic(t *testing.T) {
	p := NewParser(0, 0)

	rec, ok := p.ParseLine("• Ultramax open Continent to China fixed around $17,500")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.VesselType != vocab.Ultramax {
		t.Fatalf("vessel = %s, want ULTRAMAX", rec.VesselType)
	}
	if rec.OriginRegion != "N.EUROPE" {
		t.Fatalf("origin = %s, want N.EUROPE", rec.OriginRegion)
	}
	if rec.DestinationRegion != "CHINA" {
		t.Fatalf("destination = %s, want CHINA", rec.DestinationRegion)
	}
	if rec.Rate != 17500 {
		t.Fatalf("rate = %d, want 17500", rec.Rate)
	}
	if rec.OriginText != "Continent" || rec.DestinationText != "China" {
		t.Fatalf("original text not preserved: %q / %q", rec.OriginText, rec.DestinationText)
	}
}

func TestParseLineViaClauseDiscarded(t *testing.T) {
	p := NewParser(0, 0)

	rec, ok := p.ParseLine("Supramax open West Africa (WAFR) via ECSA to China fixed around $20,500")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.OriginRegion != "W.AFRICA" {
		t.Fatalf("origin = %s, want W.AFRICA (via clause must not drive resolution)", rec.OriginRegion)
	}
	if rec.DestinationRegion != "CHINA" || rec.Rate != 20500 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseLineIdempotentOnRawLine(t *testing.T) {
	p := NewParser(0, 0)

	first, ok := p.ParseLine("– Capesize open Brazil to North China fixed around $23,000")
	if !ok {
		t.Fatal("expected line to parse")
	}
	second, ok := p.ParseLine(first.RawLine)
	if !ok {
		t.Fatal("expected RawLine to re-parse")
	}
	if first != second {
		t.Fatalf("re-parse differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseLineRateBounds(t *testing.T) {
	p := NewParser(0, 0)

	rejected := []string{
		"• Panamax open US Gulf to Japan fixed around $500",
		"• Panamax open US Gulf to Japan fixed around $250,000",
		"• Panamax open US Gulf to Japan fixed around $0",
	}
	for _, line := range rejected {
		if _, ok := p.ParseLine(line); ok {
			t.Fatalf("expected rejection of out-of-bound rate: %q", line)
		}
	}

	if _, ok := p.ParseLine("• Panamax open US Gulf to Japan fixed around $1,000"); !ok {
		t.Fatal("floor value should be accepted")
	}
	if _, ok := p.ParseLine("• Panamax open US Gulf to Japan fixed around $200,000"); !ok {
		t.Fatal("ceiling value should be accepted")
	}
}

func TestParseLineConfiguredBounds(t *testing.T) {
	p := NewParser(5000, 30000)
	if _, ok := p.ParseLine("• Panamax open US Gulf to Japan fixed around $4,000"); ok {
		t.Fatal("below configured floor should be rejected")
	}
	if _, ok := p.ParseLine("• Panamax open US Gulf to Japan fixed around $29,000"); !ok {
		t.Fatal("in-bound rate should be accepted")
	}
}

func TestParseLineMalformed(t *testing.T) {
	p := NewParser(0, 0)

	cases := map[string]string{
		"no rate phrase":        "• Ultramax open Continent to China at $17,500",
		"no separator":          "• Ultramax open Continent fixed around $17,500",
		"unknown vessel":        "• Aframax open Continent to China fixed around $17,500",
		"unknown origin":        "• Ultramax open Narnia to China fixed around $17,500",
		"unknown destination":   "• Ultramax open Continent to Narnia fixed around $17,500",
		"empty descriptor":      "• fixed around $17,500",
		"empty line":            "",
		"bullet only":           "•",
		"prose without bullets": "The Atlantic market firmed this week.",
	}
	for name, line := range cases {
		if rec, ok := p.ParseLine(line); ok {
			t.Fatalf("%s: expected rejection, got %+v", name, rec)
		}
	}
}

func TestParseLineCaseFoldingRunes(t *testing.T) {
	p := NewParser(0, 0)

	// Scraped text can carry runes whose lowercase form has a different
	// byte length (U+023A grows, U+212A shrinks). Separator offsets must
	// stay aligned with the original string: no panic, no corrupted
	// substrings, just normal resolution on whatever survives.
	if rec, ok := p.ParseLine("• Capesize open ȺȺȺȺȺ to C fixed around $17,500"); ok {
		t.Fatalf("unresolvable regions should be rejected, got %+v", rec)
	}

	rec, ok := p.ParseLine("• Panamax open US Gulf to Korea fixed around $15,000")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.DestinationRegion != "KOREA" {
		t.Fatalf("destination = %s, want KOREA", rec.DestinationRegion)
	}
	if rec.DestinationText != "Korea" {
		t.Fatalf("destination text corrupted: %q", rec.DestinationText)
	}

	rec, ok = p.ParseLine("• Capesize open Ⱥ Brazil to China fixed around $23,000")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.OriginRegion != "BRAZIL" || rec.OriginText != "Ⱥ Brazil" {
		t.Fatalf("origin slicing broke: %+v", rec)
	}
}

func TestParseLineLastToWins(t *testing.T) {
	p := NewParser(0, 0)

	// The origin phrase itself contains " to "; only the final one splits.
	rec, ok := p.ParseLine("• Panamax open Santos to Recalada range to South Korea fixed around $14,250")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.DestinationRegion != "KOREA" {
		t.Fatalf("destination = %s, want KOREA", rec.DestinationRegion)
	}
	if rec.OriginRegion != "E.S.AMERICA" {
		t.Fatalf("origin = %s, want E.S.AMERICA", rec.OriginRegion)
	}
}
