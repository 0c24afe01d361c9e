package vocab

import "testing"

func TestResolveRegionAliases(t *testing.T) {
	cases := []struct {
		in   string
		want RegionCode
	}{
		{"USG", "US GULF"},
		{"US Gulf", "US GULF"},
		{"us gulf", "US GULF"},
		{"US Gulf (USG)", "US GULF"},
		{"Continent", "N.EUROPE"},
		{"ECSA", "E.S.AMERICA"},
		{"East Coast South America", "E.S.AMERICA"},
		{"West Africa (WAFR)", "W.AFRICA"},
		{"N China", "CHINA"},
		{"Singapore", "SE ASIA"},
		{"  Richards Bay  ", "S.AFRICA"},
	}
	for _, tc := range cases {
		got, ok := ResolveRegion(tc.in)
		if !ok {
			t.Fatalf("ResolveRegion(%q) did not resolve", tc.in)
		}
		if got != tc.want {
			t.Fatalf("ResolveRegion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveRegionCompoundBeforeNested(t *testing.T) {
	// "west coast india" contains "india"; the compound alias must win.
	got, ok := ResolveRegion("West Coast India")
	if !ok || got != "W.C.INDIA" {
		t.Fatalf("got %q ok=%v, want W.C.INDIA", got, ok)
	}
	got, ok = ResolveRegion("India")
	if !ok || got != "INDIA" {
		t.Fatalf("got %q ok=%v, want INDIA", got, ok)
	}
}

func TestResolveRegionUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "Atlantis", "open"} {
		if code, ok := ResolveRegion(in); ok {
			t.Fatalf("ResolveRegion(%q) resolved to %q, want no match", in, code)
		}
	}
}

func TestResolveVessel(t *testing.T) {
	cases := []struct {
		in   string
		want VesselType
	}{
		{"Capesize", Capesize},
		{"Cape", Capesize},
		{"PANAMAX", Panamax},
		{"Ultramax", Ultramax},
		{"supramax", Supramax},
		{"Handysize", Handy},
		{"Handymax", Handy},
	}
	for _, tc := range cases {
		got, ok := ResolveVessel(tc.in)
		if !ok {
			t.Fatalf("ResolveVessel(%q) did not resolve", tc.in)
		}
		if got != tc.want {
			t.Fatalf("ResolveVessel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, ok := ResolveVessel("VLCC"); ok {
		t.Fatal("tanker class should not resolve")
	}
	if _, ok := ResolveVessel(""); ok {
		t.Fatal("empty input should not resolve")
	}
}
