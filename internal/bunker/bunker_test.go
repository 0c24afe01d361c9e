package bunker

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLatestKeepsFreshestPerHub(t *testing.T) {
	asOf := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	prices := []Price{
		{Hub: "SINGAPORE", VLSFO: decimal.NewFromInt(560), ScrapedDate: asOf.AddDate(0, 0, -6)},
		{Hub: "SINGAPORE", VLSFO: decimal.NewFromInt(575), ScrapedDate: asOf.AddDate(0, 0, -1)},
		{Hub: "ROTTERDAM", VLSFO: decimal.NewFromInt(498), ScrapedDate: asOf.AddDate(0, 0, -2)},
	}

	got := Latest(prices, asOf)
	if len(got) != 2 {
		t.Fatalf("expected 2 hubs, got %d", len(got))
	}
	sg := got["SINGAPORE"]
	if !sg.VLSFO.Equal(decimal.NewFromInt(575)) || sg.DaysOld != 1 {
		t.Fatalf("unexpected singapore quote: %+v", sg)
	}
	if got["ROTTERDAM"].DaysOld != 2 {
		t.Fatalf("unexpected rotterdam age: %+v", got["ROTTERDAM"])
	}
}

func TestLatestEmpty(t *testing.T) {
	got := Latest(nil, time.Now())
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
