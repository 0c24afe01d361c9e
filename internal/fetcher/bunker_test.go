package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBunkerMissingURL(t *testing.T) {
	b := NewBunker(BunkerOptions{}, noopLogger())
	if _, err := b.FetchBunker(context.Background()); err == nil {
		t.Fatal("missing url should error")
	}
}

func TestBunkerNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	b := NewBunker(BunkerOptions{URL: srv.URL, Timeout: time.Second}, noopLogger())
	_, err := b.FetchBunker(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadGateway {
		t.Fatalf("expected StatusError 502, got %v", err)
	}
}

func TestBunkerSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prices":[
			{"hub":"singapore","vlsfo":575.5,"mgo":721,"date":"2026-03-09"},
			{"hub":"Rotterdam","vlsfo":"498.25","mgo":"655.00","date":"2026-03-09"},
			{"hub":"","vlsfo":1,"mgo":1,"date":"2026-03-09"}
		]}`))
	}))
	defer srv.Close()

	b := NewBunker(BunkerOptions{URL: srv.URL, Timeout: time.Second}, noopLogger())
	prices, err := b.FetchBunker(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 prices (hub-less entry dropped), got %d", len(prices))
	}
	if prices[0].Hub != "SINGAPORE" {
		t.Fatalf("hub should be upcased, got %q", prices[0].Hub)
	}
	if !prices[0].VLSFO.Equal(decimal.NewFromFloat(575.5)) {
		t.Fatalf("vlsfo = %s, want 575.5", prices[0].VLSFO)
	}
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if !prices[0].ScrapedDate.Equal(want) {
		t.Fatalf("scraped date = %s, want %s", prices[0].ScrapedDate, want)
	}
}
