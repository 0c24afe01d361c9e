package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func noopLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestBulletinMissingURL(t *testing.T) {
	b := NewBulletin(BulletinOptions{}, noopLogger())
	if _, err := b.FetchBulletin(context.Background()); err == nil {
		t.Fatal("missing url should error")
	}
}

func TestBulletinNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	b := NewBulletin(BulletinOptions{URL: srv.URL, Timeout: time.Second}, noopLogger())
	_, err := b.FetchBulletin(context.Background())
	if err == nil {
		t.Fatal("non-2xx should be a hard failure")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", statusErr.Status)
	}
	if !strings.Contains(statusErr.Body, "gone fishing") {
		t.Fatalf("error should carry the upstream body, got %q", statusErr.Body)
	}
}

func TestBulletinPlainTextPassthrough(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("• Ultramax open Continent to China fixed around $17,500\n"))
	}))
	defer srv.Close()

	b := NewBulletin(BulletinOptions{URL: srv.URL, UserAgent: "test-agent", Timeout: time.Second}, noopLogger())
	body, err := b.FetchBulletin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "Ultramax open Continent") {
		t.Fatalf("body lost content: %q", body)
	}
	if gotUA != "test-agent" {
		t.Fatalf("user agent = %q, want test-agent", gotUA)
	}
}

func TestBulletinHTMLFlattenedToLines(t *testing.T) {
	page := `<html><body><h1>Dry Bulk Report</h1><ul>
		<li>• Capesize open Brazil to China fixed around $24,500</li>
		<li>• Panamax open US Gulf to Japan fixed around $15,750</li>
	</ul></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	b := NewBulletin(BulletinOptions{URL: srv.URL, Timeout: time.Second}, noopLogger())
	body, err := b.FetchBulletin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(body, "\n")
	var bullets int
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "•") {
			bullets++
		}
	}
	if bullets != 2 {
		t.Fatalf("expected 2 bullet lines after flattening, got %d in %q", bullets, body)
	}
}
