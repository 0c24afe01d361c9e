package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNextFireSameDay(t *testing.T) {
	s := New(Options{Hour: 6, Minute: 30}, zerolog.Nop())
	now := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)
	got := s.NextFire(now)
	want := time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NextFire = %s, want %s", got, want)
	}
}

func TestNextFireRollsToTomorrow(t *testing.T) {
	s := New(Options{Hour: 6, Minute: 30}, zerolog.Nop())

	now := time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)
	got := s.NextFire(now)
	want := time.Date(2026, 3, 11, 6, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("firing time itself should roll over, got %s", got)
	}

	now = time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := s.NextFire(now); !got.Equal(want) {
		t.Fatalf("NextFire = %s, want %s", got, want)
	}
}
