package fetcher

import (
	"context"
	"fmt"
	"strings"

	"freight-rate-watch/internal/bunker"
)

// BulletinFetcher retrieves the freight-rate bulletin page as scannable text.
type BulletinFetcher interface {
	FetchBulletin(ctx context.Context) (string, error)
}

// BunkerFetcher retrieves current bunker fuel prices per hub.
type BunkerFetcher interface {
	FetchBunker(ctx context.Context) ([]bunker.Price, error)
}

// StatusError carries a non-success upstream response so failures can be
// diagnosed without re-running the fetch.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, body)
}

const maxErrorBody = 512

func newStatusError(status int, body []byte) *StatusError {
	excerpt := string(body)
	if len(excerpt) > maxErrorBody {
		excerpt = excerpt[:maxErrorBody]
	}
	return &StatusError{Status: status, Body: excerpt}
}
