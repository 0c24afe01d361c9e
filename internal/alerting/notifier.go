// Package alerting notifies operators when an extraction run fails. A
// structural failure on the source page needs a human look; the alert is
// how anyone finds out before the data goes stale.
package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Failure captures one failed extraction run.
type Failure struct {
	Day   time.Time
	Stage string // fetch, extract, store
	Err   error
}

// Notifier delivers failure notifications.
type Notifier interface {
	Notify(ctx context.Context, failure Failure) error
}

// TelegramNotifier pushes messages through the Telegram Bot API.
type TelegramNotifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	logger   zerolog.Logger
}

// NewTelegramNotifier constructs a Telegram notifier.
func NewTelegramNotifier(botToken, chatID, baseURL string, timeout time.Duration, logger zerolog.Logger) *TelegramNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With().Str("component", "alert_telegram").Logger(),
	}
}

// Notify posts the failure text via the sendMessage API.
func (n *TelegramNotifier) Notify(ctx context.Context, failure Failure) error {
	payload := map[string]string{
		"chat_id": n.chatID,
		"text":    renderMessage(failure),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
	}

	n.logger.Info().Str("stage", failure.Stage).Msg("failure alert dispatched")
	return nil
}

func renderMessage(f Failure) string {
	var b strings.Builder
	b.WriteString("freightwatch extraction failed\n")
	fmt.Fprintf(&b, "date: %s\n", f.Day.UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "stage: %s\n", f.Stage)
	if f.Err != nil {
		fmt.Fprintf(&b, "error: %s", f.Err.Error())
	}
	return b.String()
}

var _ Notifier = (*TelegramNotifier)(nil)
