package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Telegram delivers lead notifications through the Bot API sendMessage call.
// Each target is a chat id.
type Telegram struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewTelegram creates a Telegram sender.
func NewTelegram(baseURL, token string, timeout time.Duration) *Telegram {
	return &Telegram{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts text to a single chat id. One attempt, no retry.
func (t *Telegram) Send(ctx context.Context, target, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: target, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error [%d]: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
