// Package llm provides the chat-completion client for the upstream
// OpenAI-compatible service.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lidorubov/neurosales/domain"
)

// CompletionError reports a failed completion: upstream unreachable, a
// non-success status, or a response with no usable reply text.
type CompletionError struct {
	// Status is the upstream HTTP status, 0 when the request never completed.
	Status int
	Err    error
}

func (e *CompletionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion failed [%d]: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Options are pass-through generation settings.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client calls the /v1/chat/completions endpoint of an OpenAI-compatible
// service.
type Client struct {
	baseURL    string
	apiKey     string
	opts       Options
	httpClient *http.Client
}

// NewClient creates a completion client.
func NewClient(baseURL, apiKey string, opts Options, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		opts:    opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Complete generates the assistant reply for the given transcript. On success
// the returned text is exactly what should be shown to the user and appended
// to the session as the assistant message.
func (c *Client) Complete(ctx context.Context, history []domain.Message) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       c.opts.Model,
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}
	for _, msg := range history {
		reqBody.Messages = append(reqBody.Messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CompletionError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return "", &CompletionError{Status: resp.StatusCode, Err: fmt.Errorf("%s (type: %s)", errResp.Error.Message, errResp.Error.Type)}
		}
		return "", &CompletionError{Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(respBody)))}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &CompletionError{Status: resp.StatusCode, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", &CompletionError{Status: resp.StatusCode, Err: errors.New("response contained no completion")}
	}

	return result.Choices[0].Message.Content, nil
}
