package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lidorubov/neurosales/domain"
)

func testOptions() Options {
	return Options{Model: "gpt-4", Temperature: 0.3, MaxTokens: 500}
}

func TestClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Fatalf("unexpected auth header: %q", got)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4" || req.MaxTokens != 500 {
			t.Fatalf("unexpected request: %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != domain.RoleSystem {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"У вас есть 2 минуты?"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", testOptions(), time.Second)
	reply, err := client.Complete(context.Background(), []domain.Message{
		{Role: domain.RoleSystem, Content: "script"},
		{Role: domain.RoleUser, Content: "привет"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "У вас есть 2 минуты?" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited","type":"rate_limit_error"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testOptions(), time.Second)
	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}

	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError, got %T", err)
	}
	if cerr.Status != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", cerr.Status)
	}
}

func TestClientCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testOptions(), time.Second)
	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})

	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError, got %v", err)
	}
}

func TestClientCompleteUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before use

	client := NewClient(server.URL, "", testOptions(), time.Second)
	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})

	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError, got %v", err)
	}
	if cerr.Status != 0 {
		t.Fatalf("expected status 0 for transport failure, got %d", cerr.Status)
	}
}
