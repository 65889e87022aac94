package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domai "github.com/dealcheck/contract-audit/internal/domain/ai"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient("test-key", "gpt-4o-2024-11-20", srv.URL+"/v1")
}

func TestGenerateContentSendsInlinePart(t *testing.T) {
	var captured map[string]any
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-2024-11-20",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]any{"role": "assistant", "content": `{"summary":"ok"}`}, "finish_reason": "stop"},
			},
		})
	})

	got, err := client.GenerateContent(context.Background(), "audit this", domai.InlinePart{
		Data:      "aGVsbG8=",
		MediaType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if got != `{"summary":"ok"}` {
		t.Fatalf("GenerateContent() = %q", got)
	}

	raw, _ := json.Marshal(captured)
	body := string(raw)
	if !strings.Contains(body, "data:application/pdf;base64,aGVsbG8=") {
		t.Fatalf("request missing inline data URI: %s", body)
	}
	if !strings.Contains(body, "audit this") {
		t.Fatalf("request missing prompt text: %s", body)
	}
	if !strings.Contains(body, "json_object") {
		t.Fatalf("request missing JSON response format: %s", body)
	}
}

func TestGenerateContentRateLimitTagged(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached for requests","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "p", domai.InlinePart{Data: "eA==", MediaType: "image/png"})
	if !errors.Is(err, domai.ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
}

func TestGenerateContentDeprecatedModelTagged(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"The model has been deprecated","type":"invalid_request_error","code":"model_deprecated"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "p", domai.InlinePart{Data: "eA==", MediaType: "image/png"})
	if !errors.Is(err, domai.ErrModelDeprecated) {
		t.Fatalf("error = %v, want ErrModelDeprecated", err)
	}
}

func TestGenerateContentEmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`))
	})

	_, err := client.GenerateContent(context.Background(), "p", domai.InlinePart{Data: "eA==", MediaType: "image/png"})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("error = %v, want no-choices error", err)
	}
}
