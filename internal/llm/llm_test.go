package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeProvider struct {
	calls int
	reply string
	err   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ChatResponse{Content: f.reply, Model: req.Model}, nil
}

func TestRateLimiterAllowsUpToRPM(t *testing.T) {
	fake := &fakeProvider{reply: "ok"}
	limited := NewRateLimitedProvider(fake, 3)

	for i := 0; i < 3; i++ {
		if _, err := limited.Chat(context.Background(), ChatRequest{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if fake.calls != 3 {
		t.Errorf("expected 3 calls through, got %d", fake.calls)
	}
}

func TestRateLimiterBlocksWhenExhausted(t *testing.T) {
	fake := &fakeProvider{reply: "ok"}
	limited := NewRateLimitedProvider(fake, 1)

	if _, err := limited.Chat(context.Background(), ChatRequest{}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if _, err := limited.Chat(ctx, ChatRequest{}); err == nil {
		t.Error("expected context error when bucket is empty")
	}
	if fake.calls != 1 {
		t.Errorf("exhausted limiter let a call through, calls=%d", fake.calls)
	}
}

func TestRateLimiterPreservesName(t *testing.T) {
	limited := NewRateLimitedProvider(&fakeProvider{}, 1)
	if limited.Name() != "fake" {
		t.Errorf("Name() = %q, want fake", limited.Name())
	}
}

func TestNewProviderUnsupportedType(t *testing.T) {
	if _, err := NewProvider("watson", "some-model"); err == nil {
		t.Error("expected error for unsupported provider type")
	}
}

func TestNewProviderRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error when OPENAI_API_KEY is unset")
	}

	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewProvider("anthropic", "claude-sonnet-4-20250514"); err == nil {
		t.Error("expected error when ANTHROPIC_API_KEY is unset")
	}
}

func TestNewProviderOllamaDefaultsHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	p, err := NewProvider("ollama", "llama3.2")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q, want ollama", p.Name())
	}
}

func TestAnthropicSeparatesSystemPrompt(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicContent{{Type: "text", Text: "hi there"}},
			Model:   "claude-sonnet-4-20250514",
		})
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-sonnet-4-20250514")
	p.baseURL = srv.URL

	resp, err := p.Chat(context.Background(), ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "you are a helpful assistant"},
			{Role: RoleUser, Content: "hello"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "hi there" {
		t.Errorf("Content = %q", resp.Content)
	}
	if captured.System != "you are a helpful assistant" {
		t.Errorf("system prompt not lifted to top level: %q", captured.System)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", captured.Messages)
	}
}

func TestAnthropicReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(anthropicResponse{
			Error: &anthropicError{Type: "authentication_error", Message: "invalid x-api-key"},
		})
	}))
	defer srv.Close()

	p := NewAnthropicProvider("bad-key", "claude-sonnet-4-20250514")
	p.baseURL = srv.URL

	_, err := p.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err == nil || !strings.Contains(err.Error(), "authentication_error") {
		t.Errorf("expected API error, got %v", err)
	}
}

func TestOllamaChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "local reply"},
			Model:   "llama3.2",
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2")
	resp, err := p.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "local reply" {
		t.Errorf("Content = %q", resp.Content)
	}
}
