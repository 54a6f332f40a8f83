package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alukotobi/tobichat/internal/assistant"
)

func newTestServer() *Server {
	return New(Config{Port: 0}, assistant.New(assistant.Options{Seed: 7}))
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, assistant.New(assistant.Options{Seed: 7}))

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}
	if strings.TrimSpace(resp.Reply) == "" {
		t.Error("expected a non-empty reply")
	}
	if resp.Intent != "greeting" {
		t.Errorf("intent = %q, want greeting", resp.Intent)
	}
	if resp.HTML == "" {
		t.Error("expected rendered HTML")
	}
}

func TestChatEndpointReusesSession(t *testing.T) {
	srv := newTestServer()

	post := func(body string) chatResponse {
		t.Helper()
		req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp chatResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return resp
	}

	first := post(`{"message":"hello"}`)
	second := post(`{"session_id":"` + first.SessionID + `","message":"tell me about python"}`)

	if second.SessionID != first.SessionID {
		t.Errorf("session id changed: %q -> %q", first.SessionID, second.SessionID)
	}
	if srv.sessions.Count() != 1 {
		t.Errorf("expected 1 session, got %d", srv.sessions.Count())
	}

	turns, ok := srv.History(first.SessionID)
	if !ok {
		t.Fatal("history missing for session")
	}
	if len(turns) != 2 {
		t.Errorf("expected 2 turns, got %d", len(turns))
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChatEndpointRejectsBadJSON(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSessionSweep(t *testing.T) {
	srv := newTestServer()
	srv.Chat(t.Context(), "", "hello")
	if srv.sessions.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", srv.sessions.Count())
	}

	// Nothing is older than an hour yet.
	if removed := srv.sessions.Sweep(time.Hour); removed != 0 {
		t.Errorf("fresh session swept, removed=%d", removed)
	}

	if removed := srv.sessions.Sweep(0); removed != 1 {
		t.Errorf("expected 1 session removed, got %d", removed)
	}
	if srv.sessions.Count() != 0 {
		t.Errorf("expected 0 sessions after sweep, got %d", srv.sessions.Count())
	}
}

func TestWidgetMounted(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Tobi AI") {
		t.Error("expected the chat page at /")
	}
}
