// Package widget serves the embedded browser chat page and its
// websocket endpoint. The page is a single self-contained HTML file;
// replies carry both the raw markdown and rendered HTML so the client
// never needs a markdown library.
package widget

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/alukotobi/tobichat/internal/assistant"
	"github.com/alukotobi/tobichat/internal/conversation"
)

//go:embed index.html
var indexHTML []byte

// ChatService is the chat backend the widget talks to. An empty
// sessionID means "start a new session"; the returned id identifies the
// session the turn was recorded in.
type ChatService interface {
	Chat(ctx context.Context, sessionID, text string) (string, assistant.Reply)
	History(sessionID string) ([]conversation.Turn, bool)
}

// Widget serves the chat page, websocket, and history endpoints.
type Widget struct {
	chat ChatService
}

func New(chat ChatService) *Widget {
	return &Widget{chat: chat}
}

// RegisterRoutes mounts the widget routes onto the given router.
func (wg *Widget) RegisterRoutes(r chi.Router) {
	r.Get("/", wg.ServeIndex)
	r.Get("/ws/chat", wg.handleWebSocket)
	r.Get("/api/chat/history", wg.handleHistory)
}

// ServeIndex serves the embedded chat page.
func (wg *Widget) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming websocket message format.
type wsRequest struct {
	Type      string `json:"type"`       // "message"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// wsResponse is the outgoing websocket message format.
type wsResponse struct {
	Type       string  `json:"type"` // "response" or "error"
	SessionID  string  `json:"session_id"`
	Content    string  `json:"content"`
	HTML       string  `json:"html,omitempty"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

func (wg *Widget) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("widget: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("widget: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			wg.sendError(conn, "", "invalid message format")
			continue
		}

		if req.Content == "" {
			wg.sendError(conn, req.SessionID, "content is required")
			continue
		}

		switch req.Type {
		case "message":
			wg.handleChatMessage(conn, r, req)
		default:
			wg.sendError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (wg *Widget) handleChatMessage(conn *websocket.Conn, r *http.Request, req wsRequest) {
	sessionID, reply := wg.chat.Chat(r.Context(), req.SessionID, req.Content)
	wg.send(conn, wsResponse{
		Type:       "response",
		SessionID:  sessionID,
		Content:    reply.Text,
		HTML:       RenderMarkdown(reply.Text),
		Intent:     string(reply.Analysis.Intent),
		Confidence: reply.Analysis.Confidence,
	})
}

func (wg *Widget) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("widget: websocket write: %v", err)
	}
}

func (wg *Widget) sendError(conn *websocket.Conn, sessionID, message string) {
	wg.send(conn, wsResponse{Type: "error", SessionID: sessionID, Content: message})
}

// historyEntry is one past turn as the page renders it.
type historyEntry struct {
	UserText     string `json:"user_text"`
	ResponseText string `json:"response_text"`
	ResponseHTML string `json:"response_html"`
	When         string `json:"when"`
}

func (wg *Widget) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	turns, ok := wg.chat.History(sessionID)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}

	now := time.Now()
	entries := make([]historyEntry, 0, len(turns))
	for _, turn := range turns {
		entries = append(entries, historyEntry{
			UserText:     turn.UserText,
			ResponseText: turn.ResponseText,
			ResponseHTML: RenderMarkdown(turn.ResponseText),
			When:         RelativeTime(turn.Timestamp, now),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"turns":      entries,
	})
}
