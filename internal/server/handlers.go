package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alukotobi/tobichat/internal/widget"
)

// chatRequest is the JSON body of POST /api/chat.
type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// chatResponse is the JSON reply of POST /api/chat.
type chatResponse struct {
	SessionID  string  `json:"session_id"`
	Reply      string  `json:"reply"`
	HTML       string  `json:"html"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Sentiment  string  `json:"sentiment"`
	Complexity string  `json:"complexity"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID, reply := s.Chat(r.Context(), req.SessionID, req.Message)

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID:  sessionID,
		Reply:      reply.Text,
		HTML:       widget.RenderMarkdown(reply.Text),
		Intent:     string(reply.Analysis.Intent),
		Confidence: reply.Analysis.Confidence,
		Sentiment:  string(reply.Analysis.SentimentCategory),
		Complexity: string(reply.Analysis.Complexity),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
