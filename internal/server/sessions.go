package server

import (
	"context"
	"sync"
	"time"

	"github.com/alukotobi/tobichat/internal/assistant"
	"github.com/alukotobi/tobichat/internal/conversation"
)

// sessionTTL is how long an idle session survives before the sweeper
// drops it.
const sessionTTL = 2 * time.Hour

// managedSession serializes turns: a session is single-writer, so each
// one carries its own lock.
type managedSession struct {
	mu   sync.Mutex
	sess *assistant.Session
}

// Sessions is the server's in-memory session registry, keyed by the
// session uuid.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*managedSession
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*managedSession)}
}

// resolve returns the session for id, creating a fresh one when id is
// empty or unknown.
func (s *Sessions) resolve(id string) *managedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if ms, ok := s.byID[id]; ok {
			return ms
		}
	}
	ms := &managedSession{sess: assistant.NewSession()}
	s.byID[ms.sess.ID] = ms
	return ms
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep drops sessions idle longer than ttl and returns how many were
// removed.
func (s *Sessions) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, ms := range s.byID {
		if ms.sess.LastActive.Before(cutoff) {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}

// Chat runs one turn against the session's assistant, creating the
// session if needed. Turns within a session are strictly sequential.
func (s *Server) Chat(ctx context.Context, sessionID, text string) (string, assistant.Reply) {
	ms := s.sessions.resolve(sessionID)
	ms.mu.Lock()
	defer ms.mu.Unlock()
	reply := s.assist.ProcessMessage(ctx, ms.sess, text)
	return ms.sess.ID, reply
}

// History returns the recorded turns for a session.
func (s *Server) History(sessionID string) ([]conversation.Turn, bool) {
	s.sessions.mu.Lock()
	ms, ok := s.sessions.byID[sessionID]
	s.sessions.mu.Unlock()
	if !ok {
		return nil, false
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.sess.Context.RecentHistory(ms.sess.Context.TurnCount()), true
}
