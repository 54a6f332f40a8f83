package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/alukotobi/tobichat/internal/conversation"
	"github.com/alukotobi/tobichat/internal/llm"
)

// remoteWindowCap bounds how many prior turns travel with a remote chat
// request. The system persona message never counts against it and is
// never evicted.
const remoteWindowCap = 10

// Session is one user's conversation: a uuid, the mutable context store,
// and the rolling message window sent to the remote backend. A session is
// processed one turn at a time and is not safe for concurrent use.
type Session struct {
	ID         string
	Context    *conversation.Context
	CreatedAt  time.Time
	LastActive time.Time

	remote []llm.Message
}

// NewSession creates an empty session seeded with the persona message.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		Context:    conversation.NewContext(),
		CreatedAt:  now,
		LastActive: now,
		remote:     []llm.Message{{Role: llm.RoleSystem, Content: personaPrompt}},
	}
}

// remoteMessages returns a copy of the remote window.
func (s *Session) remoteMessages() []llm.Message {
	out := make([]llm.Message, len(s.remote))
	copy(out, s.remote)
	return out
}

// appendRemote records a completed exchange in the remote window,
// evicting the oldest non-system messages past the cap.
func (s *Session) appendRemote(userText, reply string) {
	s.remote = append(s.remote,
		llm.Message{Role: llm.RoleUser, Content: userText},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	for len(s.remote) > remoteWindowCap+1 {
		s.remote = append(s.remote[:1], s.remote[2:]...)
	}
}
