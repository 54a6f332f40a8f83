package llm

// Role identifies the sender of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a chat exchange.
type Message struct {
	Role    Role
	Content string
}

// ChatRequest carries one chat completion call: the persona and history
// as messages plus sampling parameters.
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// ChatResponse is the assistant text a provider returned.
type ChatResponse struct {
	Content string
	Model   string
}
