// Package conversation holds the mutable per-session state of the
// assistant: a rolling history window, the accumulated topic set, a
// per-topic expertise map, and a bounded interaction memory. One Context
// belongs to exactly one session and is written by one turn at a time.
package conversation

import (
	"strings"
	"time"

	"github.com/alukotobi/tobichat/internal/classifier"
)

// Caps on the mutable state. Eviction is strict FIFO: when a cap is
// exceeded by one, the oldest entry goes.
const (
	HistoryCap = 10
	TopicCap   = 20
	MemoryCap  = 100
)

// ExpertiseIncrement is added to a topic's expertise score per mention.
const ExpertiseIncrement = 0.05

// Style is the communication style inferred from message complexity.
type Style string

const (
	StyleCasual    Style = "casual"
	StyleFormal    Style = "formal"
	StyleTechnical Style = "technical"
)

// Depth is the user's preferred response depth.
type Depth string

const (
	DepthBrief         Depth = "brief"
	DepthDetailed      Depth = "detailed"
	DepthComprehensive Depth = "comprehensive"
)

// Level is the aggregate expertise tier of the user.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Turn is one completed exchange.
type Turn struct {
	UserText     string
	ResponseText string
	Timestamp    time.Time
	Topics       []string
}

// Interaction is one remembered exchange in the bounded key-value memory.
type Interaction struct {
	UserText     string
	ResponseText string
	Topics       []string
	Intent       classifier.Intent
}

// Context is the per-session conversation state.
type Context struct {
	history   []Turn
	topics    []string
	expertise map[string]float64
	style     Style
	depth     Depth

	memoryKeys []string
	memory     map[string]Interaction
}

// NewContext creates an empty context with the default style and depth.
func NewContext() *Context {
	return &Context{
		expertise: make(map[string]float64),
		style:     StyleCasual,
		depth:     DepthDetailed,
		memory:    make(map[string]Interaction),
	}
}

// Record appends a completed turn, folding its topics into the session
// topic set and evicting the oldest entries past the caps.
func (c *Context) Record(turn Turn) {
	c.history = append(c.history, turn)
	if len(c.history) > HistoryCap {
		c.history = c.history[len(c.history)-HistoryCap:]
	}

	for _, topic := range turn.Topics {
		if !c.hasTopic(topic) {
			c.topics = append(c.topics, topic)
		}
	}
	if len(c.topics) > TopicCap {
		c.topics = c.topics[len(c.topics)-TopicCap:]
	}
}

func (c *Context) hasTopic(topic string) bool {
	for _, t := range c.topics {
		if t == topic {
			return true
		}
	}
	return false
}

// RecentHistory returns the last n turns, oldest first.
func (c *Context) RecentHistory(n int) []Turn {
	if n <= 0 || len(c.history) == 0 {
		return nil
	}
	if n > len(c.history) {
		n = len(c.history)
	}
	out := make([]Turn, n)
	copy(out, c.history[len(c.history)-n:])
	return out
}

// TurnCount reports how many turns are currently held.
func (c *Context) TurnCount() int { return len(c.history) }

// Topics returns a copy of the session topic set, oldest first.
func (c *Context) Topics() []string {
	out := make([]string, len(c.topics))
	copy(out, c.topics)
	return out
}

// UpdateExpertise bumps the expertise score of every mentioned topic,
// clamped to [0, 1].
func (c *Context) UpdateExpertise(topics []string) {
	for _, topic := range topics {
		score := c.expertise[topic] + ExpertiseIncrement
		if score > 1.0 {
			score = 1.0
		}
		c.expertise[topic] = score
	}
}

// Expertise returns the current score for a topic.
func (c *Context) Expertise(topic string) float64 { return c.expertise[topic] }

// ExpertiseLevel classifies the average expertise across all mentioned
// topics: above 0.7 advanced, above 0.4 intermediate, else beginner.
func (c *Context) ExpertiseLevel() Level {
	if len(c.expertise) == 0 {
		return LevelBeginner
	}
	var sum float64
	for _, v := range c.expertise {
		sum += v
	}
	avg := sum / float64(len(c.expertise))
	switch {
	case avg > 0.7:
		return LevelAdvanced
	case avg > 0.4:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// InferLevel estimates the user's level from a single message against the
// shared term vocabularies. It is a pure function of the text and ignores
// stored history.
func InferLevel(text string) Level {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = true
	}
	for _, term := range classifier.AdvancedTerms {
		if words[term] {
			return LevelAdvanced
		}
	}
	for _, term := range classifier.IntermediateTerms {
		if words[term] {
			return LevelIntermediate
		}
	}
	return LevelBeginner
}

// AdaptStyle shifts the communication style from the observed message
// complexity: advanced messages push technical, basic ones casual.
func (c *Context) AdaptStyle(complexity classifier.Complexity) {
	switch complexity {
	case classifier.ComplexityAdvanced:
		c.style = StyleTechnical
	case classifier.ComplexityBasic:
		c.style = StyleCasual
	}
}

// Style returns the current communication style.
func (c *Context) Style() Style { return c.style }

// Depth returns the preferred response depth.
func (c *Context) Depth() Depth { return c.depth }

// SetDepth overrides the preferred response depth.
func (c *Context) SetDepth(d Depth) { c.depth = d }

// Remember stores an interaction under key, evicting the oldest entry
// once the memory cap is exceeded.
func (c *Context) Remember(key string, in Interaction) {
	if _, exists := c.memory[key]; !exists {
		c.memoryKeys = append(c.memoryKeys, key)
	}
	c.memory[key] = in
	if len(c.memoryKeys) > MemoryCap {
		oldest := c.memoryKeys[0]
		c.memoryKeys = c.memoryKeys[1:]
		delete(c.memory, oldest)
	}
}

// Recall fetches a remembered interaction.
func (c *Context) Recall(key string) (Interaction, bool) {
	in, ok := c.memory[key]
	return in, ok
}

// MemorySize reports the number of remembered interactions.
func (c *Context) MemorySize() int { return len(c.memory) }

// Snapshot is the read-only view of the context a response generator
// consumes. Capturing it keeps generation pure with respect to the
// mutable store.
type Snapshot struct {
	Level        Level
	Style        Style
	Depth        Depth
	TurnCount    int
	RecentTopics []string
}

// Snapshot captures the generator-facing view of the context. RecentTopics
// holds the last three session topics.
func (c *Context) Snapshot() Snapshot {
	recent := c.topics
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	topics := make([]string, len(recent))
	copy(topics, recent)
	return Snapshot{
		Level:        c.ExpertiseLevel(),
		Style:        c.style,
		Depth:        c.depth,
		TurnCount:    len(c.history),
		RecentTopics: topics,
	}
}
