// Package responder turns a classified message into reply text. Every
// intent dispatches to exactly one generator; knowledge-backed intents
// interpolate catalog entries and related concepts, and all phrasing
// adapts to the user's inferred expertise level.
package responder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/alukotobi/tobichat/internal/classifier"
	"github.com/alukotobi/tobichat/internal/conversation"
	"github.com/alukotobi/tobichat/internal/knowledge"
	"github.com/alukotobi/tobichat/internal/nlp"
)

// relatedLimit caps how many related concepts a knowledge-backed reply
// suggests.
const relatedLimit = 2

// Generator produces reply text for classified messages. Template choice
// is the only source of randomness and comes from the injected rng, so a
// fixed seed makes output fully deterministic.
type Generator struct {
	kb  *knowledge.Base
	rng *rand.Rand
}

func New(kb *knowledge.Base, rng *rand.Rand) *Generator {
	return &Generator{kb: kb, rng: rng}
}

// NewSeeded builds a Generator whose template choices derive from seed.
func NewSeeded(kb *knowledge.Base, seed int64) *Generator {
	return New(kb, rand.New(rand.NewSource(seed)))
}

// Generate renders the reply for one message. It is pure apart from rng
// consumption: the same result, snapshot, and rng state yield the same
// string.
func (g *Generator) Generate(text string, res classifier.Result, snap conversation.Snapshot) string {
	switch res.Intent {
	case classifier.IntentGreeting:
		return g.pick(greetingTemplates)
	case classifier.IntentFarewell:
		return g.pick(farewellTemplates)
	case classifier.IntentGratitude:
		return g.pick(gratitudeTemplates)
	case classifier.IntentDeveloperInfo:
		return developerInfoTemplate
	case classifier.IntentCapabilities:
		return g.capabilities(snap)
	case classifier.IntentExplanation:
		return g.explanation(res, snap)
	case classifier.IntentHelp:
		return g.help(res)
	case classifier.IntentComparison:
		return g.comparison(text)
	case classifier.IntentLearning:
		return g.learning(res, snap)
	case classifier.IntentProblemSolving:
		return g.problemSolving(res)
	case classifier.IntentTechnical:
		return g.technical(res, snap)
	case classifier.IntentInformation:
		return g.information(res, snap)
	case classifier.IntentQuestion:
		return g.question(res, snap)
	default:
		return g.contextual(res, snap)
	}
}

func (g *Generator) pick(templates []string) string {
	return templates[g.rng.Intn(len(templates))]
}

// primaryTopic picks the subject of a knowledge lookup: first extracted
// topic, else the leading keyword.
func primaryTopic(res classifier.Result) string {
	if len(res.Topics) > 0 {
		return res.Topics[0]
	}
	if len(res.Keywords) > 0 {
		return res.Keywords[0]
	}
	return ""
}

// findEntry resolves the catalog entry for a message, trying the topic
// search first and falling back to keyword overlap.
func (g *Generator) findEntry(res classifier.Result) (knowledge.Entry, bool) {
	if topic := primaryTopic(res); topic != "" {
		if entries := g.kb.Search(topic); len(entries) > 0 {
			return entries[0], true
		}
	}
	if entries := g.kb.ByKeywords(res.Keywords); len(entries) > 0 {
		return entries[0], true
	}
	return knowledge.Entry{}, false
}

func (g *Generator) relatedSuffix(topic string) string {
	related := g.kb.Related(topic, relatedLimit)
	if len(related) == 0 {
		return ""
	}
	return fmt.Sprintf("\n\n**Related concepts you might find interesting:** %s.", strings.Join(related, ", "))
}

func closerFor(level conversation.Level) string {
	return levelClosers[level]
}

func (g *Generator) capabilities(snap conversation.Snapshot) string {
	bullets, ok := capabilityBullets[snap.Level]
	if !ok {
		bullets = capabilityBullets[conversation.LevelBeginner]
	}
	var b strings.Builder
	b.WriteString("I'm Tobi AI, and here's what I can do for you:\n\n")
	for _, bullet := range bullets {
		fmt.Fprintf(&b, "• %s\n", bullet)
	}
	b.WriteString("\nJust ask me anything, and I'll do my best to provide helpful, accurate information!")
	return b.String()
}

func (g *Generator) explanation(res classifier.Result, snap conversation.Snapshot) string {
	topic := primaryTopic(res)
	if topic == "" {
		return explanationClarifyTemplate
	}
	entry, ok := g.findEntry(res)
	if !ok {
		return fmt.Sprintf("That's an interesting topic! While I don't have a detailed article on **%s** specifically, I can discuss it based on related concepts. Could you tell me which aspect you're most curious about?", topic)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Great question about **%s**!\n\n", entry.Topic)
	b.WriteString(entry.Content)
	b.WriteString(closerFor(snap.Level))
	b.WriteString(g.relatedSuffix(entry.Topic))
	fmt.Fprintf(&b, "\n\nWould you like me to go deeper into any specific aspect of %s?", entry.Topic)
	return b.String()
}

func (g *Generator) help(res classifier.Result) string {
	entry, ok := g.findEntry(res)
	if !ok {
		return genericHelpTemplate
	}
	return fmt.Sprintf("I can definitely help you with **%s**! Here's some background to start from:\n\n%s\n\nWhat specific part are you working on? Share the details and I'll guide you through it.",
		entry.Topic, entry.Content)
}

func (g *Generator) comparison(text string) string {
	subjects := extractComparisonSubjects(text)
	if subjects == nil {
		return comparisonClarifyTemplate
	}
	if table, ok := lookupComparisonTable(subjects); ok {
		return renderComparison(table)
	}
	return fmt.Sprintf("Comparing **%s** and **%s** is a great question! To give you a useful comparison, could you tell me what criteria matter most to you? For example: performance, learning curve, ecosystem, or your specific use case.",
		subjects[0], subjects[1])
}

// learningPathKey maps a free-form topic onto one of the curated paths.
func learningPathKey(topic string) string {
	lower := strings.ToLower(topic)
	switch {
	case strings.Contains(lower, "program") || strings.Contains(lower, "cod") || strings.Contains(lower, "software"):
		return "programming"
	case strings.Contains(lower, "ai") || strings.Contains(lower, "machine") || strings.Contains(lower, "intelligence"):
		return "ai"
	}
	return ""
}

func (g *Generator) learning(res classifier.Result, snap conversation.Snapshot) string {
	topic := primaryTopic(res)
	if key := learningPathKey(topic); key != "" {
		if path, ok := learningPaths[key][snap.Level]; ok {
			return fmt.Sprintf("Excellent choice wanting to learn about **%s**! Here's a path tailored to you:\n\n%s%s", topic, path, learningTips)
		}
	}
	if topic != "" {
		return fmt.Sprintf("Learning about **%s** is a great goal! Start with the fundamentals, practice with small projects, and build up gradually.%s", topic, learningTips)
	}
	return "I'd love to help you learn! What topic interests you? I can suggest structured paths for programming, AI, web development, data science, and more."
}

func (g *Generator) problemSolving(res classifier.Result) string {
	if res.SentimentCategory == nlp.SentimentNegative {
		return "I understand this might be frustrating. " + problemSolvingTemplate
	}
	return problemSolvingTemplate
}

// technical answers with up to two catalog entries matched on keywords,
// preferring entries at or near the user's level.
func (g *Generator) technical(res classifier.Result, snap conversation.Snapshot) string {
	entries := g.kb.ByKeywords(res.Keywords)
	if len(entries) == 0 {
		if topic := primaryTopic(res); topic != "" {
			entries = g.kb.Search(topic)
		}
	}
	if len(entries) == 0 {
		topic := primaryTopic(res)
		if topic == "" {
			topic = "that"
		}
		return fmt.Sprintf("That's a solid technical question about **%s**. I don't have a dedicated article on it, but I can reason through it with you. Could you share more context about what you're building or trying to understand?", topic)
	}
	if len(entries) > 2 {
		entries = entries[:2]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Good technical question! Here's what I know about **%s**:\n\n", entries[0].Topic)
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintf(&b, "\n\nAlso relevant, **%s**:\n\n", entry.Topic)
		}
		b.WriteString(entry.Content)
	}
	b.WriteString(closerFor(snap.Level))
	b.WriteString(g.relatedSuffix(entries[0].Topic))
	return b.String()
}

// questionPrefixes lead knowledge-backed answers according to the
// interrogative form of the message.
var questionPrefixes = map[classifier.QuestionType]string{
	classifier.QuestionDefinition: "Here's what you need to know: ",
	classifier.QuestionProcess:    "Here's how it works: ",
	classifier.QuestionReasoning:  "Here's the reasoning behind it: ",
	classifier.QuestionTemporal:   "Regarding the timing: ",
	classifier.QuestionLocation:   "As for where: ",
	classifier.QuestionPerson:     "About who is involved: ",
	classifier.QuestionYesNo:      "Short answer first, then the detail: ",
	classifier.QuestionChoice:     "Let's weigh the options: ",
	classifier.QuestionOpenEnded:  "Happy to dig into that: ",
}

func (g *Generator) information(res classifier.Result, snap conversation.Snapshot) string {
	entry, ok := g.findEntry(res)
	if !ok {
		return knowledgeAreasTemplate
	}
	return questionPrefixes[res.QuestionType] + entry.Content + closerFor(snap.Level) + g.relatedSuffix(entry.Topic)
}

func (g *Generator) question(res classifier.Result, snap conversation.Snapshot) string {
	if entry, ok := g.findEntry(res); ok {
		return questionPrefixes[res.QuestionType] + entry.Content + closerFor(snap.Level)
	}
	switch res.QuestionType {
	case classifier.QuestionYesNo:
		return "That depends on a few specifics. Could you give me a bit more context so I can give you a definite answer?"
	case classifier.QuestionChoice:
		return "Both options have merit. Tell me more about your situation and constraints, and I'll help you pick the better fit."
	case classifier.QuestionNone:
		return g.contextual(res, snap)
	default:
		return "Good question! I want to make sure I answer the right thing. Could you rephrase it with a little more detail, or tell me what prompted it?"
	}
}

// contextual is the last-resort generator: continue a recent topic if
// the message shares one, echo the leading keyword if not, otherwise
// offer the capability list.
func (g *Generator) contextual(res classifier.Result, snap conversation.Snapshot) string {
	if topic := sharedTopic(res, snap); topic != "" {
		return fmt.Sprintf("We've been talking about **%s**, and this seems related. Building on that, what would you like to explore next? I can go deeper, compare it with alternatives, or suggest practical next steps.", topic)
	}
	if len(res.Keywords) > 0 {
		prefix := ""
		if res.SentimentCategory == nlp.SentimentNegative {
			prefix = "I hear you. "
		}
		return fmt.Sprintf("%sI find your point about \"%s\" interesting! Could you tell me more about what you'd like to know or discuss? I'm here to help with explanations, problem solving, or just a good conversation.", prefix, res.Keywords[0])
	}
	return genericFallbackTemplate
}

func sharedTopic(res classifier.Result, snap conversation.Snapshot) string {
	for _, recent := range snap.RecentTopics {
		for _, topic := range res.Topics {
			if strings.EqualFold(recent, topic) {
				return recent
			}
		}
		for _, kw := range res.Keywords {
			if strings.EqualFold(recent, kw) {
				return recent
			}
		}
	}
	return ""
}
