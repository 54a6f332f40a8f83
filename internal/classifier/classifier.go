package classifier

import (
	"strings"

	"github.com/alukotobi/tobichat/internal/nlp"
)

// Tuning holds the empirical constants of the classifier. The values are
// carried over from the original rule set; they are exposed as a struct so
// callers can pin or adjust them without touching the rule tables.
type Tuning struct {
	// SimilarityThreshold is the minimum Jaccard similarity the fallback
	// pass must clear before its best match is accepted.
	SimilarityThreshold float64
	// BaseConfidence is the starting confidence of every classification.
	BaseConfidence float64
	// IntentBoost is added when the resolved intent is in the
	// high-confidence subset (greeting, explanation, help).
	IntentBoost float64
	// TopicBoost is added when at least one topic was extracted.
	TopicBoost float64
	// QuestionBoost is added when the message contains a question mark.
	QuestionBoost float64
	// MaxKeywords bounds the keyword list.
	MaxKeywords int
	// AdvancedLength and IntermediateLength are the message lengths (in
	// characters) beyond which complexity is bumped a tier.
	AdvancedLength     int
	IntermediateLength int
}

// DefaultTuning returns the constants the original rule set shipped with.
func DefaultTuning() Tuning {
	return Tuning{
		SimilarityThreshold: 0.2,
		BaseConfidence:      0.5,
		IntentBoost:         0.3,
		TopicBoost:          0.2,
		QuestionBoost:       0.1,
		MaxKeywords:         10,
		AdvancedLength:      150,
		IntermediateLength:  75,
	}
}

// highConfidenceIntents get the intent confidence boost.
var highConfidenceIntents = map[Intent]bool{
	IntentGreeting:    true,
	IntentExplanation: true,
	IntentHelp:        true,
}

// Classifier runs the intent cascade over incoming messages.
type Classifier struct {
	tuning Tuning
}

// New creates a classifier with the given tuning.
func New(tuning Tuning) *Classifier {
	return &Classifier{tuning: tuning}
}

// Classify analyzes text together with its lexical features and the prior
// session state. It always returns a fully populated Result; empty input
// resolves to the general intent with base confidence, never an error.
func (c *Classifier) Classify(text string, feats nlp.Features, sentiment float64, prior Prior) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	topics := c.extractTopics(lower, feats)
	keywords := c.extractKeywords(feats)
	intent := c.classifyIntent(lower)

	return Result{
		Intent:            intent,
		Entities:          feats.Entities,
		Topics:            topics,
		Keywords:          keywords,
		Sentiment:         sentiment,
		SentimentCategory: nlp.Categorize(sentiment),
		QuestionType:      questionType(lower),
		Complexity:        c.complexity(lower, keywords),
		Confidence:        c.confidence(lower, intent, topics),
		IsFollowUp:        isFollowUp(lower, prior),
		RequiresContext:   requiresContext(lower, topics, prior),
	}
}

// classifyIntent walks the rule cascade in priority order; the first rule
// with a matching pattern wins. When nothing matches, a Jaccard-similarity
// pass over every known phrase decides, subject to the threshold.
func (c *Classifier) classifyIntent(lower string) Intent {
	if lower == "" {
		return IntentGeneral
	}

	for _, r := range rules {
		for _, expr := range r.exprs {
			if expr.MatchString(lower) {
				return r.intent
			}
		}
		for _, phrase := range r.phrases {
			if containsPhrase(lower, phrase) {
				return r.intent
			}
		}
	}

	if intent, score := c.bestSimilarity(lower); score > c.tuning.SimilarityThreshold {
		return intent
	}
	return IntentGeneral
}

// bestSimilarity computes the maximum word-set Jaccard similarity between
// the message and every phrase across all rules.
func (c *Classifier) bestSimilarity(lower string) (Intent, float64) {
	msgWords := wordSet(lower)
	best := IntentGeneral
	bestScore := 0.0
	for _, r := range rules {
		for _, phrase := range r.phrases {
			if score := jaccard(msgWords, wordSet(phrase)); score > bestScore {
				bestScore = score
				best = r.intent
			}
		}
	}
	return best, bestScore
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range nlp.Tokenize(s) {
		set[w] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// containsPhrase reports whether phrase occurs in text on word boundaries,
// so the "hi" trigger does not fire inside "this".
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		if boundaryAt(text, start-1) && boundaryAt(text, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryAt(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	ch := text[i]
	return !(ch >= 'a' && ch <= 'z') && !(ch >= '0' && ch <= '9')
}

// extractTopics unions entity-derived topics, technical-term hits, and
// conceptual-category hits, deduplicated in order of appearance.
func (c *Classifier) extractTopics(lower string, feats nlp.Features) []string {
	var topics []string
	seen := make(map[string]bool)
	add := func(topic string) {
		if topic != "" && !seen[topic] {
			seen[topic] = true
			topics = append(topics, topic)
		}
	}

	for _, t := range feats.Topics {
		add(strings.ToLower(t))
	}
	for _, term := range technicalTerms {
		if containsPhrase(lower, term) {
			add(term)
		}
	}
	for _, cat := range conceptualCategories {
		if cat.expr.MatchString(lower) {
			add(cat.topic)
		}
	}
	return topics
}

// extractKeywords is the deduplicated union of nouns, verbs, and adjectives
// longer than two characters, truncated to the configured bound.
func (c *Classifier) extractKeywords(feats nlp.Features) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, group := range [][]string{feats.Nouns, feats.Verbs, feats.Adjectives} {
		for _, w := range group {
			w = strings.ToLower(w)
			if len(w) > 2 && !seen[w] {
				seen[w] = true
				keywords = append(keywords, w)
			}
		}
	}
	if len(keywords) > c.tuning.MaxKeywords {
		keywords = keywords[:c.tuning.MaxKeywords]
	}
	return keywords
}

// complexity assigns the tier from keyword vocabulary hits and raw length.
func (c *Classifier) complexity(lower string, keywords []string) Complexity {
	matches := func(terms []string) bool {
		for _, kw := range keywords {
			for _, term := range terms {
				if strings.Contains(kw, term) {
					return true
				}
			}
		}
		return false
	}

	if matches(AdvancedTerms) || len(lower) > c.tuning.AdvancedLength {
		return ComplexityAdvanced
	}
	if matches(IntermediateTerms) || len(lower) > c.tuning.IntermediateLength {
		return ComplexityIntermediate
	}
	return ComplexityBasic
}

// questionType runs the fixed prefix checks in priority order.
func questionType(lower string) QuestionType {
	switch {
	case strings.HasPrefix(lower, "what"):
		return QuestionDefinition
	case strings.HasPrefix(lower, "how"):
		return QuestionProcess
	case strings.HasPrefix(lower, "why"):
		return QuestionReasoning
	case strings.HasPrefix(lower, "when"):
		return QuestionTemporal
	case strings.HasPrefix(lower, "where"):
		return QuestionLocation
	case strings.HasPrefix(lower, "who"):
		return QuestionPerson
	}
	for _, aux := range []string{"is ", "are ", "do ", "does ", "can ", "will ", "would ", "could ", "should "} {
		if strings.HasPrefix(lower, aux) {
			return QuestionYesNo
		}
	}
	if strings.Contains(lower, " or ") {
		return QuestionChoice
	}
	if strings.Contains(lower, "?") {
		return QuestionOpenEnded
	}
	return QuestionNone
}

func isFollowUp(lower string, prior Prior) bool {
	for _, ind := range followUpIndicators {
		if containsPhrase(lower, ind) {
			return true
		}
	}
	return prior.TurnCount > 0
}

func requiresContext(lower string, topics []string, prior Prior) bool {
	for _, w := range anaphoraWords {
		if containsPhrase(lower, w) {
			return true
		}
	}
	for _, topic := range topics {
		for _, prev := range prior.SessionTopics {
			if topic == prev {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) confidence(lower string, intent Intent, topics []string) float64 {
	confidence := c.tuning.BaseConfidence
	if highConfidenceIntents[intent] {
		confidence += c.tuning.IntentBoost
	}
	if len(topics) > 0 {
		confidence += c.tuning.TopicBoost
	}
	if strings.Contains(lower, "?") {
		confidence += c.tuning.QuestionBoost
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
