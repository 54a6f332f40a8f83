// Package classifier assigns an intent, topic set, question type, complexity
// tier, and confidence score to an incoming message using an ordered cascade
// of keyword and regex rules with a similarity-based fallback.
package classifier

import "github.com/alukotobi/tobichat/internal/nlp"

// Intent is the closed set of discrete message purposes the assistant
// understands. Every Intent has exactly one response generator.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentFarewell       Intent = "farewell"
	IntentGratitude      Intent = "gratitude"
	IntentDeveloperInfo  Intent = "developer_info"
	IntentCapabilities   Intent = "capabilities"
	IntentExplanation    Intent = "explanation_request"
	IntentHelp           Intent = "help_request"
	IntentComparison     Intent = "comparison_request"
	IntentLearning       Intent = "learning_request"
	IntentProblemSolving Intent = "problem_solving"
	IntentTechnical      Intent = "technical_question"
	IntentInformation    Intent = "information_seeking"
	IntentQuestion       Intent = "question"
	IntentGeneral        Intent = "general"
)

// Intents lists every intent in rule priority order.
var Intents = []Intent{
	IntentGreeting, IntentFarewell, IntentGratitude, IntentDeveloperInfo,
	IntentCapabilities, IntentExplanation, IntentHelp, IntentComparison,
	IntentLearning, IntentProblemSolving, IntentTechnical,
	IntentInformation, IntentQuestion, IntentGeneral,
}

// QuestionType tags the interrogative form of a message.
type QuestionType string

const (
	QuestionNone       QuestionType = ""
	QuestionDefinition QuestionType = "definition"
	QuestionProcess    QuestionType = "process"
	QuestionReasoning  QuestionType = "reasoning"
	QuestionTemporal   QuestionType = "temporal"
	QuestionLocation   QuestionType = "location"
	QuestionPerson     QuestionType = "person"
	QuestionYesNo      QuestionType = "yes_no"
	QuestionChoice     QuestionType = "choice"
	QuestionOpenEnded  QuestionType = "open_ended"
)

// Complexity is the coarse technical-depth estimate of a message.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// Result is the immutable analysis of a single message. It is owned by the
// turn that produced it and never mutated afterwards.
type Result struct {
	Intent            Intent
	Entities          []string
	Topics            []string
	Keywords          []string
	Sentiment         float64
	SentimentCategory nlp.SentimentCategory
	QuestionType      QuestionType
	Complexity        Complexity
	Confidence        float64
	IsFollowUp        bool
	RequiresContext   bool
}

// Prior carries the slice of session state the classifier consults:
// whether any turns exist yet and which topics the session has touched.
type Prior struct {
	TurnCount     int
	SessionTopics []string
}
