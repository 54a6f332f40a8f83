package responder

import (
	"strings"
	"testing"

	"github.com/alukotobi/tobichat/internal/classifier"
	"github.com/alukotobi/tobichat/internal/conversation"
	"github.com/alukotobi/tobichat/internal/knowledge"
	"github.com/alukotobi/tobichat/internal/nlp"
)

func newTestGenerator(seed int64) *Generator {
	return NewSeeded(knowledge.NewBase(), seed)
}

func beginnerSnap() conversation.Snapshot {
	return conversation.Snapshot{Level: conversation.LevelBeginner}
}

func TestGreetingDeterministicForSeed(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentGreeting}
	first := newTestGenerator(42).Generate("hello", res, beginnerSnap())
	second := newTestGenerator(42).Generate("hello", res, beginnerSnap())
	if first != second {
		t.Fatalf("same seed produced different greetings:\n%q\n%q", first, second)
	}
	found := false
	for _, tmpl := range greetingTemplates {
		if first == tmpl {
			found = true
		}
	}
	if !found {
		t.Errorf("greeting %q is not one of the greeting templates", first)
	}
}

func TestDeveloperInfoNamesCreator(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentDeveloperInfo}
	got := newTestGenerator(1).Generate("who created you", res, beginnerSnap())
	if !strings.Contains(got, "Aluko Oluwatobi") {
		t.Errorf("developer info response missing creator name: %q", got)
	}
}

func TestComparisonCoversBothSides(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentComparison}
	got := newTestGenerator(1).Generate("React vs Vue", res, beginnerSnap())
	for _, want := range []string{"React", "Vue", "Larger ecosystem", "Gentler learning curve", "Bottom line"} {
		if !strings.Contains(got, want) {
			t.Errorf("comparison missing %q in: %q", want, got)
		}
	}
}

func TestComparisonSubjectOrderIrrelevant(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentComparison}
	got := newTestGenerator(1).Generate("vue versus react, which one?", res, beginnerSnap())
	if !strings.Contains(got, "Larger ecosystem") || !strings.Contains(got, "Gentler learning curve") {
		t.Errorf("reversed subject order missed the canned table: %q", got)
	}
}

func TestComparisonOrPattern(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentComparison}
	got := newTestGenerator(1).Generate("should I learn python or javascript", res, beginnerSnap())
	if !strings.Contains(got, "Python") || !strings.Contains(got, "JavaScript") {
		t.Errorf("or-pattern comparison missing a side: %q", got)
	}
}

func TestComparisonAsksForSubjects(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentComparison}
	got := newTestGenerator(1).Generate("please compare them", res, beginnerSnap())
	if !strings.Contains(got, "meaningful comparison") {
		t.Errorf("expected clarifying prompt, got: %q", got)
	}
}

func TestComparisonUnknownSubjects(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentComparison}
	got := newTestGenerator(1).Generate("erlang vs haskell", res, beginnerSnap())
	if !strings.Contains(got, "erlang") || !strings.Contains(got, "haskell") {
		t.Errorf("unknown-subject comparison should echo both subjects: %q", got)
	}
}

func TestExplanationInterpolatesKnowledge(t *testing.T) {
	res := classifier.Result{
		Intent: classifier.IntentExplanation,
		Topics: []string{"machine_learning"},
	}
	got := newTestGenerator(1).Generate("explain machine learning", res, beginnerSnap())
	for _, want := range []string{"subset of AI", "Related concepts", "In simple terms", "go deeper"} {
		if !strings.Contains(got, want) {
			t.Errorf("explanation missing %q in: %q", want, got)
		}
	}
}

func TestExplanationWithoutTopicAsksForOne(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentExplanation}
	got := newTestGenerator(1).Generate("explain it", res, beginnerSnap())
	if !strings.Contains(got, "which particular aspect") {
		t.Errorf("expected clarification prompt, got: %q", got)
	}
}

func TestExplanationUnknownTopic(t *testing.T) {
	res := classifier.Result{
		Intent: classifier.IntentExplanation,
		Topics: []string{"quantum_chromodynamics"},
	}
	got := newTestGenerator(1).Generate("explain quantum chromodynamics", res, beginnerSnap())
	if !strings.Contains(got, "quantum_chromodynamics") {
		t.Errorf("unknown-topic explanation should echo the topic: %q", got)
	}
}

func TestCapabilitiesAdaptToLevel(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentCapabilities}
	g := newTestGenerator(1)

	beginner := g.Generate("what can you do", res, beginnerSnap())
	if !strings.Contains(beginner, "simple terms") {
		t.Errorf("beginner capabilities missing beginner phrasing: %q", beginner)
	}

	advanced := g.Generate("what can you do", res, conversation.Snapshot{Level: conversation.LevelAdvanced})
	if !strings.Contains(advanced, "Research-Level") {
		t.Errorf("advanced capabilities missing advanced phrasing: %q", advanced)
	}
}

func TestTechnicalCapsAtTwoEntries(t *testing.T) {
	res := classifier.Result{
		Intent:   classifier.IntentTechnical,
		Keywords: []string{"python", "javascript"},
	}
	got := newTestGenerator(1).Generate("how do python and javascript runtimes differ", res, beginnerSnap())
	if !strings.Contains(got, "Python is a high-level") {
		t.Errorf("technical response missing first entry: %q", got)
	}
	if !strings.Contains(got, "Also relevant") || !strings.Contains(got, "JavaScript is a versatile") {
		t.Errorf("technical response missing second entry: %q", got)
	}
}

func TestHelpUsesKnowledgeEntry(t *testing.T) {
	res := classifier.Result{
		Intent: classifier.IntentHelp,
		Topics: []string{"git"},
	}
	got := newTestGenerator(1).Generate("help me with git", res, beginnerSnap())
	if !strings.Contains(got, "distributed version control") {
		t.Errorf("help response missing entry content: %q", got)
	}
}

func TestLearningPathForLevel(t *testing.T) {
	res := classifier.Result{
		Intent: classifier.IntentLearning,
		Topics: []string{"programming"},
	}
	got := newTestGenerator(1).Generate("I want to learn programming", res, beginnerSnap())
	if !strings.Contains(got, "Beginner Path") || !strings.Contains(got, "Learning Tips") {
		t.Errorf("learning response missing path or tips: %q", got)
	}
}

func TestProblemSolvingAcknowledgesFrustration(t *testing.T) {
	res := classifier.Result{
		Intent:            classifier.IntentProblemSolving,
		SentimentCategory: nlp.SentimentNegative,
	}
	got := newTestGenerator(1).Generate("this broken build is driving me crazy", res, beginnerSnap())
	if !strings.Contains(got, "frustrating") {
		t.Errorf("negative-sentiment problem solving missing empathy: %q", got)
	}
	if !strings.Contains(got, "solve this together") {
		t.Errorf("problem solving missing structured prompt: %q", got)
	}
}

func TestQuestionYesNoFallback(t *testing.T) {
	res := classifier.Result{
		Intent:       classifier.IntentQuestion,
		QuestionType: classifier.QuestionYesNo,
	}
	got := newTestGenerator(1).Generate("is it good", res, beginnerSnap())
	if !strings.Contains(got, "depends on a few specifics") {
		t.Errorf("yes/no fallback missing: %q", got)
	}
}

func TestContextualContinuesRecentTopic(t *testing.T) {
	res := classifier.Result{
		Intent: classifier.IntentGeneral,
		Topics: []string{"python"},
	}
	snap := conversation.Snapshot{
		Level:        conversation.LevelBeginner,
		RecentTopics: []string{"python"},
	}
	got := newTestGenerator(1).Generate("and then what", res, snap)
	if !strings.Contains(got, "We've been talking about **python**") {
		t.Errorf("contextual response should continue recent topic: %q", got)
	}
}

func TestContextualEchoesKeyword(t *testing.T) {
	res := classifier.Result{
		Intent:   classifier.IntentGeneral,
		Keywords: []string{"kubernetes"},
	}
	got := newTestGenerator(1).Generate("kubernetes though", res, beginnerSnap())
	if !strings.Contains(got, `"kubernetes"`) {
		t.Errorf("contextual response should echo leading keyword: %q", got)
	}
}

func TestContextualGenericFallback(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentGeneral}
	got := newTestGenerator(1).Generate("", res, beginnerSnap())
	if !strings.Contains(got, "What would you like to explore?") {
		t.Errorf("empty analysis should fall back to capability list: %q", got)
	}
}

func TestInformationWithoutMatchListsKnowledgeAreas(t *testing.T) {
	res := classifier.Result{Intent: classifier.IntentInformation}
	got := newTestGenerator(1).Generate("tell me something", res, beginnerSnap())
	if !strings.Contains(got, "extensive knowledge") {
		t.Errorf("information fallback missing knowledge areas: %q", got)
	}
}

func TestExtractComparisonSubjects(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"react vs vue", []string{"react", "vue"}},
		{"Python versus JavaScript", []string{"python", "javascript"}},
		{"django or flask", []string{"django", "flask"}},
		{"no comparison here", nil},
	}
	for _, tt := range tests {
		got := extractComparisonSubjects(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("extractComparisonSubjects(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("extractComparisonSubjects(%q) = %v, want %v", tt.text, got, tt.want)
			}
		}
	}
}
