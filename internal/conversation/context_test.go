package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/alukotobi/tobichat/internal/classifier"
)

func TestHistoryCap(t *testing.T) {
	c := NewContext()
	for i := 0; i < 25; i++ {
		c.Record(Turn{
			UserText:  fmt.Sprintf("message %d", i),
			Timestamp: time.Now(),
		})
	}
	if c.TurnCount() != HistoryCap {
		t.Fatalf("history length = %d, want %d", c.TurnCount(), HistoryCap)
	}

	recent := c.RecentHistory(HistoryCap)
	// The 10 most recent turns, oldest first.
	for i, turn := range recent {
		want := fmt.Sprintf("message %d", 15+i)
		if turn.UserText != want {
			t.Errorf("history[%d] = %q, want %q", i, turn.UserText, want)
		}
	}
}

func TestRecentHistoryBounds(t *testing.T) {
	c := NewContext()
	if got := c.RecentHistory(3); got != nil {
		t.Errorf("empty context history = %v, want nil", got)
	}
	c.Record(Turn{UserText: "only one"})
	if got := c.RecentHistory(5); len(got) != 1 {
		t.Errorf("history = %d turns, want 1", len(got))
	}
}

func TestTopicCapFIFO(t *testing.T) {
	c := NewContext()
	for i := 0; i < TopicCap+5; i++ {
		c.Record(Turn{Topics: []string{fmt.Sprintf("topic-%d", i)}})
	}
	topics := c.Topics()
	if len(topics) != TopicCap {
		t.Fatalf("topic set size = %d, want %d", len(topics), TopicCap)
	}
	if topics[0] != "topic-5" {
		t.Errorf("oldest surviving topic = %q, want topic-5", topics[0])
	}
	if topics[len(topics)-1] != fmt.Sprintf("topic-%d", TopicCap+4) {
		t.Errorf("newest topic = %q", topics[len(topics)-1])
	}
}

func TestTopicDeduplication(t *testing.T) {
	c := NewContext()
	c.Record(Turn{Topics: []string{"react", "javascript"}})
	c.Record(Turn{Topics: []string{"react"}})
	if got := len(c.Topics()); got != 2 {
		t.Errorf("topic set size = %d, want 2", got)
	}
}

func TestExpertiseMonotonic(t *testing.T) {
	c := NewContext()
	var prev float64
	for i := 0; i < 30; i++ {
		c.UpdateExpertise([]string{"react"})
		score := c.Expertise("react")
		if score < prev {
			t.Fatalf("expertise decreased: %f -> %f", prev, score)
		}
		if score > 1.0 {
			t.Fatalf("expertise exceeded 1.0: %f", score)
		}
		prev = score
	}
	if c.Expertise("react") != 1.0 {
		t.Errorf("expertise after 30 mentions = %f, want 1.0", c.Expertise("react"))
	}
}

func TestExpertiseLevel(t *testing.T) {
	c := NewContext()
	if c.ExpertiseLevel() != LevelBeginner {
		t.Errorf("fresh context level = %s, want beginner", c.ExpertiseLevel())
	}

	// 9 mentions -> 0.45 average -> intermediate.
	for i := 0; i < 9; i++ {
		c.UpdateExpertise([]string{"go"})
	}
	if c.ExpertiseLevel() != LevelIntermediate {
		t.Errorf("level at 0.45 = %s, want intermediate", c.ExpertiseLevel())
	}

	// Push past 0.7 -> advanced.
	for i := 0; i < 10; i++ {
		c.UpdateExpertise([]string{"go"})
	}
	if c.ExpertiseLevel() != LevelAdvanced {
		t.Errorf("level at 0.95 = %s, want advanced", c.ExpertiseLevel())
	}
}

func TestInferLevel(t *testing.T) {
	tests := []struct {
		text string
		want Level
	}{
		{"how do I print hello world", LevelBeginner},
		{"which framework should I pick", LevelIntermediate},
		{"thoughts on the architecture and scalability", LevelAdvanced},
		{"", LevelBeginner},
	}
	for _, tt := range tests {
		if got := InferLevel(tt.text); got != tt.want {
			t.Errorf("InferLevel(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestAdaptStyle(t *testing.T) {
	c := NewContext()
	c.AdaptStyle(classifier.ComplexityAdvanced)
	if c.Style() != StyleTechnical {
		t.Errorf("style after advanced = %s, want technical", c.Style())
	}
	c.AdaptStyle(classifier.ComplexityIntermediate)
	if c.Style() != StyleTechnical {
		t.Errorf("intermediate complexity should not change style")
	}
	c.AdaptStyle(classifier.ComplexityBasic)
	if c.Style() != StyleCasual {
		t.Errorf("style after basic = %s, want casual", c.Style())
	}
}

func TestMemoryCapFIFO(t *testing.T) {
	c := NewContext()
	for i := 0; i < MemoryCap+10; i++ {
		c.Remember(fmt.Sprintf("interaction_%d", i), Interaction{UserText: "x"})
	}
	if c.MemorySize() != MemoryCap {
		t.Fatalf("memory size = %d, want %d", c.MemorySize(), MemoryCap)
	}
	if _, ok := c.Recall("interaction_0"); ok {
		t.Error("oldest interaction should have been evicted")
	}
	if _, ok := c.Recall(fmt.Sprintf("interaction_%d", MemoryCap+9)); !ok {
		t.Error("newest interaction missing")
	}
}

func TestSnapshotRecentTopics(t *testing.T) {
	c := NewContext()
	for _, topic := range []string{"a", "b", "c", "d", "e"} {
		c.Record(Turn{Topics: []string{topic}})
	}
	snap := c.Snapshot()
	if len(snap.RecentTopics) != 3 {
		t.Fatalf("recent topics = %d, want 3", len(snap.RecentTopics))
	}
	want := []string{"c", "d", "e"}
	for i, topic := range snap.RecentTopics {
		if topic != want[i] {
			t.Errorf("recent topic[%d] = %q, want %q", i, topic, want[i])
		}
	}
}
