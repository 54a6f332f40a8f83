package classifier

import "regexp"

// technicalTerms is the static vocabulary matched as substrings when
// extracting topics from a message.
var technicalTerms = []string{
	"artificial intelligence", "ai", "machine learning", "ml", "deep learning",
	"neural networks", "nlp", "natural language processing", "computer vision",
	"javascript", "python", "react", "nodejs", "typescript", "html", "css",
	"algorithm", "data structure", "database", "api", "frontend", "backend",
	"web development", "software engineering", "programming", "coding",
	"data science", "statistics", "analytics", "visualization", "big data",
}

// conceptualCategories maps a topic label to the regex that signals it.
var conceptualCategories = []struct {
	topic string
	expr  *regexp.Regexp
}{
	{"programming concepts", regexp.MustCompile(`\b(function|variable|loop|condition|class|object)\b`)},
	{"learning", regexp.MustCompile(`\b(learn|teach|understand|explain|tutorial|guide)\b`)},
	{"problem solving", regexp.MustCompile(`\b(problem|solve|solution|fix|debug|error)\b`)},
}

// AdvancedTerms and IntermediateTerms drive both the per-message complexity
// tier and the context store's level inference; they are shared so the two
// estimates never disagree about what counts as deep.
var (
	AdvancedTerms = []string{
		"algorithm", "architecture", "optimization", "scalability",
		"complexity", "paradigm", "abstraction", "performance",
	}
	IntermediateTerms = []string{
		"framework", "library", "api", "database", "backend",
		"frontend", "deployment",
	}
)

// followUpIndicators are connectives that suggest the message continues an
// earlier thread.
var followUpIndicators = []string{
	"also", "additionally", "furthermore", "moreover", "what about",
	"how about", "and", "but", "however", "on the other hand",
}

// anaphoraWords are pronouns whose presence means the message cannot be
// understood without prior context.
var anaphoraWords = []string{
	"this", "that", "it", "they", "them", "these", "those",
}
