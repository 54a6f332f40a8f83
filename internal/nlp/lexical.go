// Package nlp provides the shallow linguistic analysis the assistant runs on
// every incoming message: tokenization, part-of-speech based feature
// extraction, named-entity spotting, and lexicon-based sentiment scoring.
package nlp

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Features holds the shallow linguistic features extracted from one message.
// All fields are plain string slices; a field is empty (never nil-vs-empty
// significant) when the message contains nothing of that kind.
type Features struct {
	Entities   []string
	Nouns      []string
	Verbs      []string
	Adjectives []string
	Topics     []string
}

// Analyzer extracts Features from raw text using a statistical POS tagger
// and entity recognizer.
type Analyzer struct{}

// NewAnalyzer creates a lexical analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts linguistic features from text. It never fails: empty or
// symbol-only input, and any tagger error, degrade to an empty Features.
func (a *Analyzer) Analyze(text string) Features {
	if strings.TrimSpace(text) == "" {
		return Features{}
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return Features{}
	}

	var f Features
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if !isWord(word) {
			continue
		}
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			f.Nouns = append(f.Nouns, word)
		case strings.HasPrefix(tok.Tag, "VB"):
			f.Verbs = append(f.Verbs, word)
		case strings.HasPrefix(tok.Tag, "JJ"):
			f.Adjectives = append(f.Adjectives, word)
		}
	}

	for _, ent := range doc.Entities() {
		name := strings.TrimSpace(ent.Text)
		if len(name) > 1 {
			f.Entities = append(f.Entities, name)
			f.Topics = append(f.Topics, strings.ToLower(name))
		}
	}

	return f
}

func isWord(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			continue
		}
		if r == '\'' || r == '-' {
			continue
		}
		return false
	}
	return s != ""
}
