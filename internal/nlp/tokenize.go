package nlp

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Tokenize lowercases text and splits it on whitespace and punctuation.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// Stem reduces a word to its Porter-style stem. Words the stemmer cannot
// handle are returned unchanged.
func Stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil || stemmed == "" {
		return strings.ToLower(word)
	}
	return stemmed
}

// Stems tokenizes text and stems every token.
func Stems(text string) []string {
	tokens := Tokenize(text)
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = Stem(tok)
	}
	return stems
}
