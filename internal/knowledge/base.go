package knowledge

import "strings"

// Base is the queryable knowledge catalog.
type Base struct {
	entries []Entry
	related map[string][]string
}

// NewBase loads the built-in catalog.
func NewBase() *Base {
	return &Base{entries: entries, related: relatedConcepts}
}

// Entries returns the full catalog.
func (b *Base) Entries() []Entry { return b.entries }

// Search returns entries whose topic, any keyword, or content contains the
// query, case-insensitively. Topic matches rank before keyword matches,
// which rank before content matches.
func (b *Base) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var byTopic, byKeyword, byContent []Entry
	for _, e := range b.entries {
		switch {
		case strings.Contains(strings.ToLower(e.Topic), q):
			byTopic = append(byTopic, e)
		case keywordContains(e.Keywords, q):
			byKeyword = append(byKeyword, e)
		case strings.Contains(strings.ToLower(e.Content), q):
			byContent = append(byContent, e)
		}
	}
	matches := append(byTopic, byKeyword...)
	return append(matches, byContent...)
}

func keywordContains(keywords []string, q string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// ByKeywords returns entries where any query keyword and any entry keyword
// contain each other in either direction.
func (b *Base) ByKeywords(keywords []string) []Entry {
	var matches []Entry
	for _, e := range b.entries {
		if keywordOverlap(keywords, e.Keywords) {
			matches = append(matches, e)
		}
	}
	return matches
}

func keywordOverlap(query, entry []string) bool {
	for _, q := range query {
		q = strings.ToLower(q)
		if q == "" {
			continue
		}
		for _, k := range entry {
			k = strings.ToLower(k)
			if strings.Contains(k, q) || strings.Contains(q, k) {
				return true
			}
		}
	}
	return false
}

// ByCategory returns entries in the given category.
func (b *Base) ByCategory(category string) []Entry {
	var matches []Entry
	for _, e := range b.entries {
		if e.Category == category {
			matches = append(matches, e)
		}
	}
	return matches
}

// Related returns up to limit concepts related to topic, or nil if the
// topic is not in the concept graph.
func (b *Base) Related(topic string, limit int) []string {
	key := strings.ReplaceAll(strings.ToLower(topic), "_", " ")
	related := b.related[key]
	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}
