package knowledge

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/alukotobi/tobichat/internal/embeddings"
)

const collectionName = "knowledge"

// SemanticIndex is an optional vector index over the catalog. When an
// embedding backend is configured it lets the assistant find entries that
// share meaning with a query, not just substrings.
type SemanticIndex struct {
	base       *Base
	collection *chromem.Collection
}

// NewSemanticIndex embeds every catalog entry into an in-memory chromem
// collection. Indexing happens once, at construction.
func NewSemanticIndex(ctx context.Context, base *Base, embedder embeddings.Embedder) (*SemanticIndex, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, len(base.Entries()))
	for i, e := range base.Entries() {
		docs[i] = chromem.Document{
			ID:      e.Topic,
			Content: e.Content,
			Metadata: map[string]string{
				"category":   e.Category,
				"difficulty": string(e.Difficulty),
			},
		}
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return nil, fmt.Errorf("index knowledge entries: %w", err)
	}

	return &SemanticIndex{base: base, collection: col}, nil
}

// Search returns up to limit catalog entries ranked by semantic similarity
// to the query.
func (s *SemanticIndex) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 3
	}
	if count := s.collection.Count(); limit > count {
		if count == 0 {
			return nil, nil
		}
		limit = count
	}

	results, err := s.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("semantic query: %w", err)
	}

	byTopic := make(map[string]Entry, len(s.base.Entries()))
	for _, e := range s.base.Entries() {
		byTopic[e.Topic] = e
	}

	var matches []Entry
	for _, r := range results {
		if e, ok := byTopic[r.ID]; ok {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
