// Package embeddings supplies text-embedding backends for the optional
// semantic knowledge-base index.
package embeddings

import (
	"context"

	chromem "github.com/philippgille/chromem-go"
)

// Embedder generates vector embeddings for texts.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Name returns the identifier of the embedding model.
	Name() string
}

// ToChromemFunc adapts an Embedder to the single-text function chromem-go
// expects.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		results, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, nil
		}
		return results[0], nil
	}
}
