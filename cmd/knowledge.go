package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alukotobi/tobichat/internal/knowledge"
)

var (
	knowledgeLimit    int
	knowledgeSemantic bool
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge [query]",
	Short: "Search the assistant's knowledge catalog",
	Long: `Searches the built-in knowledge catalog. By default the search is
lexical; with --semantic an embedding index is built over the catalog and
queried by meaning, which needs an embedding backend.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		kb := knowledge.NewBase()

		var entries []knowledge.Entry
		if knowledgeSemantic {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			embedder, err := createEmbedderFromConfig(cfg)
			if err != nil {
				return err
			}
			idx, err := knowledge.NewSemanticIndex(cmd.Context(), kb, embedder)
			if err != nil {
				return fmt.Errorf("building semantic index: %w", err)
			}
			entries, err = idx.Search(cmd.Context(), query, knowledgeLimit)
			if err != nil {
				return fmt.Errorf("semantic search: %w", err)
			}
		} else {
			entries = kb.Search(query)
			if len(entries) > knowledgeLimit {
				entries = entries[:knowledgeLimit]
			}
		}

		if len(entries) == 0 {
			fmt.Printf("No entries match %q.\n", query)
			return nil
		}

		for _, e := range entries {
			fmt.Printf("# %s  (%s, %s)\n\n%s\n\n", e.Topic, e.Category, e.Difficulty, e.Content)
			if related := kb.Related(e.Topic, 3); len(related) > 0 {
				fmt.Printf("Related: %v\n\n", related)
			}
		}
		return nil
	},
}

func init() {
	knowledgeCmd.Flags().IntVar(&knowledgeLimit, "limit", 3, "maximum entries to print")
	knowledgeCmd.Flags().BoolVar(&knowledgeSemantic, "semantic", false, "search by meaning using embeddings")
	rootCmd.AddCommand(knowledgeCmd)
}
