package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tobichat",
	Short: "Tobi AI — a rule-based chat assistant with an optional LLM backend",
	Long: `Tobi AI is a conversational assistant built around a local
text-classification pipeline: intents, topics, sentiment, and expertise
tracking, answered from a built-in knowledge catalog. Point it at an LLM
backend and it answers remotely, falling back to the local pipeline when
the backend is unavailable.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".tobichat.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
