package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/alukotobi/tobichat/internal/assistant"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with Tobi AI in the terminal",
	Long: `Starts an interactive terminal conversation. Type "exit" or "quit"
(or press Ctrl-C) to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		assist, err := buildAssistant(cfg)
		if err != nil {
			return err
		}

		if assist.RemoteEnabled() {
			fmt.Printf("Chatting via %s (%s), local pipeline on standby.\n\n", cfg.Provider, cfg.Model)
		} else {
			fmt.Println("Chatting with the local pipeline.")
			fmt.Println()
		}

		sess := assistant.NewSession()
		prompt := promptui.Prompt{Label: "you"}

		for {
			text, err := prompt.Run()
			if err != nil {
				// Ctrl-C or Ctrl-D ends the conversation.
				fmt.Println("\nGoodbye!")
				return nil
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			if text == "exit" || text == "quit" {
				fmt.Println("Goodbye!")
				return nil
			}

			reply := assist.ProcessMessage(cmd.Context(), sess, text)
			fmt.Printf("\nTobi: %s\n", reply.Text)
			if verbose {
				fmt.Printf("      [intent=%s confidence=%.2f sentiment=%s complexity=%s]\n",
					reply.Analysis.Intent, reply.Analysis.Confidence,
					reply.Analysis.SentimentCategory, reply.Analysis.Complexity)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
