package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the MindCare support assistant in the terminal",
	Long: `Starts an interactive chat with the MindCare assistant. Type /reset to start
over, /quick to list suggested prompts and /exit to leave.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().Bool("no-delay", false, "reply immediately instead of pausing like the web chat")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	delay := cfg.Chat.ReplyDelay()
	if noDelay, _ := cmd.Flags().GetBool("no-delay"); noDelay {
		delay = 0
	}

	conv := chatbot.NewConversation(chatbot.NewEngine(), delay)
	fmt.Println(chatbot.Disclaimer)
	fmt.Println()
	printChatMessage(conv.Messages()[0])

	for {
		prompt := promptui.Prompt{Label: "You"}
		text, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading message: %w", err)
		}

		switch strings.TrimSpace(text) {
		case "":
			continue
		case "/exit", "/quit":
			return nil
		case "/reset":
			conv.Reset()
			printChatMessage(conv.Messages()[0])
			continue
		case "/quick":
			for _, q := range chatbot.QuickResponses {
				fmt.Printf("  • %s\n", q)
			}
			continue
		}

		if delay > 0 {
			fmt.Println("MindCare AI is typing...")
		}
		_, reply, err := conv.Send(cmd.Context(), text)
		if err != nil {
			return err
		}
		printChatMessage(reply)
	}
}

func printChatMessage(m chatbot.Message) {
	label := "MindCare AI"
	switch m.Kind {
	case chatbot.KindCrisis:
		label += " [Crisis Support]"
	case chatbot.KindSuggestion:
		label += " [Coping Strategy]"
	}
	fmt.Printf("%s (%s): %s\n\n", label, m.Timestamp.Format("15:04"), m.Text)
}
