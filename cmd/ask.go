package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and score the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		ev, err := p.evaluate(cmd.Context(), question)
		if err != nil {
			return fmt.Errorf("evaluate question: %w", err)
		}

		fmt.Printf("Question: %s\n\n", question)
		printBreakdown(ev)
		return nil
	},
}
