package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// suiteQuestions is the canned verification set run against the endpoint.
var suiteQuestions = []string{
	"What is testing?",
	"What are the best practices for QA automation?",
	"Recommend me QA testing frameworks",
	"¿Cómo escribir tests unitarios en Python?",
	"¿Qué es mocking y cuándo usarlo?",
	"¿Qué es TDD y cómo implementarlo?",
}

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the verification question suite end to end",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		ctx := cmd.Context()
		passed := 0
		failed := 0

		for i, question := range suiteQuestions {
			fmt.Printf("[%d/%d] %s\n", i+1, len(suiteQuestions), question)

			ev, err := p.evaluate(ctx, question)
			if err != nil {
				failed++
				fmt.Printf("  %s %v\n\n", failStyle.Render("ERROR"), err)
				continue
			}

			printBreakdown(ev)
			fmt.Println()

			if ev.Scores.PassesThreshold && ev.Safety.Safe {
				passed++
			} else {
				failed++
			}
		}

		fmt.Printf("Suite: %d passed, %d failed (threshold %.2f)\n",
			passed, failed, p.engine.Threshold())
		if failed > 0 {
			return fmt.Errorf("%d of %d questions failed the quality gate", failed, len(suiteQuestions))
		}
		return nil
	},
}
