package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aruiz/qagate/internal/responselog"
)

var rootCmd = &cobra.Command{
	Use:   "qagate",
	Short: "Quality gate for a conversational QA endpoint",
	Long: "qagate fetches answers from a question-answering API and scores them on\n" +
		"structural validity, content quality, and semantic relevance, producing a\n" +
		"pass/fail verdict with a full score breakdown.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the response log database (overrides QAGATE_DB)")
	rootCmd.PersistentFlags().Bool("mock", false, "Use the canned answer client instead of the real endpoint")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(suiteCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(responsesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the response log path using --db flag (highest
// priority), then QAGATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, responselog.EnsureDir(p)
	}
	return responselog.DefaultDBPath()
}
