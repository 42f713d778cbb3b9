package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aruiz/qagate/internal/responselog"
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "Inspect the persisted response log",
}

var responsesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list responses: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No responses logged yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-7s  %-6s  %s\n",
			"ID", "Timestamp", "Overall", "Pass", "Question")
		fmt.Println(strings.Repeat("─", 100))

		for _, rec := range records {
			overall := "-"
			pass := "-"
			if rec.Scores != nil {
				overall = fmt.Sprintf("%.3f", rec.Scores.OverallScore)
				pass = "✗"
				if rec.Scores.PassesThreshold {
					pass = "✓"
				}
			}
			question := rec.Question
			if len(question) > 40 {
				question = question[:40] + "..."
			}
			fmt.Printf("%-36s  %-19s  %-7s  %-6s  %s\n",
				rec.ID,
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				overall,
				pass,
				question,
			)
		}
		return nil
	},
}

var responsesViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one logged response as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		rec, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load response: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no response with id %q", args[0])
		}

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

var responsesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the response log",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		sum, err := store.Summarize(cmd.Context())
		if err != nil {
			return fmt.Errorf("summarize responses: %w", err)
		}

		fmt.Printf("Responses: %d\n", sum.TotalResponses)
		fmt.Printf("Passed:    %d\n", sum.Passed)
		fmt.Printf("Avg score: %.3f\n", sum.AverageOverall)
		fmt.Printf("Log file:  %s\n", sum.Path)
		return nil
	},
}

func openStore(cmd *cobra.Command) (*responselog.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve response log path: %w", err)
	}
	store, err := responselog.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open response log: %w", err)
	}
	return store, nil
}

func init() {
	responsesListCmd.Flags().Int("limit", 20, "Maximum number of responses to show")

	responsesCmd.AddCommand(responsesListCmd)
	responsesCmd.AddCommand(responsesViewCmd)
	responsesCmd.AddCommand(responsesSummaryCmd)
}
