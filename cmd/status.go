package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aruiz/qagate/internal/chatbot"
	"github.com/aruiz/qagate/internal/config"
	"github.com/aruiz/qagate/internal/responselog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and endpoint health",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		if useMock, _ := cmd.Flags().GetBool("mock"); useMock {
			cfg.Chatbot.UseMock = true
		}

		fmt.Println("Configuration")
		fmt.Printf("  API URL:            %s\n", cfg.Chatbot.BaseURL)
		fmt.Printf("  Timeout:            %s\n", cfg.Chatbot.Timeout)
		fmt.Printf("  Retries:            %d\n", cfg.Chatbot.MaxRetries)
		fmt.Printf("  Mock transport:     %v\n", cfg.Chatbot.UseMock)
		fmt.Printf("  Quality threshold:  %.2f\n", cfg.Quality.Threshold)
		fmt.Printf("  Weights:            structural=%.2f content=%.2f semantic=%.2f\n",
			cfg.Quality.Weights.Structural, cfg.Quality.Weights.Content, cfg.Quality.Weights.Semantic)
		fmt.Printf("  Embedding provider: %s\n", cfg.Embedding.Provider)

		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			fmt.Printf("  Response log:       %s\n", dbPath)
			if store, err := responselog.Open(dbPath); err == nil {
				if sum, err := store.Summarize(cmd.Context()); err == nil {
					fmt.Printf("  Logged responses:   %d (%d passed)\n", sum.TotalResponses, sum.Passed)
				}
				store.Close()
			}
		}

		fmt.Println()
		fmt.Print("Endpoint health: ")
		client := chatbot.New(cfg.Chatbot)
		defer client.Close()

		if client.HealthCheck(cmd.Context()) {
			fmt.Println(passStyle.Render("OK"))
		} else {
			fmt.Println(failStyle.Render("UNREACHABLE"))
		}
		return nil
	},
}
