package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the wordscore server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return fmt.Errorf("server %s unreachable: %w", cfg.ServerURL, err)
			}
			result.Server = cfg.ServerURL

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			if result.Status != "ok" {
				return fmt.Errorf("server %s reports status %q", cfg.ServerURL, result.Status)
			}
			return nil
		},
	}
}
