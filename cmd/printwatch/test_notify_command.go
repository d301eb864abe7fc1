package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"printwatch/internal/octoprint"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Ask the server plugin to emit a test notification",
		Long: "Sends the test_notification command to the configured plugin's " +
			"simple API. The notification itself, if the plugin emits one, " +
			"arrives through the normal push channel, not as a response to " +
			"this command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client := octoprint.NewClient(cfg)
			if err := client.SimpleAPICommand(cmd.Context(), cfg.Plugin.Identity, "test_notification"); err != nil {
				return fmt.Errorf("test notification request failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Test notification requested from %s\n", cfg.Plugin.Identity)
			return nil
		},
	}
}
