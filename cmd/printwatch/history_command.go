package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"printwatch/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently dispatched notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled in the configuration")
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No notifications recorded yet.")
				return nil
			}

			fmt.Fprint(out, renderHistory(entries, isTerminal(out)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}

func renderHistory(entries []history.Entry, terminal bool) string {
	if terminal {
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, []string{
				entry.ReceivedAt.Local().Format("2006-01-02 15:04:05"),
				entry.Sender,
				entry.Title,
				entry.Body,
			})
		}
		return renderTable([]string{"Received", "Sender", "Title", "Body"}, rows) + "\n"
	}

	var plain string
	for _, entry := range entries {
		plain += fmt.Sprintf("%s\t%s\t%s\t%s\n",
			entry.ReceivedAt.UTC().Format(time.RFC3339),
			entry.Sender,
			entry.Title,
			entry.Body,
		)
	}
	return plain
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
