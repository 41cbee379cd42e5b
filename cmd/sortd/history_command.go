package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sortd/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent organize runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Run history is disabled; enable it under [journal] in the configuration.")
				return nil
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
					rec.SourceDir,
					rec.DestDir,
					strconv.Itoa(rec.Summary.Scanned),
					strconv.Itoa(rec.Summary.Moved),
					strconv.Itoa(rec.Summary.Duplicates),
					strconv.Itoa(rec.Summary.Errors),
				})
			}
			headers := []string{"Started", "Source", "Destination", "Scanned", "Moved", "Duplicates", "Errors"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
