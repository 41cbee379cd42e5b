package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sortd/internal/config"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/organize"
	"sortd/internal/preflight"
	"sortd/internal/runlock"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run SOURCE DEST",
		Short: "Organize files from SOURCE into category folders under DEST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}
			dest, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve destination: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, check := range preflight.CheckRun(source, dest) {
				if !check.Passed {
					fmt.Fprintf(out, "warning: %s: %s\n", check.Name, check.Detail)
				}
			}

			if !dryRun {
				lock, err := runlock.Acquire(cfg.Paths.DataDir, dest)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			mapping, err := ctx.extensionMap()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			runner, err := organize.NewRunner(source, dest, mapping, organize.Options{
				DefaultCategory: cfg.Organize.DefaultCategory,
				RenameAttempts:  cfg.Organize.RenameAttempts,
				HashChunkBytes:  cfg.Organize.HashChunkBytes,
				DryRun:          dryRun,
			}, logger)
			if err != nil {
				return err
			}

			started := time.Now()
			summary, runErr := runner.Run(cmd.Context())
			finished := time.Now()

			if cfg.Journal.Enabled && !dryRun {
				if err := recordRun(cmd, cfg, journal.Record{
					StartedAt:  started,
					FinishedAt: finished,
					SourceDir:  source,
					DestDir:    dest,
					Summary:    summary,
				}); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: record run history: %v\n", err)
				}
			}

			printSummary(cmd, summary)
			return runErr
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would happen without moving files")
	return cmd
}

func recordRun(cmd *cobra.Command, cfg *config.Config, rec journal.Record) error {
	store, err := journal.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.RecordRun(cmd.Context(), rec)
	return err
}

func printSummary(cmd *cobra.Command, summary organize.Summary) {
	out := cmd.OutOrStdout()
	if summary.DryRun {
		fmt.Fprintln(out, "Dry run: no files were moved.")
	}
	rows := [][]string{
		{"Scanned", strconv.Itoa(summary.Scanned)},
		{"Ignored", strconv.Itoa(summary.Ignored)},
		{"Considered", strconv.Itoa(summary.Considered)},
		{"Moved", strconv.Itoa(summary.Moved)},
		{"Duplicates", strconv.Itoa(summary.Duplicates)},
		{"Errors", strconv.Itoa(summary.Errors)},
	}
	if unaccounted := summary.Unaccounted(); unaccounted != 0 {
		rows = append(rows, []string{"Unaccounted", strconv.Itoa(unaccounted)})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Counter", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
}
