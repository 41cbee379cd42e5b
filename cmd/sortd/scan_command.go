package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sortd/internal/config"
	"sortd/internal/extmap"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var unmappedOnly bool

	cmd := &cobra.Command{
		Use:   "scan SOURCE",
		Short: "Preview which extensions a source tree contains and where they would go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}

			mapping, err := ctx.extensionMap()
			if err != nil {
				return err
			}

			counts, noExtension, err := countExtensions(source)
			if err != nil {
				return err
			}

			exts := make([]string, 0, len(counts))
			for ext := range counts {
				exts = append(exts, ext)
			}
			sort.Strings(exts)

			rows := make([][]string, 0, len(exts))
			for _, ext := range exts {
				category, mapped := mapping.Lookup(ext)
				if unmappedOnly && mapped {
					continue
				}
				target := category
				if !mapped {
					target = extmap.SuggestCategory(ext) + " (suggested)"
				}
				rows = append(rows, []string{ext, strconv.Itoa(counts[ext]), target})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No matching files found.")
			} else {
				fmt.Fprintln(out, renderTable(out, []string{"Extension", "Files", "Category"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
			}
			if noExtension > 0 {
				fmt.Fprintf(out, "%d file(s) without an extension will be ignored.\n", noExtension)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unmappedOnly, "unmapped", false, "Show only extensions with no category mapping")
	return cmd
}

// countExtensions tallies regular files by extension. Files with no
// extension are counted separately since the organizer never touches them.
func countExtensions(source string) (map[string]int, int, error) {
	counts := make(map[string]int)
	noExtension := 0
	err := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == "" || ext == strings.ToLower(entry.Name()) {
			noExtension++
			return nil
		}
		counts[ext]++
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", source, err)
	}
	return counts, noExtension, nil
}
