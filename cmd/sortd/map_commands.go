package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"sortd/internal/extmap"
)

func newMapCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Inspect and edit the extension-to-category mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newMapListCommand(ctx))
	cmd.AddCommand(newMapSetCommand(ctx))
	cmd.AddCommand(newMapRemoveCommand(ctx))
	cmd.AddCommand(newMapResetCommand(ctx))
	return cmd
}

func newMapListCommand(ctx *commandContext) *cobra.Command {
	var overridesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective extension mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var mapping extmap.Map
			if overridesOnly {
				mapping, err = extmap.LoadOverrides(cfg.Paths.MapFile)
			} else {
				mapping, err = extmap.LoadFile(cfg.Paths.MapFile)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(mapping) == 0 {
				fmt.Fprintln(out, "No mappings defined.")
				return nil
			}

			exts := mapping.Extensions()
			sort.Strings(exts)
			rows := make([][]string, 0, len(exts))
			for _, ext := range exts {
				category, _ := mapping.Lookup(ext)
				rows = append(rows, []string{ext, category})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Extension", "Category"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overridesOnly, "overrides", false, "Show only the user override file, not the built-in defaults")
	return cmd
}

func newMapSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set EXTENSION CATEGORY",
		Short: "Map an extension to a category folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			overrides, err := extmap.LoadOverrides(cfg.Paths.MapFile)
			if err != nil {
				return err
			}
			updated, err := extmap.Set(overrides, args[0], args[1])
			if err != nil {
				return err
			}
			if err := extmap.SaveFile(cfg.Paths.MapFile, updated); err != nil {
				return err
			}

			ext, _ := extmap.NormalizeExtension(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Mapped %s to %s\n", ext, args[1])
			return nil
		},
	}
}

func newMapRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm EXTENSION",
		Aliases: []string{"remove"},
		Short:   "Remove an extension from the override file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			overrides, err := extmap.LoadOverrides(cfg.Paths.MapFile)
			if err != nil {
				return err
			}
			updated, err := extmap.Remove(overrides, args[0])
			if err != nil {
				return err
			}
			if len(updated) == len(overrides) {
				ext, _ := extmap.NormalizeExtension(args[0])
				return fmt.Errorf("extension %s has no override", ext)
			}
			if err := extmap.SaveFile(cfg.Paths.MapFile, updated); err != nil {
				return err
			}

			ext, _ := extmap.NormalizeExtension(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed override for %s\n", ext)
			return nil
		},
	}
}

func newMapResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the override file and return to the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if err := os.Remove(cfg.Paths.MapFile); err != nil {
				if os.IsNotExist(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "No override file to remove.")
					return nil
				}
				return fmt.Errorf("remove override file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Extension mapping reset to defaults.")
			return nil
		},
	}
}
