package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filesorter/internal/classify"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var includeExecutables bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories, their extensions, and excluded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			include := cfg.Organize.IncludeExecutables
			if cmd.Flags().Changed("executables") {
				include = includeExecutables
			}

			table := classify.DefaultTable(include)
			rows := make([][]string, 0, len(table.Categories()))
			for _, category := range table.Categories() {
				extensions := strings.Join(category.Extensions, " ")
				if category.Name == classify.Other {
					extensions = "(anything unmatched)"
				}
				rows = append(rows, []string{category.Name, extensions, yesNo(category.DateBucketed)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Category", "Extensions", "Date folders"}, rows, nil))
			fmt.Fprintln(out, renderStatusLine("Excluded names", statusInfo, strings.Join(table.ExcludedNames(), " "), shouldColorize(out)))
			fmt.Fprintln(out, renderStatusLine("Excluded extensions", statusInfo, strings.Join(table.ExcludedExtensions(), " "), shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeExecutables, "executables", false, "Include the Executables category")
	return cmd
}
