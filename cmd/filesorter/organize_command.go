package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filesorter/internal/classify"
	"filesorter/internal/organizer"
	"filesorter/internal/services"
)

func newOrganizeCommand(ctx *commandContext, preview bool) *cobra.Command {
	var includeExecutables bool
	var categories []string
	var jsonOutput bool

	use, short := "organize DIR", "Move the directory's files into category folders"
	if preview {
		use, short = "preview DIR", "Show what organize would do without touching any file"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := organizer.Options{
				IncludeExecutables: cfg.Organize.IncludeExecutables,
				Preview:            preview,
				Categories:         cfg.Organize.Categories,
			}
			if cmd.Flags().Changed("executables") {
				opts.IncludeExecutables = includeExecutables
			}
			if cmd.Flags().Changed("category") {
				opts.Categories = cleanCategories(categories)
			}

			dir := strings.TrimSpace(args[0])
			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)
			engine := organizer.NewEngine(logger)

			var summary organizer.Summary
			run := func() error {
				var err error
				summary, err = engine.Organize(runCtx, dir, opts)
				return err
			}
			if preview {
				err = run()
			} else {
				err = ctx.withDirLock(dir, run)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), organizeReport{
					Preview:    preview,
					RunID:      runID,
					Directory:  dir,
					Categories: summary,
				})
			}
			printSummary(cmd, summary, classify.DefaultTable(opts.IncludeExecutables), preview)
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeExecutables, "executables", false, "Sort .exe and .msi files into Executables")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Only organize these categories (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the summary as JSON")
	return cmd
}

func cleanCategories(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printSummary(cmd *cobra.Command, summary organizer.Summary, table classify.Table, preview bool) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	label := "Organized"
	if preview {
		label = "Preview"
	}
	if summary.Total() == 0 {
		fmt.Fprintln(out, renderStatusLine(label, statusInfo, "No files to organize", colorize))
		return
	}

	fmt.Fprintln(out, renderTable([]string{"Category", "Files", "Names"}, summaryRows(summary, table), []columnAlignment{alignLeft, alignRight, alignLeft}))

	verb := "moved"
	if preview {
		verb = "would move"
	}
	message := fmt.Sprintf("%d file(s) %s into %d categor%s", summary.Total(), verb, len(summary), plural(len(summary), "y", "ies"))
	kind := statusOK
	if preview {
		kind = statusInfo
	}
	fmt.Fprintln(out, renderStatusLine(label, kind, message, colorize))
}

func summaryRows(summary organizer.Summary, table classify.Table) [][]string {
	names := summary.Names(table)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		entry := summary[name]
		rows = append(rows, []string{name, fmt.Sprintf("%d", entry.Count), truncateNames(entry.Filenames, maxListedNames)})
	}
	return rows
}

const maxListedNames = 5

func truncateNames(names []string, limit int) string {
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(names[:limit], ", "), len(names)-limit)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
