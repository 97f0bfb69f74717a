package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tubetag/internal/history"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse results recorded by batch --record",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistorySearchCommand(ctx))
	historyCmd.AddCommand(newHistoryStatsCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				var entries []history.Entry
				var err error
				if id := strings.TrimSpace(runID); id != "" {
					entries, err = store.Run(cmd.Context(), id)
				} else {
					entries, err = store.Recent(cmd.Context(), limit)
				}
				if err != nil {
					return err
				}
				if ctx.useJSON(cmd) {
					if entries == nil {
						entries = []history.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
					return nil
				}
				return entriesView(entries).write(cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of results")
	cmd.Flags().StringVar(&runID, "run", "", "Show every result of one batch run")
	return cmd
}

func newHistorySearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search recorded artists, tracks and titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("search query is empty")
			}
			return ctx.withHistory(func(store *history.Store) error {
				matches, err := store.Search(cmd.Context(), query, limit)
				if err != nil {
					return err
				}
				if ctx.useJSON(cmd) {
					if matches == nil {
						matches = []history.Match{}
					}
					return writeJSON(cmd, matches)
				}
				if len(matches) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No results match %q\n", query)
					return nil
				}
				entries := make([]history.Entry, 0, len(matches))
				for _, m := range matches {
					entries = append(entries, m.Entry)
				}
				return entriesView(entries).write(cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of results")
	return cmd
}

func newHistoryStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count recorded results by parse method",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				counts, err := store.MethodCounts(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.useJSON(cmd) {
					if counts == nil {
						counts = []history.MethodCount{}
					}
					return writeJSON(cmd, counts)
				}
				if len(counts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
					return nil
				}
				total := 0
				rows := make([][]string, 0, len(counts))
				for _, c := range counts {
					total += c.Count
					rows = append(rows, []string{string(c.Method), string(c.Confidence), strconv.Itoa(c.Count)})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Database: %s\n", store.Path())
				view := tableView{
					Columns: []column{
						{Header: "Method"},
						{Header: "Confidence"},
						{Header: "Count", Align: alignRight},
					},
					Rows:   rows,
					Footer: []string{"Total", "", strconv.Itoa(total)},
				}
				return view.write(cmd.OutOrStdout())
			})
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear history without --yes")
			}
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal")
	return cmd
}

func entriesView(entries []history.Entry) tableView {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.RecordedAt.Local().Format(time.DateTime),
			displayOrDash(e.Artist),
			displayOrDash(e.FeaturingText()),
			displayOrDash(e.Track),
			string(e.Method),
			shortRunID(e.RunID),
		})
	}
	return tableView{
		Columns: []column{
			{Header: "ID", Align: alignRight},
			{Header: "Recorded"},
			{Header: "Artist"},
			{Header: "Featuring"},
			{Header: "Track"},
			{Header: "Method"},
			{Header: "Run"},
		},
		Rows: rows,
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
