package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tubetag/internal/batch"
	"tubetag/internal/history"
	"tubetag/internal/titleparse"
)

type batchLineJSON struct {
	Line    int                  `json:"line"`
	Title   string               `json:"title"`
	Channel string               `json:"channel"`
	Error   string               `json:"error,omitempty"`
	Result  *titleparse.Metadata `json:"result,omitempty"`
}

type batchJSON struct {
	RunID    string          `json:"run_id"`
	Recorded bool            `json:"recorded"`
	Results  []batchLineJSON `json:"results"`
	Summary  *batch.Summary  `json:"summary,omitempty"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var record bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Parse many titles, one per line",
		Long: "Parse one record per line from a file or stdin. A record is either\n" +
			"a JSON object {\"title\": ..., \"channel\": ...} or title<TAB>channel.\n" +
			"Blank lines and lines starting with # are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			source := "-"
			if len(args) == 1 {
				source = strings.TrimSpace(args[0])
			}
			lines, err := readBatchSource(cmd, source)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = cfg.Batch.Workers
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1")
			}
			if !cmd.Flags().Changed("record") {
				record = cfg.Batch.RecordHistory
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			parser := titleparse.New(titleparse.WithLogger(logger))
			runner := batch.NewRunner(parser, logger, workers)
			results, err := runner.Run(runCtx, lines)
			if err != nil {
				return err
			}

			if record {
				if err := recordBatch(cmd, cfg.Paths.HistoryDB, runner.RunID, results); err != nil {
					return err
				}
			}

			var sum *batch.Summary
			if summary {
				s := batch.Summarize(results)
				sum = &s
			}

			if ctx.useJSON(cmd) {
				return writeJSON(cmd, buildBatchJSON(runner.RunID, record, results, sum))
			}
			out := cmd.OutOrStdout()
			if err := batchView(results).write(out); err != nil {
				return err
			}
			if sum != nil {
				fmt.Fprintf(out, "%d lines · %d parsed · %d unparsed · %d failed\n", sum.Total, sum.Parsed, sum.Unparsed, sum.Failed)
				return summaryView(*sum).write(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel parser workers (default from batch.workers)")
	cmd.Flags().BoolVar(&record, "record", false, "Record results in the history database")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append counts by method and confidence")
	return cmd
}

func readBatchSource(cmd *cobra.Command, source string) ([]batch.Line, error) {
	var r io.Reader
	if source == "" || source == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	lines, err := batch.ReadInputs(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(lines) == 0 {
		return nil, batch.ErrNoInput
	}
	return lines, nil
}

func recordBatch(cmd *cobra.Command, dbPath, runID string, results []batch.Result) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	parsed := batch.Metadata(results)
	if len(parsed) == 0 {
		return nil
	}
	if err := store.Record(cmd.Context(), runID, parsed); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Recorded %d results as run %s\n", len(parsed), runID)
	return nil
}

func buildBatchJSON(runID string, recorded bool, results []batch.Result, sum *batch.Summary) batchJSON {
	payload := batchJSON{
		RunID:    runID,
		Recorded: recorded,
		Results:  make([]batchLineJSON, 0, len(results)),
		Summary:  sum,
	}
	for _, res := range results {
		line := batchLineJSON{
			Line:    res.Line,
			Title:   res.Input.Title,
			Channel: res.Input.Channel,
		}
		if res.Err != nil {
			line.Error = res.Err.Error()
		} else {
			meta := res.Metadata
			line.Result = &meta
		}
		payload.Results = append(payload.Results, line)
	}
	return payload
}

func batchView(results []batch.Result) tableView {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			rows = append(rows, []string{strconv.Itoa(res.Line), "-", "-", "-", "error", res.Err.Error()})
			continue
		}
		m := res.Metadata
		rows = append(rows, []string{
			strconv.Itoa(res.Line),
			displayOrDash(m.Artist),
			displayOrDash(m.FeaturingText()),
			displayOrDash(m.Track),
			string(m.Method),
			string(m.Confidence),
		})
	}
	return tableView{
		Columns: []column{
			{Header: "Line", Align: alignRight},
			{Header: "Artist"},
			{Header: "Featuring"},
			{Header: "Track"},
			{Header: "Method"},
			{Header: "Confidence"},
		},
		Rows: rows,
	}
}

func summaryView(s batch.Summary) tableView {
	rows := make([][]string, 0, len(s.ByMethod))
	for _, method := range s.Methods() {
		rows = append(rows, []string{
			string(method),
			string(titleparse.ConfidenceFor(method)),
			strconv.Itoa(s.ByMethod[method]),
		})
	}
	return tableView{
		Columns: []column{
			{Header: "Method"},
			{Header: "Confidence"},
			{Header: "Count", Align: alignRight},
		},
		Rows:   rows,
		Footer: []string{"Total", "", strconv.Itoa(s.Total - s.Failed)},
	}
}
