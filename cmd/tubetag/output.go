package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tubetag/internal/config"
)

// useJSON reports whether results for cmd should be written as JSON. The
// --json flag wins; otherwise output.format decides, with "auto" choosing a
// table only when stdout is a terminal.
func (c *commandContext) useJSON(cmd *cobra.Command) bool {
	if c.jsonRequested() {
		return true
	}
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return !isTerminal(cmd.OutOrStdout())
	}
	switch cfg.Output.Format {
	case config.OutputJSON:
		return true
	case config.OutputTable:
		return false
	default:
		return !isTerminal(cmd.OutOrStdout())
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func displayOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
