package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tubetag/internal/titleparse"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var titleFlag string
	var channelFlag string

	cmd := &cobra.Command{
		Use:   "parse [title] [channel]",
		Short: "Parse one video title",
		Long: "Parse one video title and report the artist, featuring artists and track.\n" +
			"The title and channel may be given as arguments or with --title and --channel.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := titleparse.Input{Title: titleFlag, Channel: channelFlag}
			if len(args) > 0 {
				if in.Title != "" {
					return fmt.Errorf("title given both as argument and with --title")
				}
				in.Title = args[0]
			}
			if len(args) > 1 {
				if in.Channel != "" {
					return fmt.Errorf("channel given both as argument and with --channel")
				}
				in.Channel = args[1]
			}
			if err := in.Validate(); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			parser := titleparse.New(titleparse.WithLogger(logger))
			result := parser.ParseContext(cmd.Context(), in)

			if ctx.useJSON(cmd) {
				return writeJSON(cmd, result)
			}
			return metadataView(result).write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Video title")
	cmd.Flags().StringVar(&channelFlag, "channel", "", "Uploading channel name")
	return cmd
}

func metadataView(m titleparse.Metadata) tableView {
	return tableView{
		Columns: []column{{Header: "Field"}, {Header: "Value"}},
		Rows: [][]string{
			{"Artist", displayOrDash(m.Artist)},
			{"Featuring", displayOrDash(m.FeaturingText())},
			{"Track", displayOrDash(m.Track)},
			{"Parsed", yesNo(m.Parsed)},
			{"Method", string(m.Method)},
			{"Confidence", string(m.Confidence)},
			{"Title", strings.TrimSpace(m.OriginalTitle)},
			{"Channel", displayOrDash(strings.TrimSpace(m.OriginalChannel))},
		},
	}
}
