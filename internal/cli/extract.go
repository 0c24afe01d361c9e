package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"freight-rate-watch/internal/app"
)

var (
	extractDate   string
	extractFile   string
	extractDryRun bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run one extraction pass against the live page or a saved file",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ExtractOptions{
			Date:   extractDate,
			File:   extractFile,
			DryRun: extractDryRun,
		}
		return getApp().Extract(cmd.Context(), opts)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [line]",
	Short: "Parse a single bulletin line and print the resulting record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return errors.New("line must not be empty")
		}
		return getApp().Parse(args[0])
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractDate, "date", "", "Snapshot date to tag records with (YYYY-MM-DD, default today)")
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Parse a saved page body instead of fetching the live URL")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "Extract and print without writing to storage")
}
