package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/internal/download"
	"github.com/pdiddy/estat-fetcher/internal/fetcher"
	"github.com/pdiddy/estat-fetcher/internal/history"
)

var downloadCmd = &cobra.Command{
	Use:   "download <key> <statsDataId>",
	Short: "Download one table by identifier without prompting",
	Long: `Download fetches the table with the given statsDataId and saves it as
<key>.csv in the output directory. Use "search" to find identifiers.`,
	Args: cobra.ExactArgs(2),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().String("output-dir", "", "directory for the CSV file (default output.directory)")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		dir = cfg.Output.Directory
	}

	saver := download.NewSaver(newClient(cfg), cfg.API.RowLimit, dir)

	var opts []fetcher.Option
	store, err := history.OpenConfigured(cfg.History)
	switch {
	case err == nil:
		defer store.Close()
		opts = append(opts, fetcher.WithHistory(store))
	case !errors.Is(err, history.ErrDisabled):
		return err
	}

	runner := fetcher.New(nil, saver, console.New(cmd.OutOrStdout()), opts...)
	if _, err := runner.Download(cmd.Context(), args[0], args[1]); err != nil {
		return errReported
	}
	return nil
}
