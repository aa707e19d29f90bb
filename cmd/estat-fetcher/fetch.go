package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/internal/download"
	"github.com/pdiddy/estat-fetcher/internal/fetcher"
	"github.com/pdiddy/estat-fetcher/internal/history"
	"github.com/pdiddy/estat-fetcher/internal/search"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Search, select, and download every configured target",
	Long: `Fetch walks the configured targets in order. For each one it searches the
catalog, prints the matching tables newest first, and asks for the row to
download. Enter 's' to skip a target. Failures are reported and the run
moves on to the next target.`,
	RunE: runFetch,
}

func init() {
	addFetchFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("only", nil, "process only the targets with these keys")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	only, _ := cmd.Flags().GetStringSlice("only")
	targets, err := filterTargets(cfg.Targets, only)
	if err != nil {
		return err
	}

	client := newClient(cfg)
	out := console.New(cmd.OutOrStdout())
	selector := search.NewSelector(client, cfg.API.SearchLimit, cmd.InOrStdin(), out)
	saver := download.NewSaver(client, cfg.API.RowLimit, cfg.Output.Directory)

	opts := []fetcher.Option{fetcher.WithReminders(cfg.Reminders)}
	store, err := history.OpenConfigured(cfg.History)
	switch {
	case err == nil:
		defer store.Close()
		opts = append(opts, fetcher.WithHistory(store))
	case !errors.Is(err, history.ErrDisabled):
		return err
	}

	_, err = fetcher.New(selector, saver, out, opts...).Run(cmd.Context(), targets)
	return err
}

// filterTargets keeps the targets named in keys, in configuration order.
// An empty keys list keeps every target.
func filterTargets(targets []types.Target, keys []string) ([]types.Target, error) {
	if len(keys) == 0 {
		return targets, nil
	}

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	var out []types.Target
	for _, t := range targets {
		if want[t.Key] {
			out = append(out, t)
			delete(want, t.Key)
		}
	}
	for _, k := range keys {
		if want[k] {
			return nil, fmt.Errorf("unknown target %q", k)
		}
	}
	return out, nil
}
