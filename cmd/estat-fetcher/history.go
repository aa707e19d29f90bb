package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded downloads, newest first",
	Long: `History lists the downloads recorded in the history database. Recording
is enabled by setting history.path in the configuration.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	format := formatTable
	historyCmd.Flags().Var(&format, "format", "output format: table, json, or yaml")
	historyCmd.Flags().Bool("json", false, "output as JSON (same as --format json)")
	historyCmd.Flags().String("key", "", "show only downloads for this target key")
	historyCmd.Flags().Int("limit", 0, "maximum number of records (default 20)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	store, err := history.OpenConfigured(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	key, _ := cmd.Flags().GetString("key")
	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(cmd.Context(), history.Filter{TargetKey: key, Limit: limit})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch selectedFormat(cmd) {
	case formatJSON:
		return console.WriteJSON(out, records)
	case formatYAML:
		return console.WriteYAML(out, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No downloads recorded.")
		return nil
	}
	fmt.Fprintf(out, "%-16s  %-12s  %6s  %-16s  %s\n", "Key", "ID", "Rows", "Saved", "Path")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, r := range records {
		fmt.Fprintf(out, "%-16s  %-12s  %6d  %-16s  %s\n",
			r.TargetKey, r.StatsDataID, r.Rows, r.SavedAt.Local().Format("2006-01-02 15:04"), r.Path)
	}
	return nil
}
