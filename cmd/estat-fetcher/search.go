package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/estat-fetcher/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <phrase>",
	Short: "List the statistics tables matching a phrase",
	Long: `Search queries the e-Stat catalog and prints the matching tables sorted
by update date, newest first, without prompting. Multiple arguments are
joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	format := formatTable
	searchCmd.Flags().Var(&format, "format", "output format: table, json, or yaml")
	searchCmd.Flags().Bool("json", false, "output as JSON (same as --format json)")
	searchCmd.Flags().String("recommend", "", "mark titles containing this text with ★")
	searchCmd.Flags().Int("limit", 0, "maximum number of tables (default api.search_limit)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.API.SearchLimit
	}

	tables, err := newClient(cfg).SearchTables(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}
	search.SortByUpdated(tables)

	out := cmd.OutOrStdout()
	switch selectedFormat(cmd) {
	case formatJSON:
		return search.FormatJSON(tables, out)
	case formatYAML:
		return search.FormatYAML(tables, out)
	}
	recommend, _ := cmd.Flags().GetString("recommend")
	search.FormatTable(tables, recommend, out)
	return nil
}

// selectedFormat reads --format, letting --json override it.
func selectedFormat(cmd *cobra.Command) outputFormat {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return formatJSON
	}
	return outputFormat(cmd.Flags().Lookup("format").Value.String())
}
