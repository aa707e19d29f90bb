package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Print the configured targets",
	Long: `Targets prints the targets a fetch run processes, in order. Without a
configured targets list the built-in household consumption and consumer
price index targets are used. The YAML output can be pasted into the
configuration file as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	format := formatYAML
	targetsCmd.Flags().Var(&format, "format", "output format: table, json, or yaml")

	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch selectedFormat(cmd) {
	case formatJSON:
		return console.WriteJSON(out, cfg.Targets)
	case formatYAML:
		return console.WriteYAML(out, struct {
			Targets []types.Target `yaml:"targets"`
		}{cfg.Targets})
	}

	fmt.Fprintf(out, "%-14s  %-30s  %s\n", "Key", "Search word", "Recommend")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, t := range cfg.Targets {
		fmt.Fprintf(out, "%-14s  %-30s  %s\n", t.Key, t.SearchWord, t.Recommend)
	}
	return nil
}
