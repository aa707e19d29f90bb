// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the estat-fetcher CLI.
// The root command runs the interactive fetch over all configured targets;
// subcommands expose search, direct download, and the download history.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/estat-fetcher/internal/config"
	"github.com/pdiddy/estat-fetcher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets secrets.Secrets

// errReported marks a failure whose message was already printed.
var errReported = errors.New("failed")

// rootCmd is the base command for the estat-fetcher CLI.
var rootCmd = &cobra.Command{
	Use:   "estat-fetcher",
	Short: "Interactive downloader for e-Stat statistics tables",
	Long: `estat-fetcher searches the e-Stat statistics catalog for each configured
target, lets you pick a table from the results sorted by update date, and
saves the chosen table as <key>.csv (UTF-8 with BOM, opens cleanly in Excel).

Running without a subcommand is the same as "estat-fetcher fetch".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSecrets,
	RunE:              runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./estat-fetcher.yaml or ~/.config/estat-fetcher/estat-fetcher.yaml)")
	rootCmd.PersistentFlags().String("app-id", "", "e-Stat application ID (overrides config and the secrets directory)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory holding credential files such as "+secrets.AppIDKey)
	addFetchFlags(rootCmd)
}

func loadSecrets(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("secrets-dir")
	s, err := secrets.Load(dir, os.Stderr)
	if err != nil {
		return err
	}
	loadedSecrets = s
	if names := s.Names(); len(names) > 0 {
		fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", names)
	}
	return nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("estat-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "estat-fetcher"))
		}
	}

	viper.SetEnvPrefix("ESTAT_FETCHER")
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}
		os.Exit(1)
	}
}
