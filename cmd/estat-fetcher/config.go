package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/estat-fetcher/internal/config"
	"github.com/pdiddy/estat-fetcher/internal/estat"
	"github.com/pdiddy/estat-fetcher/internal/secrets"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

// loadConfig reads the configuration and resolves the application ID:
// the --app-id flag wins over app_id from the config file or environment,
// which wins over the secrets directory. The placeholder counts as unset.
// When needAppID is false the ID is not checked.
func loadConfig(cmd *cobra.Command, needAppID bool) (*types.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	flagID, _ := cmd.Flags().GetString("app-id")
	cfg.AppID = config.ResolveAppID(flagID, cfg.AppID, loadedSecrets.Get(secrets.AppIDKey))

	if needAppID {
		err = config.Validate(cfg)
	} else {
		err = config.ValidateSettings(cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *types.Config) *estat.Client {
	return estat.NewClient(cfg.AppID, cfg.API, cfg.HTTP)
}
