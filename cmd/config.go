package cmd

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/parthshah1/dropwizard/config"
	"github.com/parthshah1/dropwizard/deploy"
)

var ShowConfigCmd = &cli.Command{
	Name:     "show-config",
	Usage:    "Print the persisted parameters with secrets masked",
	Category: "config",
	Action:   showConfig,
}

var ResetConfigCmd = &cli.Command{
	Name:     "reset-config",
	Usage:    "Delete the persisted parameters",
	Category: "config",
	Action:   resetConfig,
}

func showConfig(c *cli.Context) error {
	store := config.NewStore(cfg.ConfigFile, logger)
	rec := store.Load()

	w := c.App.Writer
	if len(rec) == 0 {
		fmt.Fprintf(w, "No configuration stored in %s\n", store.Path())
		return nil
	}

	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	fmt.Fprintf(w, "Configuration (%s):\n", store.Path())
	for _, key := range keys {
		value := rec.String(key)
		if !deploy.IsSecretKey(key) {
			fmt.Fprintf(w, "  %s: %s\n", key, value)
			continue
		}

		fmt.Fprintf(w, "  %s: %s\n", key, deploy.Mask(value))
		if !deploy.IsPrivateKeyKey(key) {
			continue
		}
		acct, err := deploy.DeriveAccount(value)
		if err != nil {
			fmt.Fprintf(w, "    (no account: %v)\n", err)
			continue
		}
		fmt.Fprintf(w, "    address: %s\n", acct.Address.Hex())
		fmt.Fprintf(w, "    f4 address: %s\n", acct.Delegated.String())
	}
	return nil
}

func resetConfig(c *cli.Context) error {
	store := config.NewStore(cfg.ConfigFile, logger)
	if err := store.Remove(); err != nil {
		return err
	}
	logger.Info("Configuration removed", "path", store.Path())
	return nil
}
