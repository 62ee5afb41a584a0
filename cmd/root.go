package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/parthshah1/dropwizard/config"
)

var (
	cfg    *config.Config
	logger *log.Logger
)

// NewApp creates a new CLI app
func NewApp() *cli.App {
	app := &cli.App{
		Name:  "dropwizard",
		Usage: "Interactive parameter collection and forge deployment for the RecurringGrantDrop contracts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-file",
				Usage:   "Where collected parameters are persisted (env: DEPLOY_CONFIG_FILE)",
				EnvVars: []string{"DEPLOY_CONFIG_FILE"},
			},
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "Dotenv file loaded before collecting parameters (env: DEPLOY_ENV_FILE)",
				EnvVars: []string{"DEPLOY_ENV_FILE"},
				Value:   config.DefaultEnvFile,
			},
			&cli.StringFlag{
				Name:    "forge",
				Usage:   "forge binary (env: FORGE_BIN)",
				EnvVars: []string{"FORGE_BIN"},
			},
			&cli.StringFlag{
				Name:    "workdir",
				Usage:   "Directory forge runs in (env: FORGE_WORKDIR)",
				EnvVars: []string{"FORGE_WORKDIR"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Kill forge after this long, 0 waits forever (env: FORGE_TIMEOUT)",
				EnvVars: []string{"FORGE_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:  "use-config",
				Usage: "Reuse (or, with =false, ignore) parameters from prior runs without asking",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Verbose output (env: VERBOSE)",
				EnvVars: []string{"VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger = log.NewWithOptions(c.App.ErrWriter, log.Options{Prefix: c.App.Name})

			envFile := c.String("env-file")
			if err := godotenv.Load(envFile); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to load %s: %w", envFile, err)
				}
				logger.Debug("No .env file found, using environment variables", "path", envFile)
			}

			cfg = config.Load()
			cfg.EnvFile = envFile

			if c.IsSet("config-file") {
				cfg.ConfigFile = c.String("config-file")
			}
			if c.IsSet("forge") {
				cfg.ForgeBin = c.String("forge")
			}
			if c.IsSet("workdir") {
				cfg.WorkDir = c.String("workdir")
			}
			if c.IsSet("timeout") {
				cfg.ForgeTimeout = c.Duration("timeout")
			}
			if c.IsSet("verbose") {
				cfg.Verbose = c.Bool("verbose")
			}

			if cfg.Verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: append(DeployCmds(), ShowConfigCmd, ResetConfigCmd),
	}
	return app
}

func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
