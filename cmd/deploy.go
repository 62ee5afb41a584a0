package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/parthshah1/dropwizard/config"
	"github.com/parthshah1/dropwizard/deploy"
	"github.com/parthshah1/dropwizard/forge"
	"github.com/parthshah1/dropwizard/prompt"
)

// DeployCmds turns the command catalog into CLI commands.
func DeployCmds() []*cli.Command {
	var cmds []*cli.Command
	for _, dc := range deploy.Commands() {
		dc := dc
		cmds = append(cmds, &cli.Command{
			Name:     dc.Name,
			Usage:    dc.Usage,
			Category: "deploy",
			Action: func(c *cli.Context) error {
				return runDeployCommand(c, dc)
			},
		})
	}
	return cmds
}

// runDeployCommand reports a failed forge run through the log only; the process
// still exits 0.
func runDeployCommand(c *cli.Context, dc deploy.Command) error {
	store := config.NewStore(cfg.ConfigFile, logger)
	invoker := forge.NewInvoker(cfg.ForgeBin, cfg.WorkDir, cfg.ForgeTimeout, logger)
	runner := deploy.NewRunner(store, prompt.New(c.App.Reader, c.App.Writer), invoker, c.App.Writer, logger)

	outcome, err := runner.Run(c.Context, dc, useConfig(c))
	if err != nil {
		return err
	}

	logger.Debug("Command finished", "command", outcome.Command, "succeeded", outcome.Succeeded, "exit_code", outcome.Result.ExitCode)
	return nil
}

func useConfig(c *cli.Context) *bool {
	if !c.IsSet("use-config") {
		return nil
	}
	v := c.Bool("use-config")
	return &v
}
