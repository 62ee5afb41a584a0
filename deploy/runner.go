package deploy

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/parthshah1/dropwizard/config"
	"github.com/parthshah1/dropwizard/forge"
	"github.com/parthshah1/dropwizard/prompt"
)

// Executor runs forge.
type Executor interface {
	Run(ctx context.Context, inv forge.Invocation) (forge.Result, error)
}

// Outcome describes how the forge run of a command went. A failed run is an
// Outcome, not an error.
type Outcome struct {
	Command   string
	Succeeded bool
	Result    forge.Result
	Err       error
}

type Runner struct {
	store    *config.Store
	prompter prompt.Prompter
	resolver *Resolver
	forge    Executor
	out      io.Writer
	logger   *log.Logger
}

func NewRunner(store *config.Store, p prompt.Prompter, exec Executor, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		store:    store,
		prompter: p,
		resolver: NewResolver(p, logger),
		forge:    exec,
		out:      out,
		logger:   logger,
	}
}

// Run is one full command invocation: optionally reuse the persisted record, collect
// the parameter set, run forge, persist again.
func (r *Runner) Run(ctx context.Context, cmd Command, useConfig *bool) (*Outcome, error) {
	rec, err := r.store.LoadInteractive(r.prompter, useConfig)
	if err != nil {
		return nil, err
	}

	outcome, err := r.Execute(ctx, cmd, rec)
	if err != nil {
		return nil, err
	}

	if err := r.store.Save(rec); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Execute walks the command's steps against rec and then invokes forge.
func (r *Runner) Execute(ctx context.Context, cmd Command, rec config.Record) (*Outcome, error) {
	for _, step := range cmd.Steps {
		if step.Save {
			if err := r.store.Save(rec); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.resolver.Resolve(rec, *step.Field); err != nil {
			return nil, fmt.Errorf("%s: %w", cmd.Name, err)
		}
	}

	if key := rec.String(PrivateKey.Key); key != "" {
		if acct, err := DeriveAccount(key); err == nil {
			r.logger.Debug("Deployer account", "address", acct.Address.Hex(), "delegated", acct.Delegated.String())
		}
	}

	inv := forge.Invocation{
		Args:    RenderArgs(cmd.Script.Args(), rec),
		Env:     ExportEnv(rec),
		Secrets: secrets(rec),
	}

	r.logger.Info(Render(cmd.Running, rec))
	res, err := r.forge.Run(ctx, inv)
	outcome := &Outcome{Command: cmd.Name, Result: res}

	if err != nil {
		if res.Stdout != "" {
			fmt.Fprintln(r.out, strings.TrimRight(res.Stdout, "\n"))
		}
		r.logger.Error("forge failed", "error", err)
		r.logger.Error(Render(cmd.Failure, rec))
		outcome.Err = err
		return outcome, nil
	}

	fmt.Fprintln(r.out, strings.TrimRight(res.Stdout, "\n"))
	r.logger.Info(Render(cmd.Success, rec), "took", res.Duration.Round(time.Millisecond))
	outcome.Succeeded = true
	return outcome, nil
}

// ExportEnv maps every known, set field to its environment variable.
func ExportEnv(rec config.Record) map[string]string {
	env := make(map[string]string)
	for _, f := range Fields() {
		if rec.IsSet(f.Key) {
			env[f.Env] = rec.String(f.Key)
		}
	}
	return env
}

func secrets(rec config.Record) []string {
	var values []string
	for _, f := range Fields() {
		if f.Secret && rec.IsSet(f.Key) {
			values = append(values, rec.String(f.Key))
		}
	}
	return values
}
