// Package forge runs the external forge binary and reports how it exited.
package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/log"
)

const redacted = "<redacted>"

// Invocation is a single forge run.
type Invocation struct {
	Args []string
	// Env is exported to the child on top of the parent environment.
	Env map[string]string
	// Secrets are replaced in the logged command line.
	Secrets []string
}

// Result holds what the child wrote and how it exited.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

type Invoker struct {
	Bin     string
	Dir     string
	Timeout time.Duration
	logger  *log.Logger
}

func NewInvoker(bin, dir string, timeout time.Duration, logger *log.Logger) *Invoker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Invoker{
		Bin:     bin,
		Dir:     dir,
		Timeout: timeout,
		logger:  logger,
	}
}

// Run executes forge synchronously. A non-zero exit or a spawn failure is returned
// as an error alongside whatever output was captured.
func (i *Invoker) Run(ctx context.Context, inv Invocation) (Result, error) {
	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	i.logger.Debug("Running forge", "command", i.CommandLine(inv), "dir", i.Dir)

	cmd := exec.CommandContext(ctx, i.Bin, inv.Args...)
	cmd.Dir = i.Dir
	cmd.Env = os.Environ()
	keys := make([]string, 0, len(inv.Env))
	for key := range inv.Env {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, inv.Env[key]))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("%s exited with code %d: %s", i.Bin, res.ExitCode, strings.TrimSpace(res.Stderr))
		}
		res.ExitCode = -1
		return res, fmt.Errorf("failed to run %s: %w", i.Bin, err)
	}

	return res, nil
}

// CommandLine renders the invocation as a shell-quoted string with secrets hidden.
func (i *Invoker) CommandLine(inv Invocation) string {
	words := make([]string, 0, len(inv.Args)+1)
	words = append(words, i.Bin)
	for _, arg := range inv.Args {
		words = append(words, redact(arg, inv.Secrets))
	}
	return shellescape.QuoteCommand(words)
}

func redact(arg string, secrets []string) string {
	for _, secret := range secrets {
		if secret != "" {
			arg = strings.ReplaceAll(arg, secret, redacted)
		}
	}
	return arg
}
