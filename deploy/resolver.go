package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/parthshah1/dropwizard/config"
	"github.com/parthshah1/dropwizard/prompt"
)

// Resolver fills record fields from the environment or the operator.
type Resolver struct {
	prompter prompt.Prompter
	getenv   func(string) string
	logger   *log.Logger
}

func NewResolver(p prompt.Prompter, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{
		prompter: p,
		getenv:   os.Getenv,
		logger:   logger,
	}
}

// Resolve makes sure rec holds a value for f. A value already in rec wins, then the
// environment, then the prompt. Integer answers that do not parse are asked again;
// when input runs out the field is left unset.
func (r *Resolver) Resolve(rec config.Record, f Field) error {
	if rec.IsSet(f.Key) {
		return nil
	}

	if raw := strings.TrimSpace(r.getenv(f.Env)); raw != "" {
		value, err := parseValue(f, raw)
		if err == nil {
			r.logger.Debug("Using value from environment", "key", f.Key, "env", f.Env)
			rec[f.Key] = value
			return nil
		}
		r.logger.Warn("Ignoring environment value", "env", f.Env, "error", err)
	}

	for {
		answer, err := r.prompter.Ask(f.question(), f.Secret)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read %s: %w", f.Key, err)
			}
			if f.FallbackToDefault && f.Default != "" {
				rec[f.Key] = f.Default
				return nil
			}
			r.logger.Warn("No input available, leaving parameter unset", "key", f.Key)
			return nil
		}

		if answer == "" && f.FallbackToDefault && f.Default != "" {
			answer = f.Default
		}

		value, err := parseValue(f, answer)
		if err != nil {
			r.logger.Warn("Invalid value, please try again", "key", f.Key, "error", err)
			continue
		}
		rec[f.Key] = value
		return nil
	}
}

func parseValue(f Field, raw string) (any, error) {
	if f.Kind != KindInt {
		return raw, nil
	}

	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", raw)
	}
	if n.IsInt64() {
		return n.Int64(), nil
	}
	return json.Number(n.String()), nil
}
