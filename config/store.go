package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/parthshah1/dropwizard/prompt"
)

const reusePrompt = "Do you want to load configuration from prior runs? [Y/n]: "

// Store persists a Record as a single JSON document. Every Save is a
// read-merge-write of the whole file; there is no locking.
type Store struct {
	path   string
	logger *log.Logger
}

func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted record. A missing or unreadable file yields an empty
// record; a file that does not parse, or parses to nothing, is deleted first.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Configuration load requested but no configuration available: continuing", "path", s.path)
		} else {
			s.logger.Warn("Unable to read configuration: continuing", "path", s.path, "error", err)
		}
		return Record{}
	}

	rec, err := decode(data)
	if err != nil || rec == nil {
		s.logger.Warn("Unable to parse configuration: deleting and continuing", "path", s.path)
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Failed to delete configuration", "path", s.path, "error", err)
		}
		return Record{}
	}

	s.logger.Info("Configuration loaded", "path", s.path, "keys", len(rec))
	return rec
}

// LoadInteractive loads the persisted record if the operator agrees. When useConfig
// is non-nil its value answers the question without prompting.
func (s *Store) LoadInteractive(p prompt.Prompter, useConfig *bool) (Record, error) {
	var reuse bool
	if useConfig != nil {
		reuse = *useConfig
	} else {
		var err error
		reuse, err = p.Confirm(reusePrompt, true)
		if err != nil {
			return nil, fmt.Errorf("failed to read answer: %w", err)
		}
	}

	if !reuse {
		s.logger.Info("Configuration not loaded")
		return Record{}, nil
	}
	return s.Load(), nil
}

// Save merges rec into whatever is currently persisted and writes the result back.
func (s *Store) Save(rec Record) error {
	base := Record{}
	if data, err := os.ReadFile(s.path); err == nil {
		if old, err := decode(data); err == nil && old != nil {
			base = old
		}
	}

	merged, err := Merge(base, rec)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(merged, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration %s: %w", s.path, err)
	}

	s.logger.Debug("Configuration saved", "path", s.path, "keys", len(merged))
	return nil
}

// Remove deletes the persisted file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove configuration %s: %w", s.path, err)
	}
	return nil
}

func decode(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after configuration object")
	}
	if rec == nil {
		return nil, nil
	}
	return normalize(rec), nil
}
