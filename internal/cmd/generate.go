package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jgraef/eguikeys/internal/configpaths"
	"github.com/jgraef/eguikeys/internal/emit"
	"github.com/jgraef/eguikeys/internal/keys"
	"github.com/jgraef/eguikeys/internal/log"
)

// Generate prints the Rust match block translating VirtualKeyCode into egui keys.
type Generate struct {
	Keys      string `help:"Key table file (json, yaml or toml) replacing the built-in egui table" env:"EGUIKEYS_KEYS"`
	Output    string `help:"Write the block to this file instead of stdout ('-' for stdout)" default:"-" env:"EGUIKEYS_OUTPUT"`
	Enum      string `help:"Enum the arms match on" default:"VirtualKeyCode" env:"EGUIKEYS_ENUM"`
	KeyType   string `help:"Type wrapped in Some(...)" default:"Key" env:"EGUIKEYS_KEY_TYPE"`
	Scrutinee string `help:"Expression being matched" default:"key" env:"EGUIKEYS_SCRUTINEE"`
	Indent    int    `help:"Spaces before each arm" default:"2" env:"EGUIKEYS_INDENT"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, stdout io.Writer) error {
	names, err := loadTable(logger, c.Keys)
	if err != nil {
		return err
	}

	arms := emit.Arms(names, keys.Translate)
	for _, a := range arms {
		logger.Log(context.Background(), log.LevelTrace, "Translated key", "key", a.Key, "identifier", a.Pattern)
	}

	opts := emit.Options{
		Enum:      c.Enum,
		KeyType:   c.KeyType,
		Scrutinee: c.Scrutinee,
		Indent:    emit.Indent(c.Indent),
	}

	if c.Output == "" || c.Output == "-" {
		if err := emit.Match(stdout, arms, opts); err != nil {
			return fmt.Errorf("write match block: %w", err)
		}
		logger.Info("Generated match block", "arms", len(arms))
		return nil
	}

	if err := configpaths.EnsureDir(c.Output); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := emit.Match(f, arms, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("write match block: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.Output, err)
	}

	logger.Info("Generated match block", "arms", len(arms), "file", c.Output)
	return nil
}

func loadTable(logger *slog.Logger, path string) ([]string, error) {
	if path == "" {
		names := keys.Default()
		logger.Debug("Using built-in key table", "keys", len(names))
		return names, nil
	}
	names, err := keys.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load key table %s: %w", path, err)
	}
	logger.Info("Loaded key table", "file", path, "keys", len(names))
	return names, nil
}
