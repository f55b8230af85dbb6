// Package config defines the root command-line surface.
package config

import "github.com/jgraef/eguikeys/internal/cmd"

// CLI is the root kong model. Flags may also come from JSON, YAML or TOML
// configuration files and EGUIKEYS_* environment variables.
type CLI struct {
	ConfigFile string `name:"config" help:"Path to a configuration file (json, yaml or toml)" env:"EGUIKEYS_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Print the VirtualKeyCode match block (default command)"`
	Table    cmd.Table         `cmd:"" help:"Print the key translation table"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// Log configures the slog logger. Console output goes to stderr.
type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"warn" enum:"trace,debug,info,warn,error" env:"EGUIKEYS_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"EGUIKEYS_LOG_FILE"`
}
