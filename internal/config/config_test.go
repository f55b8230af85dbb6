package config_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/jgraef/eguikeys/internal/cmd"
	"github.com/jgraef/eguikeys/internal/config"
)

type format struct {
	name   string
	loader kong.ConfigurationLoader
	decode func([]byte) (map[string]any, error)
	encode func(map[string]any) ([]byte, error)
	// section holds the command flags, nil for top-level layouts.
	section func(root map[string]any, command string) map[string]any
}

var formats = []format{
	{
		name:   "json",
		loader: kong.JSON,
		decode: func(b []byte) (map[string]any, error) {
			m := map[string]any{}
			return m, json.Unmarshal(b, &m)
		},
		encode: func(m map[string]any) ([]byte, error) { return json.Marshal(m) },
	},
	{
		name:   "yaml",
		loader: kongyaml.Loader,
		decode: func(b []byte) (map[string]any, error) {
			m := map[string]any{}
			return m, yaml.Unmarshal(b, &m)
		},
		encode: func(m map[string]any) ([]byte, error) { return yaml.Marshal(m) },
		section: func(root map[string]any, command string) map[string]any {
			sub, _ := root[command].(map[string]any)
			return sub
		},
	},
	{
		name:   "toml",
		loader: kongtoml.Loader,
		decode: func(b []byte) (map[string]any, error) {
			tree, err := toml.LoadBytes(b)
			if err != nil {
				return nil, err
			}
			return tree.ToMap(), nil
		},
		encode: func(m map[string]any) ([]byte, error) { return toml.Marshal(m) },
	},
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTemplate runs config init and replaces the template defaults with values,
// keyed by flag name.
func writeTemplate(t *testing.T, f format, command, path string, values map[string]any) {
	t.Helper()
	require.NoError(t, (&cmd.ConfigInit{Command: command, Format: f.name, Output: path}).Run(discardLogger()))
	if values == nil {
		return
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	root, err := f.decode(data)
	require.NoError(t, err)

	flags := root
	if f.section != nil {
		flags = f.section(root, command)
		require.NotNil(t, flags, "template has no %q section", command)
	}

	replaced := 0
	for k := range flags {
		if v, ok := values[strings.ReplaceAll(k, "_", "-")]; ok {
			flags[k] = v
			replaced++
		}
	}
	require.Equal(t, len(values), replaced, "template keys: %v", flags)

	data, err = f.encode(root)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func parse(t *testing.T, f format, args []string, paths ...string) (*config.CLI, error) {
	t.Helper()
	var cli config.CLI
	parser, err := kong.New(&cli,
		kong.Name("eguikeys"),
		kong.Exit(func(int) { t.Fatalf("unexpected exit") }),
		kong.Configuration(f.loader, paths...),
	)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return &cli, err
}

func TestGenerateTemplateRoundTrip(t *testing.T) {
	values := map[string]any{
		"keys":      "keys.yaml",
		"output":    "match.rs",
		"enum":      "winit::event::VirtualKeyCode",
		"key-type":  "egui::Key",
		"scrutinee": "code",
		"indent":    int64(4),
	}

	for _, f := range formats {
		for _, args := range [][]string{{"generate"}, {}} {
			t.Run(f.name+"/"+strings.Join(append([]string{"args"}, args...), "-"), func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "generate."+f.name)
				writeTemplate(t, f, "generate", path, values)

				cli, err := parse(t, f, args, path)
				require.NoError(t, err)
				assert.Equal(t, cmd.Generate{
					Keys:      "keys.yaml",
					Output:    "match.rs",
					Enum:      "winit::event::VirtualKeyCode",
					KeyType:   "egui::Key",
					Scrutinee: "code",
					Indent:    4,
				}, cli.Generate)
			})
		}
	}
}

func TestUnchangedGenerateTemplateKeepsDefaults(t *testing.T) {
	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "generate."+f.name)
			writeTemplate(t, f, "generate", path, nil)

			cli, err := parse(t, f, nil, path)
			require.NoError(t, err)
			assert.Equal(t, cmd.Generate{
				Output:    "-",
				Enum:      "VirtualKeyCode",
				KeyType:   "Key",
				Scrutinee: "key",
				Indent:    2,
			}, cli.Generate)
		})
	}
}

func TestTableTemplateRoundTrip(t *testing.T) {
	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "table."+f.name)
			writeTemplate(t, f, "table", path, map[string]any{"format": "yaml", "keys": "other.toml"})

			cli, err := parse(t, f, []string{"table"}, path)
			require.NoError(t, err)
			assert.Equal(t, "yaml", cli.Table.Format)
			assert.Equal(t, "other.toml", cli.Table.Keys)
		})
	}
}

func TestTemplatesDoNotLeakIntoConfigInit(t *testing.T) {
	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			dir := t.TempDir()
			gen := filepath.Join(dir, "generate."+f.name)
			tbl := filepath.Join(dir, "table."+f.name)
			writeTemplate(t, f, "generate", gen, nil)
			writeTemplate(t, f, "table", tbl, nil)

			cli, err := parse(t, f, []string{"config", "init", "generate"}, gen, tbl)
			require.NoError(t, err)
			assert.Equal(t, "json", cli.Config.Init.Format)
			assert.Equal(t, "", cli.Config.Init.Output)
		})
	}
}

func TestTOMLRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generate.toml")
	require.NoError(t, os.WriteFile(path, []byte("keyType = \"egui::Key\"\n"), 0o644))

	_, err := parse(t, formats[2], nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration keys")
}
