package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/jgraef/eguikeys/internal/keys"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// Table prints each key with its translated identifier and the rule that produced it.
type Table struct {
	Keys   string `help:"Key table file (json, yaml or toml) replacing the built-in egui table" env:"EGUIKEYS_KEYS"`
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"EGUIKEYS_TABLE_FORMAT"`
}

type tableDoc struct {
	Keys []keys.Entry `json:"keys" yaml:"keys" toml:"keys"`
}

// Run is called by Kong when the table command is executed.
func (c *Table) Run(logger *slog.Logger, stdout io.Writer) error {
	names, err := loadTable(logger, c.Keys)
	if err != nil {
		return err
	}
	doc := tableDoc{Keys: keys.Entries(names)}

	if c.Format == "" || c.Format == "text" {
		return writeTextTable(stdout, doc.Keys)
	}

	var data []byte
	switch normalizeFormat(c.Format) {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func writeTextTable(w io.Writer, entries []keys.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if isTerminal(w) {
		fmt.Fprintln(tw, "NAME\tIDENTIFIER\tRULE")
	}
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Identifier, e.Rule)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
