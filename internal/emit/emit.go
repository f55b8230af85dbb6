// Package emit renders a key table as a Rust match block mapping
// VirtualKeyCode variants onto egui keys.
package emit

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

const matchTemplate = `match {{.Scrutinee}} {
{{range .Arms}}{{$.Indent}}{{$.Enum}}::{{.Pattern}} => Some({{$.KeyType}}::{{.Key}}),
{{end}}{{.Indent}}_ => None
}
`

var tmpl = template.Must(template.New("match").Parse(matchTemplate))

// Options controls the names used in the generated block.
type Options struct {
	Enum      string
	KeyType   string
	Scrutinee string
	Indent    string
}

// DefaultOptions produces the block pasted into the Amethyst integration.
func DefaultOptions() Options {
	return Options{
		Enum:      "VirtualKeyCode",
		KeyType:   "Key",
		Scrutinee: "key",
		Indent:    "  ",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Enum == "" {
		o.Enum = d.Enum
	}
	if o.KeyType == "" {
		o.KeyType = d.KeyType
	}
	if o.Scrutinee == "" {
		o.Scrutinee = d.Scrutinee
	}
	return o
}

// Arm is one case of the match block.
type Arm struct {
	Pattern string
	Key     string
}

// Arms pairs each name with its translated pattern, keeping input order.
func Arms(names []string, translate func(string) string) []Arm {
	arms := make([]Arm, 0, len(names))
	for _, n := range names {
		arms = append(arms, Arm{Pattern: translate(n), Key: n})
	}
	return arms
}

type matchData struct {
	Options
	Arms []Arm
}

// Match writes the match block for arms to w. Empty names in opts fall back
// to DefaultOptions; Indent is used verbatim.
func Match(w io.Writer, arms []Arm, opts Options) error {
	data := matchData{Options: opts.withDefaults(), Arms: arms}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// Indent returns n spaces; negative counts yield none.
func Indent(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
