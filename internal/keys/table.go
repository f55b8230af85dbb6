// Package keys holds the egui key table and the rules that translate an egui
// key name into the matching VirtualKeyCode identifier.
package keys

// table lists every key egui reports, in emission order.
var table = []string{
	"ArrowDown",
	"ArrowLeft",
	"ArrowRight",
	"ArrowUp",
	"Escape",
	"Tab",
	"Backspace",
	"Enter",
	"Space",
	"Insert",
	"Delete",
	"Home",
	"End",
	"PageUp",
	"PageDown",
	"Num0",
	"Num1",
	"Num2",
	"Num3",
	"Num4",
	"Num5",
	"Num6",
	"Num7",
	"Num8",
	"Num9",
	"A",
	"B",
	"C",
	"D",
	"E",
	"F",
	"G",
	"H",
	"I",
	"J",
	"K",
	"L",
	"M",
	"N",
	"O",
	"P",
	"Q",
	"R",
	"S",
	"T",
	"U",
	"V",
	"W",
	"X",
	"Y",
	"Z",
}

// Default returns a copy of the built-in key table.
func Default() []string {
	out := make([]string, len(table))
	copy(out, table)
	return out
}

// Entry is one row of a translated key table.
type Entry struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	Identifier string `json:"identifier" yaml:"identifier" toml:"identifier"`
	Rule       string `json:"rule" yaml:"rule" toml:"rule"`
}

// Entries translates names in order.
func Entries(names []string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		id, rule := Explain(n)
		out = append(out, Entry{Name: n, Identifier: id, Rule: rule})
	}
	return out
}
