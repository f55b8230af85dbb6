package keys

import "strings"

const (
	digitPrefix = "Num"
	arrowPrefix = "Arrow"
	// VirtualKeyCode spells digit keys Key0..Key9.
	targetDigitPrefix = "Key"
)

// Rule rewrites a key name when Match reports true.
type Rule struct {
	Name  string
	Match func(name string) bool
	Apply func(name string) string
}

func prefixRule(name, prefix, replacement string) Rule {
	return Rule{
		Name:  name,
		Match: func(s string) bool { return strings.HasPrefix(s, prefix) },
		Apply: func(s string) string { return replacement + strings.TrimPrefix(s, prefix) },
	}
}

func exactRule(name, from, to string) Rule {
	return Rule{
		Name:  name,
		Match: func(s string) bool { return s == from },
		Apply: func(string) string { return to },
	}
}

// identity is the fallback and must stay last.
var identity = Rule{
	Name:  "identity",
	Match: func(string) bool { return true },
	Apply: func(s string) string { return s },
}

// rules are evaluated in order, first match wins.
var rules = []Rule{
	prefixRule("digit", digitPrefix, targetDigitPrefix),
	prefixRule("arrow", arrowPrefix, ""),
	exactRule("backspace", "Backspace", "Back"),
	exactRule("enter", "Enter", "Return"),
	identity,
}

// Rules returns the translation rules in precedence order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Translate maps an egui key name to its VirtualKeyCode identifier.
// Any string is accepted; names no rule rewrites are returned unchanged.
func Translate(name string) string {
	id, _ := Explain(name)
	return id
}

// Explain is Translate plus the name of the rule that fired.
func Explain(name string) (string, string) {
	for _, r := range rules {
		if r.Match(name) {
			return r.Apply(name), r.Name
		}
	}
	// unreachable while identity terminates rules
	return name, identity.Name
}
