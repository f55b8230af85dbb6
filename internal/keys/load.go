package keys

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported key table format")
	ErrEmptyTable        = errors.New("key table is empty")
	ErrEmptyName         = errors.New("key name is empty")
	ErrDuplicateKey      = errors.New("duplicate key name")
)

// File is the on-disk shape of a key table.
type File struct {
	Keys []string `json:"keys" yaml:"keys" toml:"keys"`
}

// Load reads a key table from a .json, .yaml/.yml or .toml file.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key table: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes a key table. ext selects the decoder and may carry the leading dot.
func Parse(ext string, data []byte) ([]string, error) {
	var f File
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		err = json.Unmarshal(data, &f)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode key table: %w", err)
	}
	if err := Validate(f.Keys); err != nil {
		return nil, err
	}
	return f.Keys, nil
}

// Validate checks that names is non-empty and holds unique, non-empty names.
func Validate(names []string) error {
	if len(names) == 0 {
		return ErrEmptyTable
	}
	seen := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyName, i)
		}
		if prev, ok := seen[n]; ok {
			return fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateKey, n, prev, i)
		}
		seen[n] = i
	}
	return nil
}
