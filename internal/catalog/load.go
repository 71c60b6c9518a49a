package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// FormatOf returns the catalog format implied by a file name, or "" if the
// extension is not a catalog extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".db", ".sqlite":
		return FormatSQLite
	default:
		return ""
	}
}

// Load reads a YAML or JSON catalog file. SQLite catalogs hold several hubs
// and are read with LoadDB instead.
func Load(path string) (Catalog, error) {
	format := FormatOf(path)
	if format == "" || format == FormatSQLite {
		return Catalog{}, fmt.Errorf("unsupported catalog file %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return Catalog{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog from r in the given format.
func Decode(r io.Reader, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
			return Catalog{}, err
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, err
		}
	default:
		return Catalog{}, fmt.Errorf("unsupported format %q", format)
	}
	return c, nil
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c Catalog, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
