// internal/schema/schema.go
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/saj-reader/internal/decode"
	"github.com/tamzrod/saj-reader/internal/fault"
	"github.com/tamzrod/saj-reader/internal/status"
)

// File is the YAML form of one register layout.
type File struct {
	Name    string        `yaml:"name"`
	Version int           `yaml:"version"`
	Address uint16        `yaml:"address"`
	Count   uint16        `yaml:"count"`
	Entry   *EntryConfig  `yaml:"entry"`
	Fields  []FieldConfig `yaml:"fields"`
}

// ---- REPEATING ENTRIES ----

type EntryConfig struct {
	Size       int     `yaml:"size"`
	EndMarker  *uint16 `yaml:"end_marker"`
	IndexField string  `yaml:"index_field"`
}

// ---- FIELD ----

type FieldConfig struct {
	Name     string   `yaml:"name"`
	Offset   int      `yaml:"offset"`
	Kind     string   `yaml:"kind"`
	Count    int      `yaml:"count"`    // ascii only
	Scale    float64  `yaml:"scale"`    // numeric kinds; 0 = raw
	Decimals *int     `yaml:"decimals"` // unset = derived from scale
	Lookup   string   `yaml:"lookup"`   // u16 only
	Tables   []string `yaml:"tables"`   // faults only
}

// Load reads and builds a schema file.
func Load(path string) (*decode.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return Parse(b)
}

// Parse builds a schema from YAML.
func Parse(b []byte) (*decode.Schema, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	return Build(f)
}

// Build resolves kinds, lookups and fault tables, then validates the result.
func Build(f File) (*decode.Schema, error) {
	s := &decode.Schema{
		Name:    f.Name,
		Version: f.Version,
		Address: f.Address,
		Count:   f.Count,
		Fields:  make([]decode.Field, 0, len(f.Fields)),
	}

	if f.Entry != nil {
		s.Entry = &decode.EntryLayout{
			Size:       f.Entry.Size,
			EndMarker:  f.Entry.EndMarker,
			IndexField: f.Entry.IndexField,
		}
	}

	for _, fc := range f.Fields {
		kind, err := decode.ParseKind(fc.Kind)
		if err != nil {
			return nil, fmt.Errorf("schema %s: field %q: %w", f.Name, fc.Name, err)
		}

		fd := decode.Field{
			Name:     fc.Name,
			Offset:   fc.Offset,
			Kind:     kind,
			Count:    fc.Count,
			Scale:    fc.Scale,
			Decimals: fc.Decimals,
			LookupID: fc.Lookup,
		}

		if fc.Lookup != "" {
			fn, ok := status.Lookup(fc.Lookup)
			if !ok {
				return nil, fmt.Errorf("schema %s: field %q: unknown lookup %q", f.Name, fc.Name, fc.Lookup)
			}
			fd.Lookup = fn
		}

		if len(fc.Tables) > 0 && kind != decode.FaultGroup {
			return nil, fmt.Errorf("schema %s: field %q: tables are only valid on faults", f.Name, fc.Name)
		}
		for _, id := range fc.Tables {
			t, ok := fault.Lookup(id)
			if !ok {
				return nil, fmt.Errorf("schema %s: field %q: unknown fault table %q", f.Name, fc.Name, id)
			}
			fd.Tables = append(fd.Tables, t)
		}

		s.Fields = append(s.Fields, fd)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
