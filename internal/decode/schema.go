// internal/decode/schema.go
package decode

import (
	"fmt"

	"github.com/tamzrod/saj-reader/internal/fault"
)

// Kind selects the primitive decoder for a field.
type Kind int

const (
	Unsigned16 Kind = iota
	Signed16
	Unsigned32
	ASCIIPair
	PackedDateTime
	FaultGroup
)

var kindNames = map[Kind]string{
	Unsigned16:     "u16",
	Signed16:       "i16",
	Unsigned32:     "u32",
	ASCIIPair:      "ascii",
	PackedDateTime: "datetime",
	FaultGroup:     "faults",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a schema kind name ("u16", "i16", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// Field describes one named value inside a register buffer.
type Field struct {
	Name   string
	Offset int // register index relative to the buffer start
	Kind   Kind

	// Count is the number of registers of an ASCIIPair field.
	Count int

	// Scale multiplies numeric kinds; 0 leaves the raw integer.
	Scale float64
	// Decimals rounds scaled values; nil derives it from Scale.
	Decimals *int

	// Lookup maps an Unsigned16 code to a name (e.g. operating mode).
	Lookup   func(uint16) string
	LookupID string

	// Tables is the ordered fault table set of a FaultGroup field,
	// one composite 32-bit status word per table.
	Tables []fault.Table
}

// Width returns the number of registers the field consumes.
func (f Field) Width() int {
	switch f.Kind {
	case Unsigned16, Signed16:
		return 1
	case Unsigned32:
		return 2
	case ASCIIPair:
		return f.Count
	case PackedDateTime:
		return 4
	case FaultGroup:
		return 2 * len(f.Tables)
	default:
		return 0
	}
}

// EntryLayout describes a buffer made of fixed-size repeating entries.
type EntryLayout struct {
	Size int
	// EndMarker, when set, ends the sequence at the first entry whose
	// first register holds this value.
	EndMarker *uint16
	// IndexField receives the 1-based entry number.
	IndexField string
}

// Schema is one device register layout: where to read and how to decode it.
type Schema struct {
	Name    string
	Version int
	Address uint16
	Count   uint16
	Fields  []Field
	Entry   *EntryLayout
}

// Validate reports schema authoring mistakes. It does not look at any buffer.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("schema: nil")
	}
	if s.Name == "" {
		return fmt.Errorf("schema: name required")
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %s: at least one field required", s.Name)
	}

	span := int(s.Count)
	if s.Entry != nil {
		if s.Entry.Size <= 0 {
			return fmt.Errorf("schema %s: entry size must be > 0", s.Name)
		}
		if s.Count > 0 && int(s.Count)%s.Entry.Size != 0 {
			return fmt.Errorf("schema %s: count %d is not a multiple of entry size %d", s.Name, s.Count, s.Entry.Size)
		}
		span = s.Entry.Size
	}

	seen := make(map[string]bool, len(s.Fields))
	if s.Entry != nil && s.Entry.IndexField != "" {
		seen[s.Entry.IndexField] = true
	}

	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %s: field name required", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true

		if f.Offset < 0 {
			return fmt.Errorf("schema %s: field %q: negative offset", s.Name, f.Name)
		}
		if f.Scale < 0 || (f.Decimals != nil && *f.Decimals < 0) {
			return fmt.Errorf("schema %s: field %q: scale and decimals must not be negative", s.Name, f.Name)
		}

		switch f.Kind {
		case Unsigned16, Signed16, Unsigned32:
		case ASCIIPair:
			if f.Count <= 0 {
				return fmt.Errorf("schema %s: field %q: ascii count must be > 0", s.Name, f.Name)
			}
		case PackedDateTime:
		case FaultGroup:
			if len(f.Tables) == 0 {
				return fmt.Errorf("schema %s: field %q: fault group needs at least one table", s.Name, f.Name)
			}
		default:
			return fmt.Errorf("schema %s: field %q: unknown kind %v", s.Name, f.Name, f.Kind)
		}

		if f.Lookup != nil && f.Kind != Unsigned16 {
			return fmt.Errorf("schema %s: field %q: lookup is only valid on u16", s.Name, f.Name)
		}
		if f.Lookup != nil && (f.Scale != 0 || f.Decimals != nil) {
			return fmt.Errorf("schema %s: field %q: lookup cannot be combined with scale or decimals", s.Name, f.Name)
		}
		if (f.Kind != Unsigned16 && f.Kind != Signed16 && f.Kind != Unsigned32) && f.Scale != 0 {
			return fmt.Errorf("schema %s: field %q: scale is only valid on numeric kinds", s.Name, f.Name)
		}

		if span > 0 && f.Offset+f.Width() > span {
			return fmt.Errorf(
				"schema %s: field %q: offset %d + width %d exceeds %d registers",
				s.Name, f.Name, f.Offset, f.Width(), span,
			)
		}
	}

	return nil
}
