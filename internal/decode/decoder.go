// internal/decode/decoder.go
package decode

import (
	"errors"
	"fmt"

	"github.com/tamzrod/saj-reader/internal/fault"
)

// Decode applies s to buf and returns a fresh Record.
// The buffer is checked against every field before anything is decoded;
// on any error no Record is returned.
func Decode(buf Buffer, s *Schema) (*Record, error) {
	if err := checkLength(buf.Registers, s.Fields); err != nil {
		return nil, err
	}
	return decodeFields(buf.Registers, s.Fields, nil)
}

// DecodeEntries splits buf into s.Entry.Size slices and decodes each one with s.Fields.
// It stops at the first entry starting with the end marker. A schema without an
// entry layout decodes as a single entry.
func DecodeEntries(buf Buffer, s *Schema) ([]*Record, error) {
	if s.Entry == nil {
		r, err := Decode(buf, s)
		if err != nil {
			return nil, err
		}
		return []*Record{r}, nil
	}

	regs := buf.Registers
	size := s.Entry.Size
	out := []*Record{}

	for start, n := 0, 1; start < len(regs); start, n = start+size, n+1 {
		end := start + size
		if end > len(regs) {
			end = len(regs)
		}
		entry := regs[start:end]

		if s.Entry.EndMarker != nil && entry[0] == *s.Entry.EndMarker {
			break
		}

		if err := checkLength(entry, s.Fields); err != nil {
			return nil, err
		}

		var index *indexField
		if s.Entry.IndexField != "" {
			index = &indexField{name: s.Entry.IndexField, value: n}
		}

		r, err := decodeFields(entry, s.Fields, index)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

type indexField struct {
	name  string
	value int
}

func checkLength(regs []uint16, fields []Field) error {
	for _, f := range fields {
		need := f.Offset + f.Width()
		if need > len(regs) {
			return &BufferTooShortError{
				Field:    f.Name,
				Required: need,
				Actual:   len(regs),
			}
		}
	}
	return nil
}

func decodeFields(regs []uint16, fields []Field, index *indexField) (*Record, error) {
	n := len(fields)
	if index != nil {
		n++
	}
	rec := newRecord(n)

	if index != nil {
		rec.set(index.name, index.value)
	}

	for _, f := range fields {
		v, err := decodeField(regs, f)
		if err != nil {
			return nil, err
		}
		rec.set(f.Name, v)
	}

	return rec, nil
}

func decodeField(regs []uint16, f Field) (any, error) {
	switch f.Kind {
	case Unsigned16:
		raw := Uint16(regs, f.Offset)
		if f.Lookup != nil {
			return f.Lookup(raw), nil
		}
		return scaled(f, float64(raw), raw), nil

	case Signed16:
		raw := Int16(regs, f.Offset)
		return scaled(f, float64(raw), raw), nil

	case Unsigned32:
		raw := Uint32(regs, f.Offset)
		return scaled(f, float64(raw), raw), nil

	case ASCIIPair:
		return ASCII(regs, f.Offset, f.Count), nil

	case PackedDateTime:
		ts, err := DateTime(regs, f.Offset)
		if err != nil {
			var ite *InvalidTimestampError
			if errors.As(err, &ite) {
				ite.Field = f.Name
			}
			return nil, err
		}
		return ts, nil

	case FaultGroup:
		words := make([]uint32, len(f.Tables))
		for i := range f.Tables {
			words[i] = Uint32(regs, f.Offset+2*i)
		}
		return Faults{
			Words:    words,
			Messages: fault.Decode(words, f.Tables),
		}, nil
	}

	return nil, fmt.Errorf("decode: field %q: unknown kind %v", f.Name, f.Kind)
}

func scaled(f Field, raw float64, orig any) any {
	if f.Scale == 0 {
		return orig
	}
	decimals := DecimalsFor(f.Scale)
	if f.Decimals != nil {
		decimals = *f.Decimals
	}
	return Scale(raw, f.Scale, decimals)
}
