// internal/decode/record.go
package decode

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Record is an ordered name -> value mapping produced by one decode call.
// It is never mutated after Decode returns.
type Record struct {
	keys   []string
	values map[string]any
}

func newRecord(n int) *Record {
	return &Record{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

func (r *Record) set(name string, v any) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns field names in schema order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Map returns an unordered copy of the fields.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Plain returns an unordered copy with Timestamp and Faults replaced by
// their serialized forms, for encoders that do not consult text marshalers.
func (r *Record) Plain() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		switch x := v.(type) {
		case Timestamp:
			out[k] = x.String()
		case Faults:
			out[k] = x.View()
		default:
			out[k] = v
		}
	}
	return out
}

// MarshalJSON writes fields in schema order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits a mapping node in schema order.
func (r *Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, k := range r.keys {
		var val yaml.Node
		if err := val.Encode(r.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}

	return node, nil
}
