// internal/writer/encode.go
package writer

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	cfg "github.com/tamzrod/saj-reader/internal/config"
	"github.com/tamzrod/saj-reader/internal/decode"
)

// encMode is deterministic: map keys in canonical order.
var encMode cbor.EncMode

func init() {
	var err error
	opts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// Encoder frames one value per call.
// JSON: one object per line. YAML: one document. CBOR: one data item.
type Encoder struct {
	format string
	plain  bool
	marsh  func(v any) ([]byte, error)
}

// NewEncoder returns the encoder for a format name. Empty means JSON.
func NewEncoder(format string) (*Encoder, error) {
	switch format {
	case "", cfg.FormatJSON:
		return &Encoder{format: cfg.FormatJSON, marsh: marshalJSON}, nil
	case cfg.FormatYAML:
		return &Encoder{format: cfg.FormatYAML, marsh: marshalYAML}, nil
	case cfg.FormatCBOR:
		return &Encoder{format: cfg.FormatCBOR, plain: true, marsh: encMode.Marshal}, nil
	default:
		return nil, fmt.Errorf("writer: unknown format %q", format)
	}
}

func (e *Encoder) Format() string { return e.format }

// Result encodes a whole poll cycle.
func (e *Encoder) Result(env Envelope) ([]byte, error) {
	return e.marsh(env)
}

// Record encodes one decoded record in field order (CBOR: canonical order).
func (e *Encoder) Record(r *decode.Record) ([]byte, error) {
	if e.plain {
		return e.marsh(r.Plain())
	}
	return e.marsh(r)
}

func marshalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func marshalYAML(v any) ([]byte, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte("---\n"), b...), nil
}
