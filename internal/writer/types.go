// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/saj-reader/internal/poller"
)

// Writer delivers poll snapshots to one output.
type Writer interface {
	Write(res poller.PollResult) error
}

// Envelope is the serialized form of one poll cycle.
// A failed cycle carries Error and no blocks.
type Envelope struct {
	Cycle  string          `json:"cycle" yaml:"cycle" cbor:"cycle"`
	Unit   string          `json:"unit" yaml:"unit" cbor:"unit"`
	At     string          `json:"at" yaml:"at" cbor:"at"`
	Error  string          `json:"error,omitempty" yaml:"error,omitempty" cbor:"error,omitempty"`
	Blocks []BlockEnvelope `json:"blocks,omitempty" yaml:"blocks,omitempty" cbor:"blocks,omitempty"`
}

// BlockEnvelope is one decoded block.
// Records holds []*decode.Record, or plain maps for CBOR.
type BlockEnvelope struct {
	Name     string `json:"name" yaml:"name" cbor:"name"`
	Address  uint16 `json:"address" yaml:"address" cbor:"address"`
	Quantity uint16 `json:"quantity" yaml:"quantity" cbor:"quantity"`
	Records  any    `json:"records" yaml:"records" cbor:"records"`
}

// NewEnvelope flattens a poll result. plain selects map records for
// encoders that ignore custom marshalers.
func NewEnvelope(res poller.PollResult, plain bool) Envelope {
	env := Envelope{
		Cycle: res.Cycle.String(),
		Unit:  res.UnitID,
		At:    res.At.Format(time.RFC3339Nano),
	}
	if res.Err != nil {
		env.Error = res.Err.Error()
		return env
	}

	for _, b := range res.Blocks {
		be := BlockEnvelope{
			Name:     b.Name,
			Address:  b.Address,
			Quantity: b.Quantity,
			Records:  b.Records,
		}
		if plain {
			recs := make([]map[string]any, len(b.Records))
			for i, r := range b.Records {
				recs[i] = r.Plain()
			}
			be.Records = recs
		}
		env.Blocks = append(env.Blocks, be)
	}
	return env
}
