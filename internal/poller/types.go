// internal/poller/types.go
package poller

import (
	"time"

	"github.com/google/uuid"

	"github.com/tamzrod/saj-reader/internal/decode"
)

// ReadBlock is one holding-register read and the layout that decodes it.
// Geometry comes from the schema: Address and Count.
type ReadBlock struct {
	Name   string
	Schema *decode.Schema
}

// BlockResult is the decoded result of a single read.
// Repeating layouts (error history) yield one record per entry.
type BlockResult struct {
	Name     string
	Address  uint16
	Quantity uint16
	Records  []*decode.Record
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	Cycle  uuid.UUID
	UnitID string
	At     time.Time

	Blocks []BlockResult
	Err    error // non-nil means the poll cycle failed
}
