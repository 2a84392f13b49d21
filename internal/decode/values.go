// internal/decode/values.go
package decode

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the text form of a decoded device time.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a device-reported wall-clock time. The device carries no zone;
// the value is held in UTC without conversion.
type Timestamp time.Time

// Time returns the value as a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).Format(TimestampLayout)
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML output).
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Faults is the decoded fault status of a group of composite status words.
type Faults struct {
	Words    []uint32
	Messages []string
}

// FaultsView is the serialized form of Faults.
type FaultsView struct {
	Status   []string `json:"status" yaml:"status" cbor:"status"`
	Messages []string `json:"messages" yaml:"messages" cbor:"messages"`
}

// None reports whether no fault message matched.
func (f Faults) None() bool {
	return len(f.Messages) == 0
}

// String joins the messages with ", " or returns "No faults".
func (f Faults) String() string {
	if f.None() {
		return "No faults"
	}
	return strings.Join(f.Messages, ", ")
}

// Hex formats the raw status words for diagnostics, e.g. "0x00000001 0x00000000".
func (f Faults) Hex() string {
	return strings.Join(f.hexWords(), " ")
}

func (f Faults) hexWords() []string {
	out := make([]string, len(f.Words))
	for i, w := range f.Words {
		out[i] = fmt.Sprintf("0x%08X", w)
	}
	return out
}

// View returns the serialized form.
func (f Faults) View() FaultsView {
	msgs := f.Messages
	if msgs == nil {
		msgs = []string{}
	}
	return FaultsView{Status: f.hexWords(), Messages: msgs}
}

func (f Faults) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.View())
}

func (f Faults) MarshalYAML() (interface{}, error) {
	return f.View(), nil
}
