// internal/fault/fault.go
package fault

// Entry maps one status-word bitmask to its message.
type Entry struct {
	Mask    uint32
	Message string
}

// Table is an ordered mask -> message mapping for one status word.
// Matches are reported in Entries order, not bit order.
type Table struct {
	ID      string
	Entries []Entry
}

// Decode matches each status word against the table at the same position.
// A zero word contributes nothing. Overlapping masks are evaluated independently.
// The result is never nil: an empty slice means "no faults".
func Decode(words []uint32, tables []Table) []string {
	out := []string{}

	for i, w := range words {
		if w == 0 || i >= len(tables) {
			continue
		}
		for _, e := range tables[i].Entries {
			if w&e.Mask != 0 {
				out = append(out, e.Message)
			}
		}
	}

	return out
}

// Lookup returns a built-in table by id.
func Lookup(id string) (Table, bool) {
	t, ok := registry[id]
	return t, ok
}

// IDs lists the built-in table ids in status-word order.
func IDs() []string {
	return []string{Master0.ID, Master1.ID, Slave2.ID}
}

var registry = map[string]Table{
	Master0.ID: Master0,
	Master1.ID: Master1,
	Slave2.ID:  Slave2,
}
