// internal/fault/fault_test.go
package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleBit(t *testing.T) {
	got := Decode([]uint32{0x00000001}, []Table{Master1})
	assert.Equal(t, []string{"Code 01: Master Relay Error"}, got)
}

func TestDecode_ZeroWordYieldsEmpty(t *testing.T) {
	for _, tbl := range []Table{Master0, Master1, Slave2} {
		got := Decode([]uint32{0}, []Table{tbl})
		require.NotNil(t, got)
		assert.Empty(t, got, "table %s", tbl.ID)
	}
}

func TestDecode_TableOrderNotBitOrder(t *testing.T) {
	// bit 0 and bit 31: the table lists 0x80000000 first.
	got := Decode([]uint32{0x80000001}, []Table{Master1})
	assert.Equal(t, []string{
		"Code 32: Master Bus Voltage Balance Error",
		"Code 01: Master Relay Error",
	}, got)
}

func TestDecode_OverlappingMasksEvaluatedIndependently(t *testing.T) {
	tbl := Table{
		ID: "overlap",
		Entries: []Entry{
			{0x00000003, "low pair"},
			{0x00000001, "bit zero"},
			{0x00000004, "bit two"},
		},
	}

	got := Decode([]uint32{0x00000001}, []Table{tbl})
	assert.Equal(t, []string{"low pair", "bit zero"}, got)
}

func TestDecode_GroupOrderThenTableOrder(t *testing.T) {
	words := []uint32{0x00000002, 0x00000004, 0x40000000}
	got := Decode(words, []Table{Master0, Master1, Slave2})
	assert.Equal(t, []string{
		"Code 34: Master Bus Voltage Low",
		"Code 03: Master Temperature High Error",
		"Code 80: Slave PV Voltage High Error",
	}, got)
}

func TestDecode_UnmappedBitsIgnored(t *testing.T) {
	// 0x00004000 has no entry in the master0 table.
	got := Decode([]uint32{0x00004000}, []Table{Master0})
	assert.Empty(t, got)
}

func TestLookup(t *testing.T) {
	for _, id := range IDs() {
		tbl, ok := Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, id, tbl.ID)
		assert.NotEmpty(t, tbl.Entries)
	}

	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestTables_UniqueMasks(t *testing.T) {
	for _, tbl := range []Table{Master0, Master1, Slave2} {
		seen := map[uint32]bool{}
		for _, e := range tbl.Entries {
			assert.False(t, seen[e.Mask], "table %s: duplicate mask 0x%08x", tbl.ID, e.Mask)
			seen[e.Mask] = true
		}
	}
	assert.Len(t, Master0.Entries, 16)
	assert.Len(t, Master1.Entries, 32)
	assert.Len(t, Slave2.Entries, 31)
}
