// internal/status/status_test.go
package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	cases := map[uint16]string{
		0:      "Not Connected",
		1:      "Waiting",
		2:      "Normal",
		3:      "Error",
		4:      "Upgrading",
		5:      "Unknown",
		9:      "Unknown",
		0xFFFF: "Unknown",
	}
	for code, want := range cases {
		assert.Equal(t, want, Name(code), "code %d", code)
	}
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup(LookupDeviceStatus)
	require.True(t, ok)
	assert.Equal(t, "Normal", fn(ModeNormal))

	_, ok = Lookup("other")
	assert.False(t, ok)
}

func TestSnapshotObserve(t *testing.T) {
	var s Snapshot
	require.Equal(t, HealthUnknown, s.Health)

	assert.True(t, s.Observe(nil), "unknown -> ok is a change")
	assert.False(t, s.Observe(nil))

	boom := errors.New("boom")
	assert.True(t, s.Observe(boom))
	assert.False(t, s.Observe(boom), "same error twice is not a change")
	assert.Equal(t, uint32(2), s.CyclesFailed)
	assert.Equal(t, HealthError, s.Health)

	assert.True(t, s.Observe(errors.New("other")))
	assert.Equal(t, uint32(3), s.CyclesFailed)

	// recovery resets the failure counter
	assert.True(t, s.Observe(nil))
	assert.Equal(t, uint32(0), s.CyclesFailed)
	assert.Empty(t, s.LastError)
}
