// internal/status/snapshot.go
package status

// Snapshot is the runner-owned health of one unit.
// It contains no logic beyond the transition rules in Observe.
type Snapshot struct {
	Health       uint16
	LastError    string
	CyclesFailed uint32
}

// Observe folds one poll outcome into the snapshot and reports whether Health
// or LastError changed. CyclesFailed counts consecutive failures and resets on recovery.
func (s *Snapshot) Observe(err error) bool {
	if err == nil {
		changed := s.Health != HealthOK || s.LastError != ""
		s.Health = HealthOK
		s.LastError = ""
		s.CyclesFailed = 0
		return changed
	}

	msg := err.Error()
	changed := s.Health != HealthError || s.LastError != msg
	s.Health = HealthError
	s.LastError = msg
	if s.CyclesFailed < ^uint32(0) {
		s.CyclesFailed++
	}
	return changed
}
