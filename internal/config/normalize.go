// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for ui := range cfg.Reader.Units {
		u := &cfg.Reader.Units[ui]

		if u.Source.UnitID == 0 {
			u.Source.UnitID = DefaultUnitID
		}
		if u.Source.TimeoutMs == 0 {
			u.Source.TimeoutMs = DefaultTimeoutMs
		}
		if u.Poll.IntervalMs == 0 {
			u.Poll.IntervalMs = DefaultIntervalMs
		}
	}

	out := &cfg.Reader.Outputs
	if out.Stdout != nil && out.Stdout.Format == "" {
		out.Stdout.Format = DefaultFormat
	}
	if out.NATS != nil {
		if out.NATS.Format == "" {
			out.NATS.Format = DefaultFormat
		}
		if out.NATS.TimeoutMs == 0 {
			out.NATS.TimeoutMs = DefaultTimeoutMs
		}
	}
}
