// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/saj-reader/internal/schema"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: empty")
	}
	if len(cfg.Reader.Units) == 0 {
		return fmt.Errorf("config: at least one unit required")
	}

	known := make(map[string]bool)
	for _, n := range schema.Names() {
		known[n] = true
	}

	// key = endpoint | unit_id
	sourceOwner := make(map[string]string)
	ids := make(map[string]bool)

	for _, u := range cfg.Reader.Units {
		if u.ID == "" {
			return fmt.Errorf("config: unit id required")
		}
		if ids[u.ID] {
			return fmt.Errorf("config: duplicate unit id %q", u.ID)
		}
		ids[u.ID] = true

		if u.Source.Endpoint == "" {
			return fmt.Errorf("unit %q: source endpoint required", u.ID)
		}
		if u.Source.TimeoutMs < 0 {
			return fmt.Errorf("unit %q: timeout_ms must not be negative", u.ID)
		}
		if u.Poll.IntervalMs < 0 {
			return fmt.Errorf("unit %q: interval_ms must not be negative", u.ID)
		}

		// compare effective unit ids: 0 is normalized to the default
		unitID := u.Source.UnitID
		if unitID == 0 {
			unitID = DefaultUnitID
		}
		key := fmt.Sprintf("%s|%d", u.Source.Endpoint, unitID)
		if prev, exists := sourceOwner[key]; exists {
			return fmt.Errorf(
				"source collision: endpoint=%s unit_id=%d polled by units %q and %q",
				u.Source.Endpoint,
				unitID,
				prev,
				u.ID,
			)
		}
		sourceOwner[key] = u.ID

		// ------------------------------------------------------------
		// BLOCKS
		// ------------------------------------------------------------

		if len(u.Blocks) == 0 {
			return fmt.Errorf("unit %q: at least one block required", u.ID)
		}

		seen := make(map[string]bool)
		for _, b := range u.Blocks {
			if seen[b] {
				return fmt.Errorf("unit %q: block %q listed twice", u.ID, b)
			}
			seen[b] = true

			if u.Schemas[b] == "" && !known[b] {
				return fmt.Errorf("unit %q: unknown block %q and no schema override", u.ID, b)
			}
		}

		for b := range u.Schemas {
			if !seen[b] {
				return fmt.Errorf("unit %q: schema override for block %q which is not read", u.ID, b)
			}
		}
	}

	// ------------------------------------------------------------
	// OUTPUTS
	// ------------------------------------------------------------

	out := cfg.Reader.Outputs
	if out.Stdout == nil && out.NATS == nil {
		return fmt.Errorf("config: at least one output required")
	}
	if out.Stdout != nil {
		if err := validateFormat(out.Stdout.Format); err != nil {
			return fmt.Errorf("output stdout: %w", err)
		}
	}
	if out.NATS != nil {
		if out.NATS.URL == "" {
			return fmt.Errorf("output nats: url required")
		}
		if out.NATS.Subject == "" {
			return fmt.Errorf("output nats: subject required")
		}
		if err := validateFormat(out.NATS.Format); err != nil {
			return fmt.Errorf("output nats: %w", err)
		}
	}

	return nil
}

func validateFormat(f string) error {
	switch f {
	case "", FormatJSON, FormatYAML, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
