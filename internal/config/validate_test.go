// internal/config/validate_test.go
package config

import "testing"

// helper to build a unit quickly
func unit(id string, endpoint string, unitID uint8, blocks ...string) UnitConfig {
	return UnitConfig{
		ID: id,
		Source: SourceConfig{
			Endpoint: endpoint,
			UnitID:   unitID,
		},
		Poll: PollConfig{
			IntervalMs: 1000,
		},
		Blocks: blocks,
	}
}

func withUnits(units ...UnitConfig) *Config {
	return &Config{
		Reader: ReaderConfig{
			Units: units,
			Outputs: OutputsConfig{
				Stdout: &StdoutConfig{},
			},
		},
	}
}

// ---- tests ----

func TestValidate_DifferentEndpoints(t *testing.T) {
	cfg := withUnits(
		unit("u1", "ep1:502", 1, "realtime"),
		unit("u2", "ep2:502", 1, "realtime"),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SameEndpointDifferentUnitID(t *testing.T) {
	cfg := withUnits(
		unit("u1", "ep1:502", 1, "realtime"),
		unit("u2", "ep1:502", 2, "realtime", "faults"),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SourceCollisionDetected(t *testing.T) {
	cfg := withUnits(
		unit("u1", "ep1:502", 1, "realtime"),
		unit("u2", "ep1:502", 1, "faults"),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected collision error, got nil")
	}
}

func TestValidate_DuplicateUnitID(t *testing.T) {
	cfg := withUnits(
		unit("u1", "ep1:502", 1, "realtime"),
		unit("u1", "ep2:502", 1, "realtime"),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate id error, got nil")
	}
}

func TestValidate_UnknownBlock(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1, "bogus"))

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown block error, got nil")
	}
}

func TestValidate_UnknownBlockWithOverride(t *testing.T) {
	u := unit("u1", "ep1:502", 1, "custom")
	u.Schemas = map[string]string{"custom": "/etc/saj/custom.yaml"}
	cfg := withUnits(u)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_OverrideForUnreadBlock(t *testing.T) {
	u := unit("u1", "ep1:502", 1, "realtime")
	u.Schemas = map[string]string{"faults": "/etc/saj/faults.yaml"}
	cfg := withUnits(u)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected dangling override error, got nil")
	}
}

func TestValidate_BlockListedTwice(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1, "realtime", "realtime"))

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate block error, got nil")
	}
}

func TestValidate_NoBlocks(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1))

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing blocks error, got nil")
	}
}

func TestValidate_MissingEndpoint(t *testing.T) {
	cfg := withUnits(unit("u1", "", 1, "realtime"))

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestValidate_NoOutputs(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1, "realtime"))
	cfg.Reader.Outputs = OutputsConfig{}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected outputs error, got nil")
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1, "realtime"))
	cfg.Reader.Outputs.Stdout.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected format error, got nil")
	}
}

func TestValidate_NATSRequiresSubject(t *testing.T) {
	cfg := withUnits(unit("u1", "ep1:502", 1, "realtime"))
	cfg.Reader.Outputs.NATS = &NATSConfig{URL: "nats://127.0.0.1:4222"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected subject error, got nil")
	}
}

func TestValidate_NoUnits(t *testing.T) {
	if err := Validate(withUnits()); err == nil {
		t.Fatalf("expected units error, got nil")
	}
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestValidate_DefaultUnitIDCollidesWithExplicit(t *testing.T) {
	cfg := withUnits(
		unit("a", "h:502", 0, "realtime"),
		unit("b", "h:502", DefaultUnitID, "faults"),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected collision error for omitted vs explicit unit id, got nil")
	}
}
