// internal/config/config.go
package config

type Config struct {
	Reader ReaderConfig `yaml:"reader"`
}

type ReaderConfig struct {
	Units   []UnitConfig  `yaml:"units"`
	Outputs OutputsConfig `yaml:"outputs"`
}

// ---- UNIT ----

type UnitConfig struct {
	ID     string       `yaml:"id"`
	Source SourceConfig `yaml:"source"`
	Poll   PollConfig   `yaml:"poll"`

	// Blocks are catalogue layout names, read in order every cycle.
	Blocks []string `yaml:"blocks"`

	// Schemas optionally overrides a block's layout with a schema file.
	Schemas map[string]string `yaml:"schemas"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- OUTPUTS ----

type OutputsConfig struct {
	Stdout *StdoutConfig `yaml:"stdout"`
	NATS   *NATSConfig   `yaml:"nats"`
}

type StdoutConfig struct {
	Format string `yaml:"format"`
}

type NATSConfig struct {
	URL       string `yaml:"url"`
	Subject   string `yaml:"subject"`
	Format    string `yaml:"format"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Output formats understood by the writers.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

// ---- DEFAULTS ----

const (
	DefaultUnitID     uint8 = 1
	DefaultTimeoutMs        = 3000
	DefaultIntervalMs       = 10000
	DefaultFormat           = FormatJSON
)
