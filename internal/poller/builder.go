// internal/poller/builder.go
package poller

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	cfg "github.com/tamzrod/saj-reader/internal/config"
	pmodbus "github.com/tamzrod/saj-reader/internal/poller/modbus"
	"github.com/tamzrod/saj-reader/internal/schema"
)

// Build constructs a Poller and wires Modbus client lifecycle.
// Connection is reused while healthy.
// On transport death, Poller discards the client and uses factory on a future tick.
func Build(u cfg.UnitConfig, log logrus.FieldLogger) (*Poller, func() error, error) {
	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		c, err := pmodbus.New(pmodbus.Config{
			Endpoint: u.Source.Endpoint,
			UnitID:   u.Source.UnitID,
			Timeout:  time.Duration(u.Source.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	reads := make([]ReadBlock, 0, len(u.Blocks))
	for _, name := range u.Blocks {
		s, err := schema.Resolve(name, u.Schemas[name])
		if err != nil {
			return nil, nil, err
		}
		reads = append(reads, ReadBlock{Name: name, Schema: s})
	}

	// initial client (fail fast at startup)
	client, err := factory()
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			UnitID:   u.ID,
			Interval: time.Duration(u.Poll.IntervalMs) * time.Millisecond,
			Reads:    reads,
			Log:      log,
		},
		client,
		factory,
	)
	if err != nil {
		if c, ok := client.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, nil, err
	}

	return p, p.Close, nil
}
