// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/saj-reader/internal/decode"
)

// Client abstracts the register read the poller needs (FC 3).
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	UnitID   string
	Interval time.Duration
	Reads    []ReadBlock
	Log      logrus.FieldLogger
}

// Poller is a clock-driven reader + decoder.
type Poller struct {
	cfg     Config
	client  Client
	factory func() (Client, error)
	log     logrus.FieldLogger
}

// New creates a poller with immutable config.
// factory may be nil; then a failed client is never replaced.
func New(cfg Config, client Client, factory func() (Client, error)) (*Poller, error) {
	if cfg.UnitID == "" {
		return nil, errors.New("poller: unit id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read block required")
	}
	for _, rb := range cfg.Reads {
		if rb.Schema == nil {
			return nil, fmt.Errorf("poller: block %q has no schema", rb.Name)
		}
	}

	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Poller{
		cfg:     cfg,
		client:  client,
		factory: factory,
		log:     log.WithField("unit", cfg.UnitID),
	}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle and no block is returned.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		Cycle:  uuid.New(),
		UnitID: p.cfg.UnitID,
		At:     time.Now(),
	}

	if p.client == nil {
		if p.factory == nil {
			res.Err = errors.New("poller: no client")
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: connect: %w", err)
			return res
		}
		p.client = c
	}

	blocks := make([]BlockResult, 0, len(p.cfg.Reads))

	for _, rb := range p.cfg.Reads {
		s := rb.Schema

		regs, err := p.client.ReadHoldingRegisters(s.Address, s.Count)
		if err != nil {
			// Transport is opaque: drop the client, a later cycle reconnects.
			p.discardClient()
			res.Err = fmt.Errorf("poller: read %s (addr=0x%04X qty=%d): %w", rb.Name, s.Address, s.Count, err)
			return res
		}

		recs, err := decode.DecodeEntries(decode.NewBuffer(s.Address, regs), s)
		if err != nil {
			res.Err = fmt.Errorf("poller: decode %s: %w", rb.Name, err)
			return res
		}

		p.logFaults(res.Cycle, rb.Name, recs)

		blocks = append(blocks, BlockResult{
			Name:     rb.Name,
			Address:  s.Address,
			Quantity: s.Count,
			Records:  recs,
		})
	}

	// Commit only if all reads succeeded
	res.Blocks = blocks
	return res
}

// Close releases the current client, if any.
func (p *Poller) Close() error {
	c, ok := p.client.(io.Closer)
	p.client = nil
	if !ok {
		return nil
	}
	return c.Close()
}

func (p *Poller) discardClient() {
	if err := p.Close(); err != nil {
		p.log.WithError(err).Debug("close after transport failure")
	}
}

func (p *Poller) logFaults(cycle uuid.UUID, block string, recs []*decode.Record) {
	for _, r := range recs {
		for _, k := range r.Keys() {
			v, _ := r.Get(k)
			if f, ok := v.(decode.Faults); ok {
				p.log.WithFields(logrus.Fields{
					"cycle": cycle,
					"block": block,
					"field": k,
				}).Debugf("faultMsg %s", f.Hex())
			}
		}
	}
}
