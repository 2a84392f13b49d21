// internal/writer/nats.go
package writer

import (
	"errors"
	"fmt"
	"time"

	nats "github.com/nats-io/nats.go"

	"github.com/tamzrod/saj-reader/internal/poller"
)

// publisher is the slice of *nats.Conn the writer uses.
type publisher interface {
	Publish(subject string, data []byte) error
	Flush() error
	Close()
}

// NATSWriter publishes each poll result to <subject>.<unit>.
type NATSWriter struct {
	conn    publisher
	subject string
	enc     *Encoder
}

// NewNATSWriter connects to the server at url.
func NewNATSWriter(url, subject, format string, timeout time.Duration) (*NATSWriter, error) {
	if url == "" {
		return nil, errors.New("writer nats: url required")
	}
	nc, err := nats.Connect(url, nats.Name("sajreader"), nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("writer nats: connect %s: %w", url, err)
	}
	w, err := newNATSWriter(nc, subject, format)
	if err != nil {
		nc.Close()
		return nil, err
	}
	return w, nil
}

func newNATSWriter(conn publisher, subject, format string) (*NATSWriter, error) {
	if subject == "" {
		return nil, errors.New("writer nats: subject required")
	}
	enc, err := NewEncoder(format)
	if err != nil {
		return nil, err
	}
	return &NATSWriter{conn: conn, subject: subject, enc: enc}, nil
}

func (n *NATSWriter) Write(res poller.PollResult) error {
	b, err := n.enc.Result(NewEnvelope(res, n.enc.plain))
	if err != nil {
		return fmt.Errorf("writer nats: encode %s: %w", n.enc.Format(), err)
	}

	subj := n.subject + "." + res.UnitID
	if err := n.conn.Publish(subj, b); err != nil {
		return fmt.Errorf("writer nats: publish %s: %w", subj, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (n *NATSWriter) Close() error {
	err := n.conn.Flush()
	n.conn.Close()
	return err
}
