// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tamzrod/saj-reader/internal/decode"
	"github.com/tamzrod/saj-reader/internal/poller"
)

// StreamWriter encodes poll results onto an io.Writer (stdout in the daemon).
// Safe for concurrent use by several unit loops.
type StreamWriter struct {
	mu  sync.Mutex
	w   io.Writer
	enc *Encoder
}

func NewStreamWriter(w io.Writer, format string) (*StreamWriter, error) {
	if w == nil {
		return nil, errors.New("writer: nil stream")
	}
	enc, err := NewEncoder(format)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{w: w, enc: enc}, nil
}

func (s *StreamWriter) Write(res poller.PollResult) error {
	b, err := s.enc.Result(NewEnvelope(res, s.enc.plain))
	if err != nil {
		return fmt.Errorf("writer: encode %s: %w", s.enc.Format(), err)
	}
	return s.emit(b)
}

// WriteRecords emits one encoded value per record.
func (s *StreamWriter) WriteRecords(recs []*decode.Record) error {
	for _, r := range recs {
		b, err := s.enc.Record(r)
		if err != nil {
			return fmt.Errorf("writer: encode %s: %w", s.enc.Format(), err)
		}
		if err := s.emit(b); err != nil {
			return err
		}
	}
	return nil
}

func (s *StreamWriter) emit(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(b); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	return nil
}

// multi fans one result out to every writer and reports all failures.
type multi []Writer

// Multi combines writers. A failing writer does not stop the others.
func Multi(ws ...Writer) Writer {
	return multi(ws)
}

func (m multi) Write(res poller.PollResult) error {
	var errs []string
	for _, w := range m {
		if err := w.Write(res); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}
	return nil
}
