// internal/writer/builder.go
package writer

import (
	"errors"
	"io"
	"time"

	cfg "github.com/tamzrod/saj-reader/internal/config"
)

// Build creates one writer per configured output.
// Assumes config has already passed Validate and Normalize.
func Build(out cfg.OutputsConfig, stdout io.Writer) (Writer, func() error, error) {
	var writers []Writer
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	if out.Stdout != nil {
		w, err := NewStreamWriter(stdout, out.Stdout.Format)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, w)
	}

	if out.NATS != nil {
		w, err := NewNATSWriter(
			out.NATS.URL,
			out.NATS.Subject,
			out.NATS.Format,
			time.Duration(out.NATS.TimeoutMs)*time.Millisecond,
		)
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		writers = append(writers, w)
		closers = append(closers, w.Close)
	}

	if len(writers) == 0 {
		return nil, nil, errors.New("writer: no outputs configured")
	}
	if len(writers) == 1 {
		return writers[0], closeAll, nil
	}
	return Multi(writers...), closeAll, nil
}
