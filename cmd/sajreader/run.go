// cmd/sajreader/run.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tamzrod/saj-reader/internal/config"
	"github.com/tamzrod/saj-reader/internal/poller"
	pmodbus "github.com/tamzrod/saj-reader/internal/poller/modbus"
	"github.com/tamzrod/saj-reader/internal/status"
	"github.com/tamzrod/saj-reader/internal/writer"
)

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Poll the configured units until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runDaemon,
}

func runDaemon(cmd *cobra.Command, args []string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Outputs
	// --------------------

	w, closeWriters, err := writer.Build(cfg.Reader.Outputs, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWriters()

	// --------------------
	// Build per-unit pollers (fail fast)
	// --------------------

	pollers := make([]*poller.Poller, 0, len(cfg.Reader.Units))
	for _, unit := range cfg.Reader.Units {
		p, closePoller, err := poller.Build(unit, logrus.StandardLogger())
		if err != nil {
			return fmt.Errorf("poller build failed (unit=%s): %w", unit.ID, err)
		}
		defer closePoller()
		pollers = append(pollers, p)
	}

	var wg sync.WaitGroup
	for i, p := range pollers {
		unitID := cfg.Reader.Units[i].ID
		out := make(chan poller.PollResult)

		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Run(ctx, out)
		}()
		go func() {
			defer wg.Done()
			deliver(ctx, logrus.WithField("unit", unitID), w, out)
		}()
	}

	logrus.WithField("units", len(pollers)).Info("polling started")
	<-ctx.Done()
	wg.Wait()
	logrus.Info("polling stopped")
	return nil
}

// deliver hands every cycle to the writer and logs health transitions only.
func deliver(ctx context.Context, log logrus.FieldLogger, w writer.Writer, in <-chan poller.PollResult) {
	var snap status.Snapshot

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-in:
			changed := snap.Observe(res.Err)

			switch {
			case res.Err != nil && changed:
				entry := log.WithError(res.Err).WithField("cycle", res.Cycle)
				if code, ok := pmodbus.ExceptionCode(res.Err); ok {
					entry = entry.WithField("exception", code)
				}
				entry.Warn("no data available")
			case res.Err != nil:
				log.WithField("cycles_failed", snap.CyclesFailed).Debug("no data available")
			case changed:
				log.Info("unit healthy")
			}

			if err := w.Write(res); err != nil {
				log.WithError(err).Error("writer error")
			}
		}
	}
}
