package spin

import (
	"context"
	"os"
	"os/signal"

	"github.com/loilo-inc/logos/di"
	"github.com/loilo-inc/spincage/key"
	"github.com/loilo-inc/spincage/types"
)

// With runs fn while a spinner built from d is active. The spinner is
// stopped on every exit path. An interrupt while fn runs stops the
// spinner cleanly and ends the process with status 1; fn is abandoned.
// Cancelling ctx stops the spinner and returns the context error.
func With(ctx context.Context, d *di.D, fn func(s types.Spinner) error) error {
	s := NewSpinner(d)
	s.Start()
	defer s.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	errc := make(chan error, 1)
	go func() { errc <- fn(s) }()
	select {
	case err := <-errc:
		return err
	case <-sig:
		s.Stop()
		d.Get(key.Term).(types.Terminator).Exit(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
