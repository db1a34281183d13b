package spinapp

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/loilo-inc/logos/di"
	spin "github.com/loilo-inc/spincage"
	"github.com/loilo-inc/spincage/env"
	"github.com/loilo-inc/spincage/key"
	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/timeout"
	"github.com/mattn/go-isatty"
)

// ProvideSpinCli wires the default command domain against the real
// terminal, clock and process.
func ProvideSpinCli(envars *env.Envars) (*di.D, error) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return ProvideSpinDomain(envars, os.Stdout, os.Stderr, tty)
}

// ProvideSpinDomain wires a command domain onto the given streams.
// Runs without a terminal fall back to CI cadence so captured logs do
// not fill up with animation frames.
func ProvideSpinDomain(envars *env.Envars, stdout, stderr io.Writer, tty bool) (*di.D, error) {
	if !tty {
		envars.CI = true
	}
	if err := env.EnsureEnvars(envars); err != nil {
		return nil, err
	}
	level := logger.LevelVerbose
	if envars.Level != "" {
		if l, err := logger.ParseLevel(envars.Level); err != nil {
			return nil, err
		} else {
			level = l
		}
	}
	var sink logger.Sink
	switch envars.Sink {
	case env.SinkApex:
		sink = logger.NewApexSink(&log.Logger{
			Handler: text.New(stderr),
			Level:   logger.ApexLevel(level),
		})
	default:
		sink = logger.NewConsole(stdout, stderr, level, envars.NoColor)
	}
	d := di.NewDomain(func(b *di.B) {
		b.Set(key.Env, envars)
		b.Set(key.Sink, sink)
		b.Set(key.Printer, logger.NewPrinter(stdout, stderr))
		b.Set(key.Time, &timeout.Time{})
		b.Set(key.Term, spin.NewTerminator())
		b.Set(key.Timeout, timeout.NewManager(envars))
	})
	return d, nil
}
