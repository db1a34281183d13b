package spin

import (
	"time"

	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/types"
)

// Info replaces the rendered message. Only the newest message is ever
// painted; earlier ones are overwritten unseen. The short delay before
// returning keeps the message on screen for at least one tick.
func (s *spinner) Info(msg string, _ ...types.LogOpt) {
	if s.send(command{kind: cmdMessage, msg: msg}) {
		time.Sleep(s.timeout().InfoDelay())
	}
}

func (s *spinner) Verbose(msg string, opts ...types.LogOpt) {
	o := types.NewLogOpts(0, opts...)
	s.sink().Verbose(msg, o.Fields)
}

func (s *spinner) Debug(msg string, opts ...types.LogOpt) {
	o := types.NewLogOpts(0, opts...)
	s.sink().Debug(msg, o.Fields)
}

func (s *spinner) Warn(msg string, opts ...types.LogOpt) {
	s.deferred(logger.LevelWarn, 0, msg, opts)
}

// Error defers like Warn but exits with status 1 by default when
// WithQuit is given.
func (s *spinner) Error(msg string, opts ...types.LogOpt) {
	s.deferred(logger.LevelError, 1, msg, opts)
}

func (s *spinner) deferred(level logger.Level, defaultCode int, msg string, opts []types.LogOpt) {
	o := types.NewLogOpts(defaultCode, opts...)
	if !s.send(command{kind: cmdDefer, rec: &record{level: level, msg: msg, opts: o}}) {
		return
	}
	if o.Quit {
		s.Stop()
	}
}
