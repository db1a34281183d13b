package types

import "github.com/loilo-inc/spincage/logger"

// LogOpts carries the per-call options of a spinner log method. Quit
// and Code are consumed by the spinner itself and never forwarded to
// the sink; Fields pass through verbatim.
type LogOpts struct {
	Quit   bool
	Code   int
	Fields logger.Fields
}

type LogOpt func(*LogOpts)

// NewLogOpts applies opts over defaults. defaultCode seeds Code so
// that error-level calls default to exit status 1.
func NewLogOpts(defaultCode int, opts ...LogOpt) *LogOpts {
	o := &LogOpts{Code: defaultCode}
	for _, f := range opts {
		f(o)
	}
	return o
}

// WithQuit requests that the spinner stop and the process exit once
// deferred messages have been flushed. Meaningful on Warn and Error
// only; other levels ignore it.
func WithQuit() LogOpt {
	return func(o *LogOpts) { o.Quit = true }
}

// WithReturnCode sets the exit status used when quitting.
func WithReturnCode(code int) LogOpt {
	return func(o *LogOpts) { o.Code = code }
}

// WithField attaches a named value to the message.
func WithField(key string, value any) LogOpt {
	return func(o *LogOpts) {
		if o.Fields == nil {
			o.Fields = logger.Fields{}
		}
		o.Fields[key] = value
	}
}

// WithFields attaches all given fields to the message.
func WithFields(fields logger.Fields) LogOpt {
	return func(o *LogOpts) {
		if o.Fields == nil {
			o.Fields = logger.Fields{}
		}
		for k, v := range fields {
			o.Fields[k] = v
		}
	}
}
