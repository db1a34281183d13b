package logger

import "golang.org/x/xerrors"

// Fields are open-ended named values attached to a log message.
// They reach the sink exactly as the caller supplied them.
type Fields map[string]any

// Sink receives log messages routed around the spinner. Verbose and
// Debug arrive from the calling goroutine while the spinner is still
// animating; Warn and Error arrive only after it stops.
type Sink interface {
	Verbose(msg string, fields Fields)
	Debug(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Level int

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

func ParseLevel(s string) (Level, error) {
	switch s {
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, xerrors.Errorf("unknown log level '%s'", s)
}
