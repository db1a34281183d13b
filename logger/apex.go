package logger

import "github.com/apex/log"

// apexSink adapts an apex/log logger to the Sink interface. apex has
// no verbose level, so verbose messages are logged at its debug level.
type apexSink struct {
	log log.Interface
}

var _ Sink = (*apexSink)(nil)

func NewApexSink(l log.Interface) Sink {
	return &apexSink{log: l}
}

// ApexLevel maps a sink level to the apex/log level that admits the
// same records.
func ApexLevel(l Level) log.Level {
	switch l {
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.DebugLevel
	}
}

func (s *apexSink) entry(fields Fields) log.Interface {
	if len(fields) == 0 {
		return s.log
	}
	return s.log.WithFields(log.Fields(fields))
}

func (s *apexSink) Verbose(msg string, fields Fields) {
	s.entry(fields).Debug(msg)
}

func (s *apexSink) Debug(msg string, fields Fields) {
	s.entry(fields).Debug(msg)
}

func (s *apexSink) Warn(msg string, fields Fields) {
	s.entry(fields).Warn(msg)
}

func (s *apexSink) Error(msg string, fields Fields) {
	s.entry(fields).Error(msg)
}
