package test

import (
	"sync"

	"github.com/loilo-inc/spincage/logger"
)

type SinkCall struct {
	Level  string
	Msg    string
	Fields logger.Fields
}

// RecordingSink captures sink calls in arrival order. It is safe for
// use from the spinner loop and test goroutines at once.
type RecordingSink struct {
	mu    sync.Mutex
	calls []SinkCall
}

var _ logger.Sink = (*RecordingSink)(nil)

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) record(level, msg string, fields logger.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, SinkCall{Level: level, Msg: msg, Fields: fields})
}

func (s *RecordingSink) Verbose(msg string, fields logger.Fields) {
	s.record("verbose", msg, fields)
}

func (s *RecordingSink) Debug(msg string, fields logger.Fields) {
	s.record("debug", msg, fields)
}

func (s *RecordingSink) Warn(msg string, fields logger.Fields) {
	s.record("warn", msg, fields)
}

func (s *RecordingSink) Error(msg string, fields logger.Fields) {
	s.record("error", msg, fields)
}

// Calls returns a copy of everything recorded so far.
func (s *RecordingSink) Calls() []SinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SinkCall{}, s.calls...)
}
