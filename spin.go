package spin

import (
	"sync"
	"time"

	"github.com/loilo-inc/logos/di"
	"github.com/loilo-inc/spincage/key"
	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/timeout"
	"github.com/loilo-inc/spincage/types"
)

// cmdBuffer bounds the command channel. Senders block only when they
// outrun the loop by this many commands.
const cmdBuffer = 256

type spinner struct {
	di       *di.D
	cmds     chan command
	stopc    chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

// NewSpinner returns a Spinner wired from the given dependency domain.
// The domain must provide key.Sink, key.Printer, key.Time, key.Term
// and key.Timeout.
func NewSpinner(di *di.D) types.Spinner {
	return &spinner{
		di:    di,
		cmds:  make(chan command, cmdBuffer),
		stopc: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (s *spinner) sink() logger.Sink {
	return s.di.Get(key.Sink).(logger.Sink)
}

func (s *spinner) printer() logger.Printer {
	return s.di.Get(key.Printer).(logger.Printer)
}

func (s *spinner) time() types.Time {
	return s.di.Get(key.Time).(types.Time)
}

func (s *spinner) term() types.Terminator {
	return s.di.Get(key.Term).(types.Terminator)
}

func (s *spinner) timeout() timeout.Manager {
	return s.di.Get(key.Timeout).(timeout.Manager)
}

func (s *spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.run()
}

func (s *spinner) Stop() {
	s.mu.Lock()
	started := s.started
	s.stopped = true
	s.mu.Unlock()
	s.stopOnce.Do(func() { s.stop(started) })
}

func (s *spinner) stop(started bool) {
	close(s.stopc)
	if started {
		select {
		case <-s.done:
		case <-time.After(s.timeout().JoinWait()):
		}
	}
	// let the final erase take effect before the caller writes again
	time.Sleep(s.timeout().StopSettle())
}
