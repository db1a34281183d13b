package test

import (
	"sync"
	"time"

	"github.com/loilo-inc/spincage/types"
)

func newTimer(_ time.Duration) *time.Timer {
	ch := make(chan time.Time)
	go func() {
		ch <- time.Now()
	}()
	return &time.Timer{
		C: ch,
	}
}

type timeImpl struct{}

func (t *timeImpl) Now() time.Time {
	return time.Now()
}
func (t *timeImpl) NewTimer(d time.Duration) *time.Timer {
	return newTimer(d)
}

// NewFakeTime returns a Time whose timers fire immediately.
func NewFakeTime() types.Time {
	return &timeImpl{}
}

type neverTime struct{}

func (t *neverTime) Now() time.Time {
	return time.Now()
}
func (t *neverTime) NewTimer(time.Duration) *time.Timer {
	return &time.Timer{C: make(chan time.Time)}
}

// NewFakeNeverTimer returns a Time whose timers never fire.
func NewFakeNeverTimer() types.Time {
	return &neverTime{}
}

// StepTimer fires timers only when Tick is called. Timers created
// between ticks wait for the next tick.
type StepTimer struct {
	mu    sync.Mutex
	chans []chan time.Time
}

var _ types.Time = (*StepTimer)(nil)

func NewFakeStepTimer() *StepTimer {
	return &StepTimer{}
}

func (t *StepTimer) Now() time.Time {
	return time.Now()
}

func (t *StepTimer) NewTimer(time.Duration) *time.Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch := make(chan time.Time, 1)
	t.chans = append(t.chans, ch)
	return &time.Timer{C: ch}
}

// Tick fires every timer created since the last call.
func (t *StepTimer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ch := range t.chans {
		select {
		case ch <- time.Now():
		default:
		}
	}
	t.chans = t.chans[:0]
}
