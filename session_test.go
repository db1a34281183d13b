package spin_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	spin "github.com/loilo-inc/spincage"
	"github.com/loilo-inc/spincage/test"
	"github.com/loilo-inc/spincage/types"
	"github.com/stretchr/testify/assert"
)

func TestWith(t *testing.T) {
	t.Run("returns what fn returns", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		err := spin.With(context.Background(), d, func(s types.Spinner) error {
			s.Info("working")
			return test.Err
		})
		assert.EqualError(t, err, "error")
		assert.Equal(t, []string{"\x1b[2K\r"}, deps.prt.Stdout())
	})
	t.Run("returns nil on success", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		err := spin.With(context.Background(), d, func(s types.Spinner) error {
			return nil
		})
		assert.NoError(t, err)
		assert.Empty(t, deps.term.Codes())
	})
	t.Run("returns the context error when cancelled", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		block := make(chan struct{})
		defer close(block)
		err := spin.With(ctx, d, func(s types.Spinner) error {
			<-block
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, deps.term.Codes())
	})
	t.Run("interrupt stops the spinner and exits with 1", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		block := make(chan struct{})
		defer close(block)
		err := spin.With(context.Background(), d, func(s types.Spinner) error {
			p, err := os.FindProcess(os.Getpid())
			if err != nil {
				return err
			}
			if err := p.Signal(os.Interrupt); err != nil {
				return err
			}
			<-block
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{1}, deps.term.Codes())
		writes := deps.prt.Stdout()
		assert.Equal(t, "\x1b[2K\r", writes[len(writes)-1])
	})
}

func TestWith_FullSession(t *testing.T) {
	step := test.NewFakeStepTimer()
	d, deps := newTestDomain(step)
	err := spin.With(context.Background(), d, func(s types.Spinner) error {
		s.Info("resolving refs")
		assert.Eventually(t, func() bool {
			step.Tick()
			return strings.Contains(deps.prt.OutString(), "\x1b[2K\r- resolving refs")
		}, 5*time.Second, time.Millisecond)
		s.Verbose("remote answered")
		s.Warn("cache miss")
		s.Info("pushing objects")
		assert.Eventually(t, func() bool {
			step.Tick()
			return strings.Contains(deps.prt.OutString(), " pushing objects")
		}, 5*time.Second, time.Millisecond)
		s.Debug("delta reused")
		s.Error("push rejected")
		return nil
	})
	assert.NoError(t, err)
	calls := deps.sink.Calls()
	assert.Equal(t, []test.SinkCall{
		{Level: "verbose", Msg: "remote answered"},
		{Level: "debug", Msg: "delta reused"},
		{Level: "warn", Msg: "cache miss"},
		{Level: "error", Msg: "push rejected"},
	}, calls)
	writes := deps.prt.Stdout()
	assert.Equal(t, "\x1b[2K\r", writes[len(writes)-1])
	// deferred text never lands on the spinner's line
	assert.NotContains(t, deps.prt.OutString(), "cache miss")
	assert.NotContains(t, deps.prt.OutString(), "push rejected")
	assert.Empty(t, deps.term.Codes())
}
