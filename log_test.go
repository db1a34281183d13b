package spin_test

import (
	"testing"

	spin "github.com/loilo-inc/spincage"
	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/test"
	"github.com/loilo-inc/spincage/types"
	"github.com/stretchr/testify/assert"
)

func TestSpinner_VerboseDebug(t *testing.T) {
	t.Run("reach the sink before any stop", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		s := spin.NewSpinner(d)
		s.Start()
		defer s.Stop()
		s.Verbose("polling upstream")
		s.Debug("attempts left", types.WithField("n", 3))
		assert.Equal(t, []test.SinkCall{
			{Level: "verbose", Msg: "polling upstream"},
			{Level: "debug", Msg: "attempts left", Fields: logger.Fields{"n": 3}},
		}, deps.sink.Calls())
	})
	t.Run("work on a spinner that never started", func(t *testing.T) {
		d, deps := newTestDomain(test.NewFakeNeverTimer())
		s := spin.NewSpinner(d)
		s.Debug("early wiring check")
		assert.Equal(t, []test.SinkCall{
			{Level: "debug", Msg: "early wiring check"},
		}, deps.sink.Calls())
	})
}

func TestSpinner_InfoNeverReachesSink(t *testing.T) {
	d, deps := newTestDomain(test.NewFakeNeverTimer())
	s := spin.NewSpinner(d)
	s.Start()
	s.Info("transient status")
	s.Stop()
	assert.Empty(t, deps.sink.Calls())
}

func TestSpinner_FieldsRoundTrip(t *testing.T) {
	d, deps := newTestDomain(test.NewFakeNeverTimer())
	s := spin.NewSpinner(d)
	s.Start()
	s.Warn("slow shard",
		types.WithField("shard", 3),
		types.WithFields(logger.Fields{"elapsed": "2.5s"}))
	s.Stop()
	assert.Equal(t, []test.SinkCall{
		{Level: "warn", Msg: "slow shard", Fields: logger.Fields{
			"shard":   3,
			"elapsed": "2.5s",
		}},
	}, deps.sink.Calls())
}

func TestSpinner_QuitOptionsNeverForwarded(t *testing.T) {
	d, deps := newTestDomain(test.NewFakeNeverTimer())
	s := spin.NewSpinner(d)
	s.Start()
	s.Error("sync failed",
		types.WithQuit(),
		types.WithReturnCode(3),
		types.WithField("op", "sync"))
	assert.Equal(t, []test.SinkCall{
		{Level: "error", Msg: "sync failed", Fields: logger.Fields{"op": "sync"}},
	}, deps.sink.Calls())
	assert.Equal(t, []int{3}, deps.term.Codes())
}
