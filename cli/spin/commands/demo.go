package commands

import (
	"time"

	"github.com/google/uuid"
	spin "github.com/loilo-inc/spincage"
	"github.com/loilo-inc/spincage/cli/spin/spinapp"
	"github.com/loilo-inc/spincage/env"
	"github.com/loilo-inc/spincage/types"
	"github.com/urfave/cli/v2"
)

// demoPause spaces the scripted phases out enough to watch the
// animation between them.
var demoPause = time.Millisecond * 600

func (c *spinCommands) Demo(envars *env.Envars) *cli.Command {
	var quit bool
	return &cli.Command{
		Name:        "demo",
		Usage:       "run a scripted tour of the spinner",
		Description: "animates a fake deployment touching every logging surface once",
		Flags: []cli.Flag{
			spinapp.LogLevelFlag(&envars.Level),
			spinapp.LogSinkFlag(&envars.Sink),
			spinapp.SpinTickFlag(&envars.SpinTickMillis),
			spinapp.InfoDelayFlag(&envars.InfoDelayMillis),
			spinapp.StopSettleFlag(&envars.StopSettleMillis),
			spinapp.JoinWaitFlag(&envars.JoinWaitMillis),
			&cli.BoolFlag{
				Name:        "quit",
				Usage:       "end the demo with an error that quits the process",
				Destination: &quit,
			},
		},
		Action: func(ctx *cli.Context) error {
			d, err := c.provider(envars)
			if err != nil {
				return err
			}
			return spin.With(ctx.Context, d, func(s types.Spinner) error {
				return runDemo(s, quit)
			})
		},
	}
}

func runDemo(s types.Spinner, quit bool) error {
	runID := uuid.NewString()
	s.Debug("demo starting", types.WithField("run_id", runID))
	s.Info("connecting to upstream")
	time.Sleep(demoPause)
	s.Verbose("upstream answered", types.WithField("run_id", runID))
	s.Info("syncing shards")
	time.Sleep(demoPause)
	s.Warn("shard 3 is slow", types.WithField("shard", 3))
	s.Info("finalizing")
	time.Sleep(demoPause)
	if quit {
		s.Error("upstream closed the stream", types.WithQuit())
	}
	return nil
}
