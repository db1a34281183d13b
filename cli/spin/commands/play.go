package commands

import (
	"time"

	spin "github.com/loilo-inc/spincage"
	"github.com/loilo-inc/spincage/cli/spin/spinapp"
	"github.com/loilo-inc/spincage/env"
	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/types"
	"github.com/urfave/cli/v2"
)

func (c *spinCommands) Play(envars *env.Envars) *cli.Command {
	return &cli.Command{
		Name:        "play",
		Usage:       "play a scenario file through the spinner",
		Description: "drives the spinner with the steps listed in a scenario toml file",
		ArgsUsage:   "<path of scenario toml>",
		Flags: []cli.Flag{
			spinapp.LogLevelFlag(&envars.Level),
			spinapp.LogSinkFlag(&envars.Sink),
			spinapp.SpinTickFlag(&envars.SpinTickMillis),
			spinapp.InfoDelayFlag(&envars.InfoDelayMillis),
			spinapp.StopSettleFlag(&envars.StopSettleMillis),
			spinapp.JoinWaitFlag(&envars.JoinWaitMillis),
		},
		Action: func(ctx *cli.Context) error {
			path, _, err := RequireArgs(ctx, 1, 1)
			if err != nil {
				return err
			}
			sc, err := LoadScenario(path)
			if err != nil {
				return err
			}
			d, err := c.provider(envars)
			if err != nil {
				return err
			}
			return spin.With(ctx.Context, d, func(s types.Spinner) error {
				return playScenario(s, sc)
			})
		},
	}
}

func playScenario(s types.Spinner, sc *Scenario) error {
	for _, st := range sc.Steps {
		applyStep(s, st)
		if st.SleepMillis > 0 {
			time.Sleep(time.Duration(st.SleepMillis) * time.Millisecond)
		}
	}
	return nil
}

func applyStep(s types.Spinner, st Step) {
	var opts []types.LogOpt
	if len(st.Fields) > 0 {
		opts = append(opts, types.WithFields(logger.Fields(st.Fields)))
	}
	if st.Quit {
		opts = append(opts, types.WithQuit())
	}
	if st.ReturnCode != 0 {
		opts = append(opts, types.WithReturnCode(st.ReturnCode))
	}
	switch st.Level {
	case "info":
		s.Info(st.Msg, opts...)
	case "verbose":
		s.Verbose(st.Msg, opts...)
	case "debug":
		s.Debug(st.Msg, opts...)
	case "warn":
		s.Warn(st.Msg, opts...)
	default:
		s.Error(st.Msg, opts...)
	}
}
