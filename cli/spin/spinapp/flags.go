package spinapp

import (
	"github.com/loilo-inc/spincage/env"
	"github.com/urfave/cli/v2"
)

func LogLevelFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "logLevel",
		EnvVars:     []string{env.LogLevelKey},
		Usage:       "minimum level printed by the log sink. one of 'verbose', 'debug', 'warn' or 'error'",
		Destination: dest,
	}
}

func LogSinkFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "logSink",
		EnvVars:     []string{env.LogSinkKey},
		Usage:       "log sink implementation. either 'console' or 'apex'",
		Destination: dest,
	}
}

func SpinTickFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "spinTick",
		EnvVars:     []string{env.SpinTickKey},
		Usage:       "milliseconds between animation frames. defaults to 200, or 10000 in CI mode",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

func InfoDelayFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "infoDelay",
		EnvVars:     []string{env.InfoDelayKey},
		Usage:       "milliseconds to pause after posting a status message so it stays readable",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

func StopSettleFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "stopSettle",
		EnvVars:     []string{env.StopSettleKey},
		Usage:       "milliseconds to pause after the spinner stops before returning the terminal",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

func JoinWaitFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "joinWait",
		EnvVars:     []string{env.JoinWaitKey},
		Usage:       "max milliseconds to wait for the render loop to finish when stopping",
		Destination: dest,
		Category:    "ADVANCED",
	}
}
