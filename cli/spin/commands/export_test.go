package commands

import "time"

func init() {
	demoPause = time.Millisecond
}

var (
	RunDemo      = runDemo
	PlayScenario = playScenario
	ApplyStep    = applyStep
)
