package main

import (
	"fmt"
	"log"
	"os"

	"github.com/loilo-inc/spincage/cli/spin/commands"
	"github.com/loilo-inc/spincage/cli/spin/spinapp"
	"github.com/loilo-inc/spincage/env"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "spincage"
	app.HelpName = "spin"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A terminal spinner that holds its bad news until the line is clean"
	app.Description = "A terminal spinner that holds its bad news until the line is clean"
	envars := env.Envars{}
	cmds := commands.NewSpinCommands(spinapp.ProvideSpinCli)
	app.Commands = []*cli.Command{
		cmds.Demo(&envars),
		cmds.Play(&envars),
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "ci",
			Usage:       "CI mode. Stretch the animation tick so captured logs stay readable.",
			EnvVars:     []string{"CI"},
			Destination: &envars.CI,
		},
		&cli.BoolFlag{
			Name:        "noColor",
			Usage:       "Disable colored level tokens in console logs.",
			EnvVars:     []string{env.NoColorKey},
			Destination: &envars.NoColor,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
