package commands

import (
	"github.com/loilo-inc/spincage/cli/spin/spinapp"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

type spinCommands struct {
	provider spinapp.SpinCmdProvider
}

func NewSpinCommands(provider spinapp.SpinCmdProvider) *spinCommands {
	return &spinCommands{provider: provider}
}

func RequireArgs(
	ctx *cli.Context,
	minArgs int,
	maxArgs int,
) (first string, rest []string, err error) {
	if ctx.NArg() < minArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at least %d", minArgs)
	} else if ctx.NArg() > maxArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at most %d", maxArgs)
	}
	first = ctx.Args().First()
	rest = ctx.Args().Tail()
	return
}
