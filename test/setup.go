package test

import (
	"github.com/loilo-inc/spincage/env"
	"golang.org/x/xerrors"
)

// Err is a sentinel error for tests.
var Err = xerrors.New("error")

// DefaultEnvars returns envars with the spinner's real delays shrunk
// so tests do not spend wall-clock time in visibility waits.
func DefaultEnvars() *env.Envars {
	return &env.Envars{
		SpinTickMillis:   1,
		InfoDelayMillis:  1,
		StopSettleMillis: 1,
		JoinWaitMillis:   500,
	}
}
