package spinapp

import (
	"github.com/loilo-inc/logos/di"
	"github.com/loilo-inc/spincage/env"
)

// SpinCmdProvider builds the dependency domain a command runs its
// spinner against.
type SpinCmdProvider = func(envars *env.Envars) (*di.D, error)
