package timeout

import (
	"time"

	"github.com/loilo-inc/spincage/env"
)

// Defaults for the spinner's internal delays. The CI tick is stretched
// so that CI logs are not flooded with animation frames.
const (
	DefaultSpinTick   = 200 * time.Millisecond
	DefaultCISpinTick = 10 * time.Second
	DefaultInfoDelay  = 100 * time.Millisecond
	DefaultStopSettle = 100 * time.Millisecond
	DefaultJoinWait   = time.Second
)

type Manager interface {
	SpinTick() time.Duration
	InfoDelay() time.Duration
	StopSettle() time.Duration
	JoinWait() time.Duration
}

type manager struct {
	env *env.Envars
}

func NewManager(
	env *env.Envars,
) Manager {
	return &manager{env: env}
}

func (t *manager) SpinTick() time.Duration {
	if t.env.CI {
		return t.env.SpinTick(DefaultCISpinTick)
	}
	return t.env.SpinTick(DefaultSpinTick)
}

func (t *manager) InfoDelay() time.Duration {
	return t.env.InfoDelay(DefaultInfoDelay)
}

func (t *manager) StopSettle() time.Duration {
	return t.env.StopSettle(DefaultStopSettle)
}

func (t *manager) JoinWait() time.Duration {
	return t.env.JoinWait(DefaultJoinWait)
}
