package env

import "time"

// Duration getters for the spinner's internal delays. Values are given
// in milliseconds; zero or unset falls back to the given default.

func (e *Envars) SpinTick(defaultTick time.Duration) time.Duration {
	if e.SpinTickMillis > 0 {
		return time.Duration(e.SpinTickMillis) * time.Millisecond
	}
	return defaultTick
}

func (e *Envars) InfoDelay(defaultDelay time.Duration) time.Duration {
	if e.InfoDelayMillis > 0 {
		return time.Duration(e.InfoDelayMillis) * time.Millisecond
	}
	return defaultDelay
}

func (e *Envars) StopSettle(defaultSettle time.Duration) time.Duration {
	if e.StopSettleMillis > 0 {
		return time.Duration(e.StopSettleMillis) * time.Millisecond
	}
	return defaultSettle
}

func (e *Envars) JoinWait(defaultWait time.Duration) time.Duration {
	if e.JoinWaitMillis > 0 {
		return time.Duration(e.JoinWaitMillis) * time.Millisecond
	}
	return defaultWait
}
