package env

import (
	"github.com/loilo-inc/spincage/logger"
	"golang.org/x/xerrors"
)

type Envars struct {
	_                struct{} `type:"struct"`
	CI               bool     `json:"ci" type:"bool"`
	NoColor          bool     `json:"noColor" type:"bool"`
	Level            string   `json:"logLevel" type:"string"`
	Sink             string   `json:"logSink" type:"string"`
	SpinTickMillis   int      // msec
	InfoDelayMillis  int      // msec
	StopSettleMillis int      // msec
	JoinWaitMillis   int      // msec
}

// sink kinds accepted by --logSink
const (
	SinkConsole = "console"
	SinkApex    = "apex"
)

// optional
const NoColorKey = "SPINCAGE_NO_COLOR"
const LogLevelKey = "SPINCAGE_LOG_LEVEL"
const LogSinkKey = "SPINCAGE_LOG_SINK"
const SpinTickKey = "SPINCAGE_SPIN_TICK_MILLIS"
const InfoDelayKey = "SPINCAGE_INFO_DELAY_MILLIS"
const StopSettleKey = "SPINCAGE_STOP_SETTLE_MILLIS"
const JoinWaitKey = "SPINCAGE_JOIN_WAIT_MILLIS"

func EnsureEnvars(
	dest *Envars,
) error {
	if dest.Level != "" {
		if _, err := logger.ParseLevel(dest.Level); err != nil {
			return xerrors.Errorf("--logLevel [%s] is invalid: %w", LogLevelKey, err)
		}
	}
	switch dest.Sink {
	case "", SinkConsole, SinkApex:
	default:
		return xerrors.Errorf("--logSink [%s] must be either '%s' or '%s'", LogSinkKey, SinkConsole, SinkApex)
	}
	if dest.SpinTickMillis < 0 {
		return xerrors.Errorf("--spinTick [%s] must not be negative", SpinTickKey)
	}
	if dest.InfoDelayMillis < 0 {
		return xerrors.Errorf("--infoDelay [%s] must not be negative", InfoDelayKey)
	}
	if dest.StopSettleMillis < 0 {
		return xerrors.Errorf("--stopSettle [%s] must not be negative", StopSettleKey)
	}
	if dest.JoinWaitMillis < 0 {
		return xerrors.Errorf("--joinWait [%s] must not be negative", JoinWaitKey)
	}
	return nil
}

func MergeEnvars(dest *Envars, src *Envars) {
	if src.CI {
		dest.CI = true
	}
	if src.NoColor {
		dest.NoColor = true
	}
	if src.Level != "" {
		dest.Level = src.Level
	}
	if src.Sink != "" {
		dest.Sink = src.Sink
	}
	if src.SpinTickMillis > 0 {
		dest.SpinTickMillis = src.SpinTickMillis
	}
	if src.InfoDelayMillis > 0 {
		dest.InfoDelayMillis = src.InfoDelayMillis
	}
	if src.StopSettleMillis > 0 {
		dest.StopSettleMillis = src.StopSettleMillis
	}
	if src.JoinWaitMillis > 0 {
		dest.JoinWaitMillis = src.JoinWaitMillis
	}
}
