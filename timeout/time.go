package timeout

import (
	"time"

	"github.com/loilo-inc/spincage/types"
)

// Time is the real clock used by the spinner's animation loop.
type Time struct{}

var _ types.Time = (*Time)(nil)

func (t *Time) Now() time.Time {
	return time.Now()
}
func (t *Time) NewTimer(d time.Duration) *time.Timer {
	return time.NewTimer(d)
}
