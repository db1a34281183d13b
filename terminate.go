package spin

import (
	"os"

	"github.com/loilo-inc/spincage/types"
)

// osTerminator ends the process immediately via os.Exit. Deferred
// functions do not run; the spinner flushes its messages before
// calling it.
type osTerminator struct{}

var _ types.Terminator = (*osTerminator)(nil)

func NewTerminator() types.Terminator {
	return &osTerminator{}
}

func (t *osTerminator) Exit(code int) {
	os.Exit(code)
}
