package test

import (
	"sync"

	"github.com/loilo-inc/spincage/types"
)

// FakeTerminator records exit codes instead of ending the process.
type FakeTerminator struct {
	mu    sync.Mutex
	codes []int
}

var _ types.Terminator = (*FakeTerminator)(nil)

func NewFakeTerminator() *FakeTerminator {
	return &FakeTerminator{}
}

func (f *FakeTerminator) Exit(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes = append(f.codes, code)
}

func (f *FakeTerminator) Codes() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int{}, f.codes...)
}
