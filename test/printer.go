package test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/loilo-inc/spincage/logger"
)

// MockPrinter records everything printed, split by stream.
type MockPrinter struct {
	mu     sync.Mutex
	stdout []string
	stderr []string
}

var _ logger.Printer = (*MockPrinter)(nil)

func NewMockPrinter() *MockPrinter {
	return &MockPrinter{}
}

func (m *MockPrinter) PrintOutf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stdout = append(m.stdout, fmt.Sprintf(format, args...))
}

func (m *MockPrinter) PrintErrf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stderr = append(m.stderr, fmt.Sprintf(format, args...))
}

func (m *MockPrinter) Stdout() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.stdout...)
}

func (m *MockPrinter) Stderr() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.stderr...)
}

// OutString returns all stdout writes joined, handy for substring
// assertions against control sequences.
func (m *MockPrinter) OutString() string {
	return strings.Join(m.Stdout(), "")
}
