package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

// ErrUnsupported is returned when the host has no clipboard utility.
var ErrUnsupported = errors.New("system clipboard unavailable")

// System writes to the operating-system clipboard.
type System struct{}

// NewSystem returns the OS clipboard adapter.
func NewSystem() System { return System{} }

// WriteAll implements ports.Clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard. Used when the terminal has no clipboard
// and in tests.
type Memory struct {
	mu      sync.Mutex
	history []string
	err     error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory { return &Memory{} }

// WriteAll implements ports.Clipboard.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.history = append(m.history, text)
	return nil
}

// FailWith makes subsequent writes return err. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Last returns the most recent write and whether there was one.
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return "", false
	}
	return m.history[len(m.history)-1], true
}

// History returns every write in order.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Detect returns the system clipboard when one is available, otherwise an
// in-memory fallback.
func Detect() ports.Clipboard {
	if clipboard.Unsupported {
		return NewMemory()
	}
	return NewSystem()
}

var (
	_ ports.Clipboard = System{}
	_ ports.Clipboard = (*Memory)(nil)
)
