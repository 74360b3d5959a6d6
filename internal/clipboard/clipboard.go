// Package clipboard provides the console's clipboard bridge.
package clipboard

import "sync"

// Memory is an in-process clipboard, used when no system clipboard is
// available and in tests. Safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
	has  bool
}

// Get returns the stored text.
func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.has
}

// Set stores text.
func (m *Memory) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.has = true
}

// Has reports whether the clipboard holds text.
func (m *Memory) Has() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has
}
