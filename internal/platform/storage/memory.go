package storage

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

// Memory is an in-process document, mostly for tests and demos.
type Memory struct {
	mu       sync.RWMutex
	name     string
	body     []byte
	exists   bool
	writes   int
	readErr  error
	writeErr error
}

func NewMemory(name string, initial []byte) *Memory {
	m := &Memory{name: name}
	if initial != nil {
		m.body = append([]byte(nil), initial...)
		m.exists = true
	}
	return m
}

func (m *Memory) Name() string {
	return m.name
}

func (m *Memory) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, MarkIO(err, "read %s", m.name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.readErr != nil {
		return nil, MarkIO(m.readErr, "read %s", m.name)
	}
	if !m.exists {
		return nil, crerr.Mark(MarkIO(crerr.New("no such document"), "read %s", m.name), ErrNotExist)
	}
	return append([]byte(nil), m.body...), nil
}

func (m *Memory) ReplaceAll(ctx context.Context, body []byte) error {
	if err := ctx.Err(); err != nil {
		return MarkIO(err, "write %s", m.name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return MarkIO(m.writeErr, "write %s", m.name)
	}
	m.body = append(m.body[:0:0], body...)
	m.exists = true
	m.writes++
	return nil
}

// Bytes returns a copy of the current content.
func (m *Memory) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]byte(nil), m.body...)
}

// Writes counts successful replacements.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// FailReads makes subsequent reads fail with err. Nil clears it.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	m.readErr = err
	m.mu.Unlock()
}

// FailWrites makes subsequent writes fail with err. Nil clears it.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}
