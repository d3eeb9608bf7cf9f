package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process backend. Several writers sharing one Memory behave
// like tabs sharing one browser profile.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
	quota int
}

// NewMemory creates an empty in-memory backend; quota <= 0 disables the size limit
func NewMemory(quota int) *Memory {
	return &Memory{slots: make(map[string][]byte), quota: quota}
}

// Get implements Backend
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set implements Backend
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	if err := checkQuota(m.quota, value); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = slices.Clone(value)
	return nil
}
