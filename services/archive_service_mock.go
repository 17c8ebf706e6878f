package services

import (
	"context"
	"fmt"
	"sync"
)

// MockArchiver is an in-memory Archiver implementation for testing.
type MockArchiver struct {
	mu       sync.RWMutex
	archived map[string][]byte
}

// NewMockArchiver creates a new mock archiver.
func NewMockArchiver() *MockArchiver {
	return &MockArchiver{archived: make(map[string][]byte)}
}

// Archive stores the workbook in memory.
func (m *MockArchiver) Archive(_ context.Context, key string, content []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	m.archived[key] = stored
	return fmt.Sprintf("mock://%s", key), nil
}

// Archived returns the stored content for a key.
func (m *MockArchiver) Archived(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.archived[key]
	return content, ok
}
