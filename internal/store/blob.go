package store

import (
	"context"
	"sync"
)

// Blob is the durable document-store boundary: whole-document read and
// whole-document overwrite of one named value. The engine asks nothing
// else of its persistence backend (no transactions, no range queries, no
// secondary indexes), so a remote database can replace the local one
// without touching the engine's contracts.
type Blob interface {
	// Get returns the stored bytes and whether a value exists.
	Get(ctx context.Context) ([]byte, bool, error)

	// Set overwrites the stored value.
	Set(ctx context.Context, data []byte) error
}

// MemoryBlob is an in-memory Blob for tests and ephemeral runs.
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemoryBlob returns an empty in-memory blob.
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

// Seed pre-loads raw bytes, e.g. to simulate a corrupted document.
func (m *MemoryBlob) Seed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.set = true
}

func (m *MemoryBlob) Get(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *MemoryBlob) Set(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.set = true
	return nil
}
