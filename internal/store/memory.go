package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// MemoryStore is an in-memory DocumentStore for tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Load retrieves and migrates the owner's document.
func (s *MemoryStore) Load(ctx context.Context, ownerID string) (*StoredDocument, error) {
	s.mu.RLock()
	entry, ok := s.entries[ownerID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	record, err := ingestion.ParseDocument(entry.data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored payload for %s: %w", ownerID, err)
	}
	return &StoredDocument{Record: record, UpdatedAt: entry.updatedAt}, nil
}

// Save writes the document, stamping the current time.
func (s *MemoryStore) Save(ctx context.Context, ownerID string, record *types.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode document for %s: %w", ownerID, err)
	}

	s.mu.Lock()
	s.entries[ownerID] = memoryEntry{data: payload, updatedAt: time.Now().UTC()}
	s.mu.Unlock()
	return nil
}

// SaveRaw stores an arbitrary payload without canonicalizing it first. Tests
// use this to simulate documents written by older clients.
func (s *MemoryStore) SaveRaw(ownerID string, payload []byte) {
	s.mu.Lock()
	s.entries[ownerID] = memoryEntry{data: payload, updatedAt: time.Now().UTC()}
	s.mu.Unlock()
}
