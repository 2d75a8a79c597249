package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/config"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/store"
)

func TestNewDocumentStore_Memory(t *testing.T) {
	documents, err := newDocumentStore(Config{StoreBackend: config.StoreBackendMemory}, nil)

	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, documents)
}

func TestNewDocumentStore_DefaultsToPostgres(t *testing.T) {
	documents, err := newDocumentStore(Config{}, nil)

	require.NoError(t, err)
	assert.IsType(t, &store.PostgresStore{}, documents)
}

func TestNewDocumentStore_FirestoreRequiresProject(t *testing.T) {
	_, err := newDocumentStore(Config{StoreBackend: config.StoreBackendFirestore}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "project ID")
}

func TestNewDocumentStore_UnknownBackend(t *testing.T) {
	_, err := newDocumentStore(Config{StoreBackend: "redis"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
