package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/db"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

// PostgresStore persists documents in the resume_documents table.
type PostgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a PostgresStore backed by the given database.
func NewPostgresStore(database *db.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

// Load retrieves and migrates the owner's document.
func (s *PostgresStore) Load(ctx context.Context, ownerID string) (*StoredDocument, error) {
	doc, err := s.db.GetResumeDocument(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	record, err := ingestion.ParseDocument(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored payload for %s: %w", ownerID, err)
	}
	return &StoredDocument{Record: record, UpdatedAt: doc.UpdatedAt}, nil
}

// Save writes the document with a database-assigned update time.
func (s *PostgresStore) Save(ctx context.Context, ownerID string, record *types.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode document for %s: %w", ownerID, err)
	}
	_, err = s.db.SetResumeDocument(ctx, ownerID, payload)
	return err
}
