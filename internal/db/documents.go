package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ResumeDocument represents a stored resume payload for one owner
type ResumeDocument struct {
	OwnerID   string    `json:"owner_id"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetResumeDocument retrieves the stored document for an owner; returns nil
// when the owner has never saved one
func (db *DB) GetResumeDocument(ctx context.Context, ownerID string) (*ResumeDocument, error) {
	var doc ResumeDocument
	err := db.pool.QueryRow(ctx,
		`SELECT owner_id, data, updated_at FROM resume_documents WHERE owner_id = $1`,
		ownerID,
	).Scan(&doc.OwnerID, &doc.Data, &doc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume document: %w", err)
	}
	return &doc, nil
}

// SetResumeDocument upserts the stored document for an owner and returns the
// database-assigned update time
func (db *DB) SetResumeDocument(ctx context.Context, ownerID string, data []byte) (time.Time, error) {
	var updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_documents (owner_id, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (owner_id) DO UPDATE SET data = $2, updated_at = NOW()
		 RETURNING updated_at`,
		ownerID, data,
	).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to save resume document: %w", err)
	}
	return updatedAt, nil
}
