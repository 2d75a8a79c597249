// Package store provides persistence backends for resume documents keyed by
// owner ID. Every backend stores the same shape: the document payload plus
// the time it was last written. Loads run payloads through ingestion, so a
// legacy document saved by an older client comes back in canonical form.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

// ErrNotFound indicates the owner has no stored document.
var ErrNotFound = errors.New("document not found")

// StoredDocument represents a loaded resume document with its last write time.
type StoredDocument struct {
	Record    *types.Record
	UpdatedAt time.Time
}

// DocumentStore persists one resume document per owner.
type DocumentStore interface {
	// Load retrieves the owner's document, or ErrNotFound.
	Load(ctx context.Context, ownerID string) (*StoredDocument, error)

	// Save overwrites the owner's document.
	Save(ctx context.Context, ownerID string, record *types.Record) error
}
