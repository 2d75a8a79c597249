package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

const (
	usersCollection   = "users"
	resumesCollection = "resumes"
	defaultDocumentID = "default"
)

// FirestoreStore persists documents at users/{ownerID}/resumes/default.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a FirestoreStore backed by the given client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) documentRef(ownerID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(ownerID).Collection(resumesCollection).Doc(defaultDocumentID)
}

// Load retrieves and migrates the owner's document.
func (s *FirestoreStore) Load(ctx context.Context, ownerID string) (*StoredDocument, error) {
	snap, err := s.documentRef(ownerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document for %s: %w", ownerID, err)
	}

	data := snap.Data()
	payload, err := json.Marshal(data["data"])
	if err != nil {
		return nil, fmt.Errorf("failed to encode stored payload for %s: %w", ownerID, err)
	}
	record, err := ingestion.ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored payload for %s: %w", ownerID, err)
	}

	doc := &StoredDocument{Record: record}
	if ts, ok := data["updatedAt"].(time.Time); ok {
		doc.UpdatedAt = ts
	}
	return doc, nil
}

// Save writes the document with a server-assigned update time. The write is
// a merge, so concurrent writers interleave at the field level.
func (s *FirestoreStore) Save(ctx context.Context, ownerID string, record *types.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode document for %s: %w", ownerID, err)
	}
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to decode document for %s: %w", ownerID, err)
	}

	_, err = s.documentRef(ownerID).Set(ctx, map[string]any{
		"data":      data,
		"updatedAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to save document for %s: %w", ownerID, err)
	}
	return nil
}
