// Package snapshot persists whole-collection snapshots as single JSON documents
package snapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/rpg-table/internal/repositories/snapshot Repository

import (
	"context"
)

// LoadInput defines the input for loading a snapshot
type LoadInput struct{}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	// Data is the raw JSON document. Empty when nothing has been saved yet.
	Data []byte
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Data []byte
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	BytesWritten int
}

// Repository stores one snapshot document. Save fully replaces the previous
// document; a failed Save leaves the previous document readable.
type Repository interface {
	// Load returns the current document
	// Returns an empty Data for a missing or empty document
	// Returns errors.Unavailable for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save atomically replaces the document
	// Returns errors.Unavailable for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}
