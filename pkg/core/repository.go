package core

import "context"

// Repository defines where rendered notes go.
// Keeping it an interface lets the core stay independent of the filesystem.
type Repository interface {
	// Initialize prepares the storage (e.g. creates the course directory).
	Initialize(ctx context.Context) error

	// Save persists a note. It must never overwrite an existing one.
	Save(ctx context.Context, n *Note) error

	// List returns the notes already stored.
	List(ctx context.Context) ([]Document, error)
}
