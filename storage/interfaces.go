package storage

import (
	"context"

	"github.com/inklab/docstream/core"
)

// DocumentRepository provides operations for managing document records.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// AddDocuments adds one or more document records to storage.
	// Sets UploadedAt and UpdatedAt timestamps if not already set.
	// Returns ErrDuplicateKey if a record with the same ID already exists.
	AddDocuments(ctx context.Context, records ...*core.DocumentRecord) ([]*core.DocumentRecord, error)

	// UpdateDocument updates an existing document record.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the record doesn't exist.
	UpdateDocument(ctx context.Context, record *core.DocumentRecord) (*core.DocumentRecord, error)

	// GetDocument retrieves a single document record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.DocumentRecord, error)

	// ListDocuments retrieves all document records ordered by upload time,
	// newest first.
	ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error)

	// FilterDocuments retrieves records whose title or author contains the
	// query as a case-insensitive substring, newest first. An empty query
	// returns all records.
	FilterDocuments(ctx context.Context, query string) ([]*core.DocumentRecord, error)

	// CompletedDocuments retrieves records that finished processing and
	// carry a non-empty embedding, newest first.
	CompletedDocuments(ctx context.Context) ([]*core.DocumentRecord, error)

	// DeleteDocuments removes document records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// Stats returns aggregate counts over all document records.
	Stats(ctx context.Context) (*core.LibraryStats, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
