package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository on the backend.
func NewDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// NewRepository opens a BadgerDB database at path and returns a document
// repository backed by it. Closing the repository closes the database.
func NewRepository(path string) (storage.DocumentRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return NewDocumentRepository(backend), nil
}

// Close closes the underlying backend.
func (r *DocumentRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments adds one or more document records to storage.
func (r *DocumentRepository) AddDocuments(ctx context.Context, records ...*core.DocumentRecord) ([]*core.DocumentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeDocumentKey(record.Id)

			existing, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				return storage.ErrDuplicateKey
			}

			now := time.Now().UTC()
			if record.UploadedAt.IsZero() {
				record.UploadedAt = now
			}
			record.UpdatedAt = now

			// Store primary record
			value := storage.MarshalDocumentRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update upload-date index
			dateKey := makeDocumentDateKey(record.UploadedAt, record.Id)
			if err := tx.Set(dateKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateDocument updates an existing document record.
func (r *DocumentRepository) UpdateDocument(ctx context.Context, record *core.DocumentRecord) (*core.DocumentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDocumentKey(record.Id)

		old, err := r.readDocument(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		record.UpdatedAt = time.Now().UTC()

		value := storage.MarshalDocumentRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Move the upload-date index entry if the upload time changed
		if !old.UploadedAt.Equal(record.UploadedAt) {
			oldDateKey := makeDocumentDateKey(old.UploadedAt, old.Id)
			if err := tx.Delete(oldDateKey); err != nil {
				return err
			}
			newDateKey := makeDocumentDateKey(record.UploadedAt, record.Id)
			if err := tx.Set(newDateKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return record, err
}

// GetDocument retrieves a single document record by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.DocumentRecord, error) {
	var result *core.DocumentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDocumentKey(id)
		var err error
		result, err = r.readDocument(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListDocuments retrieves all document records, newest upload first.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error) {
	return r.listDocuments(func(*core.DocumentRecord) bool { return true })
}

// FilterDocuments retrieves records whose title or author contains the query
// as a case-insensitive substring, newest upload first.
func (r *DocumentRepository) FilterDocuments(ctx context.Context, query string) ([]*core.DocumentRecord, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.ListDocuments(ctx)
	}
	return r.listDocuments(func(record *core.DocumentRecord) bool {
		return strings.Contains(strings.ToLower(record.Title), query) ||
			strings.Contains(strings.ToLower(record.Author), query)
	})
}

// CompletedDocuments retrieves records that finished processing and carry
// an embedding, newest upload first. This is the search candidate set.
func (r *DocumentRepository) CompletedDocuments(ctx context.Context) ([]*core.DocumentRecord, error) {
	return r.listDocuments(func(record *core.DocumentRecord) bool {
		return record.Status == core.StatusCompleted && len(record.Embedding) > 0
	})
}

// DeleteDocuments removes document records by their IDs.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)

			record, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			dateKey := makeDocumentDateKey(record.UploadedAt, record.Id)
			if err := tx.Delete(dateKey); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Stats returns aggregate counts over all document records. Processing
// counts every record that has not yet reached a terminal status.
func (r *DocumentRepository) Stats(ctx context.Context) (*core.LibraryStats, error) {
	stats := &core.LibraryStats{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(docRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.DocumentRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalDocumentRecord(val)
				return err
			})
			if err != nil {
				return err
			}

			stats.Total++
			switch record.Status {
			case core.StatusCompleted:
				stats.Completed++
			case core.StatusFailed:
				stats.Failed++
			default:
				stats.Processing++
			}
		}
		return nil
	}, false)

	return stats, err
}

// listDocuments walks the upload-date index in reverse, collecting records
// that pass the keep filter.
func (r *DocumentRepository) listDocuments(keep func(*core.DocumentRecord) bool) ([]*core.DocumentRecord, error) {
	var results []*core.DocumentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible date key, then walk backwards
		startKey := makePartialDocumentDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(docDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := r.readDocument(tx, makeDocumentKey(recordID))
			if err != nil {
				return err
			}
			if record != nil && keep(record) {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// readDocument reads a document record from the transaction.
// Returns nil without error when the key does not exist.
func (r *DocumentRepository) readDocument(tx *badger.Txn, key []byte) (*core.DocumentRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.DocumentRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalDocumentRecord(val)
		return unmarshalErr
	})
	return record, err
}
