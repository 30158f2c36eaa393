// Copyright 2026 Inklab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package docstream

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/extract"
	"github.com/inklab/docstream/extract/local"
	"github.com/inklab/docstream/extract/pdf"
	"github.com/inklab/docstream/intake"
	"github.com/inklab/docstream/queue"
	"github.com/inklab/docstream/reindex"
	"github.com/inklab/docstream/search"
	"github.com/inklab/docstream/storage"
	"github.com/inklab/docstream/storage/badger"
)

// Library ties together storage, extraction, the processing queue and
// search behind a single handle.
type Library struct {
	repository storage.DocumentRepository
	embedder   embedding.Embedder
	provider   extract.Provider
	manager    *queue.Manager
	searcher   *search.Searcher
	intake     *intake.Intake
	logger     *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	inMemory  bool
	uploadDir string
	provider  extract.Provider
}

// WithInMemory keeps all documents in memory. Intended for tests and
// short-lived sessions.
func WithInMemory() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// WithUploadDir sets the directory where uploaded files are persisted.
func WithUploadDir(dir string) LibraryOption {
	return func(o *libraryOptions) {
		o.uploadDir = dir
	}
}

// WithProvider replaces the default local extraction provider.
func WithProvider(provider extract.Provider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// NewLibrary opens a document library stored at filePath.
func NewLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		uploadDir: "uploaded_files",
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}
	repository := badger.NewDocumentRepository(backend)

	embedder := embedding.NewHashingEmbedder()

	provider := options.provider
	if provider == nil {
		provider = defaultProvider()
	}

	worker, err := queue.NewWorker(repository, provider, embedder)
	if err != nil {
		repository.Close()
		return nil, err
	}

	manager, err := queue.NewManager(worker)
	if err != nil {
		repository.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(repository, embedder)
	if err != nil {
		manager.Release()
		repository.Close()
		return nil, err
	}

	ingest, err := intake.NewIntake(options.uploadDir, repository, manager)
	if err != nil {
		manager.Release()
		repository.Close()
		return nil, err
	}

	return &Library{
		repository: repository,
		embedder:   embedder,
		provider:   provider,
		manager:    manager,
		searcher:   searcher,
		intake:     ingest,
		logger:     slog.Default(),
	}, nil
}

// Close drains the processing queue and releases all resources.
func (l *Library) Close() error {
	l.manager.Release()

	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing extraction provider", "err", err)
	}

	if err := l.repository.Close(); err != nil {
		l.logger.Error("error closing document repository", "err", err)
		return err
	}
	return nil
}

// Repository exposes the underlying document repository.
func (l *Library) Repository() storage.DocumentRepository {
	return l.repository
}

// Upload stores the file contents and queues the document for processing.
func (l *Library) Upload(ctx context.Context, fileName string, data []byte) (*core.DocumentRecord, error) {
	return l.intake.Upload(ctx, fileName, data)
}

// UploadFile uploads an existing file from disk.
func (l *Library) UploadFile(ctx context.Context, path string) (*core.DocumentRecord, error) {
	return l.intake.UploadFile(ctx, path)
}

// Search runs a hybrid query over completed documents.
func (l *Library) Search(ctx context.Context, query string) ([]*core.SearchResult, error) {
	return l.searcher.Search(ctx, query, search.DefaultTopK)
}

// Related returns documents similar to the given one.
func (l *Library) Related(ctx context.Context, id core.ID) ([]*core.SearchResult, error) {
	return l.searcher.FindRelated(ctx, id, search.DefaultRelatedTopK)
}

// Document returns the record with the given id, or a placeholder record
// when no such document exists.
func (l *Library) Document(ctx context.Context, id core.ID) (*core.DocumentRecord, error) {
	record, err := l.repository.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return core.PlaceholderRecord(), nil
		}
		return nil, err
	}
	return record, nil
}

// Documents lists all records, newest first.
func (l *Library) Documents(ctx context.Context) ([]*core.DocumentRecord, error) {
	return l.repository.ListDocuments(ctx)
}

// Filter lists records whose title or author contains the query.
func (l *Library) Filter(ctx context.Context, query string) ([]*core.DocumentRecord, error) {
	return l.repository.FilterDocuments(ctx, query)
}

// Stats returns per-status document counts.
func (l *Library) Stats(ctx context.Context) (*core.LibraryStats, error) {
	return l.repository.Stats(ctx)
}

// Seed populates the library with a small set of example documents.
func (l *Library) Seed(ctx context.Context) error {
	return intake.SeedLibrary(ctx, l.repository, l.embedder)
}

// Reindex recomputes the embeddings of all completed documents, writing
// progress to the given writer.
func (l *Library) Reindex(ctx context.Context, progress io.Writer) error {
	return reindex.NewReindexer(l.repository, l.embedder, nil, progress).Run(ctx)
}

// WaitIdle blocks until the processing queue drains.
func (l *Library) WaitIdle(ctx context.Context) error {
	return l.manager.WaitIdle(ctx)
}

// defaultProvider runs extraction entirely in process: PDF files go through
// the content-stream extractor, everything else is read as plain text.
func defaultProvider() extract.Provider {
	text := extract.NewRoutingTextExtractor(map[string]extract.TextExtractor{
		".pdf": pdf.NewTextExtractor(),
	}, local.NewTextExtractor())
	return extract.NewBundle(text, local.NewKeywordExtractor(10), local.NewEntityExtractor())
}
