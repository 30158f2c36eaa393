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

package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/storage"
)

// Config holds configuration for a reindexing run.
type Config struct {
	// BatchSize is the number of documents updated per storage write
	BatchSize int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      50,
		ReportInterval: 50,
	}
}

// Reindexer recomputes the embeddings of all completed documents.
type Reindexer struct {
	repo     storage.DocumentRepository
	embedder embedding.Embedder
	config   *Config
	progress io.Writer
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.DocumentRepository, embedder embedding.Embedder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Reindexer{
		repo:     repo,
		embedder: embedder,
		config:   config,
		progress: progress,
	}
}

// Run re-embeds every completed document's extracted text and writes the
// new vectors back. Documents still mid-pipeline are left alone; their
// embeddings will be computed with the current scheme anyway.
func (r *Reindexer) Run(ctx context.Context) error {
	all, err := r.repo.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	candidates := make([]*core.DocumentRecord, 0, len(all))
	for _, record := range all {
		if record.Status == core.StatusCompleted {
			candidates = append(candidates, record)
		}
	}

	total := len(candidates)
	if total == 0 {
		fmt.Fprintf(r.progress, "No completed documents to reindex (0 documents)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d documents (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	for start := 0; start < total; start += r.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + r.config.BatchSize
		if end > total {
			end = total
		}

		for _, record := range candidates[start:end] {
			vector, err := r.embedder.Embed(record.ExtractedText)
			if err != nil {
				return fmt.Errorf("failed to embed document %d: %w", record.Id, err)
			}
			record.Embedding = vector
			if _, err := r.repo.UpdateDocument(ctx, record); err != nil {
				return fmt.Errorf("failed to update document %d: %w", record.Id, err)
			}
		}

		processed += end - start
		tracker.Update(processed)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d documents in %v (%.1f documents/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())
	return nil
}
