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


package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/extract"
	"github.com/inklab/docstream/storage"
)

const (
	// extractingPlaceholder is committed before extraction starts so
	// observers see progress before any slow work.
	extractingPlaceholder = "Extracting text from document..."

	// noTextPlaceholder replaces whitespace-only extraction output.
	noTextPlaceholder = "No text could be extracted from this document (it might be an image scan without OCR layer)."

	// errorKeyword is the sentinel substituted on keyword extraction failure.
	errorKeyword = "Processing Error"
)

// Worker advances a single document through the pipeline stages,
// committing after each stage. It holds no queue state of its own; the
// Manager decides which document it processes next.
type Worker struct {
	repository storage.DocumentRepository
	provider   extract.Provider
	embedder   embedding.Embedder
	logger     *slog.Logger
}

// NewWorker creates a pipeline worker.
func NewWorker(repository storage.DocumentRepository, provider extract.Provider, embedder embedding.Embedder) (*Worker, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	return &Worker{
		repository: repository,
		provider:   provider,
		embedder:   embedder,
		logger:     slog.Default().With("component", "pipeline-worker"),
	}, nil
}

// Process runs the full pipeline for one document and commits each stage.
// It always leaves the document in a terminal state unless the record is
// missing or storage itself fails. A panic escaping any stage is recovered
// and reported as ErrWorkerPanic so one bad document cannot wedge the queue.
func (w *Worker) Process(ctx context.Context, id core.ID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("panic while processing document", "id", id, "panic", r)
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	record, err := w.repository.GetDocument(ctx, id)
	if err != nil {
		// A vanished record is dequeued silently; the queue must keep moving.
		w.logger.Warn("document missing, skipping", "id", id, "err", err)
		return nil
	}

	logger := w.logger.With("id", id, "title", record.Title)

	// Stage 1: visible progress placeholder
	record.Status = core.StatusProcessing
	record.Stage = core.StageExtracting
	record.ExtractedText = extractingPlaceholder
	if record, err = w.repository.UpdateDocument(ctx, record); err != nil {
		return err
	}

	// Stage 1 -> 2: text extraction, the only fatal step
	text, err := w.provider.TextExtractor().ExtractText(ctx, record.SourcePath)
	if err != nil {
		logger.Error("text extraction failed", "err", err)
		record.Status = core.StatusFailed
		record.Stage = core.StageTerminal
		record.ExtractedText = fmt.Sprintf("Error extracting text: %v", err)
		_, commitErr := w.repository.UpdateDocument(ctx, record)
		return commitErr
	}
	if strings.TrimSpace(text) == "" {
		text = noTextPlaceholder
	}

	record.ExtractedText = text
	record.Stage = core.StageAnalyzing
	if record, err = w.repository.UpdateDocument(ctx, record); err != nil {
		return err
	}

	// Stage 2 -> 3: keyword extraction, non-fatal
	keywords, kwErr := w.provider.KeywordExtractor().ExtractKeywords(ctx, text)
	if kwErr != nil {
		logger.Warn("keyword extraction failed", "err", kwErr)
		keywords = []string{errorKeyword}
	}

	record.Keywords = keywords
	record.Stage = core.StageTerminal
	if record, err = w.repository.UpdateDocument(ctx, record); err != nil {
		return err
	}

	// Entity extraction, non-fatal
	entities, entErr := w.provider.EntityExtractor().ExtractEntities(ctx, text, extract.MaxEntityInputChars)
	if entErr != nil {
		logger.Warn("entity extraction failed", "err", entErr)
		entities = nil
	}
	entities = dedupeEntities(entities)

	// Author backfill scans the full deduplicated list; the stored cap
	// must not hide a PERSON that appears late in a long document.
	if record.Author == "" || record.Author == core.PlaceholderAuthor {
		if author := firstPerson(entities); author != "" {
			record.Author = author
		}
	}
	if len(entities) > extract.MaxEntitiesPerDocument {
		entities = entities[:extract.MaxEntitiesPerDocument]
	}

	// Embedding, non-fatal
	vector, embedErr := w.embedder.Embed(text)
	if embedErr != nil {
		logger.Warn("embedding failed", "err", embedErr)
		vector = make([]float32, w.embedder.Dimension())
	}

	// Terminal commit
	record.Entities = entities
	record.Embedding = vector
	record.Status = core.StatusCompleted
	record.Stage = core.StageTerminal
	if _, err = w.repository.UpdateDocument(ctx, record); err != nil {
		return err
	}

	logger.Debug("document completed",
		"keywords", len(record.Keywords),
		"entities", len(record.Entities))
	return nil
}

// dedupeEntities drops entities whose exact text was already seen,
// preserving extraction order.
func dedupeEntities(entities []core.Entity) []core.Entity {
	if len(entities) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(entities))
	result := make([]core.Entity, 0, len(entities))
	for _, entity := range entities {
		if _, ok := seen[entity.Text]; ok {
			continue
		}
		seen[entity.Text] = struct{}{}
		result = append(result, entity)
	}
	return result
}

// firstPerson returns the text of the first PERSON entity, or "".
func firstPerson(entities []core.Entity) string {
	for _, entity := range entities {
		if entity.Label == extract.LabelPerson {
			return entity.Text
		}
	}
	return ""
}
