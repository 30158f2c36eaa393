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


package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/storage"
)

const (
	// DefaultTopK is the result count for plain searches.
	DefaultTopK = 10

	// DefaultRelatedTopK is the result count for related-document lookups.
	DefaultRelatedTopK = 4

	// relatedQueryChars bounds how much of a document's text seeds a
	// related-documents query.
	relatedQueryChars = 500

	vectorWeight  = 0.7
	keywordWeight = 0.3
)

// Searcher provides hybrid vector and keyword search over completed documents.
type Searcher struct {
	repository storage.DocumentRepository
	embedder   embedding.Embedder
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(repository storage.DocumentRepository, embedder embedding.Embedder, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to topK completed documents ranked by hybrid score.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]*core.SearchResult, error) {
	return s.SearchExcluding(ctx, query, topK, 0)
}

// SearchExcluding is Search with one document ID left out of the results.
// An excludeID of 0 excludes nothing.
func (s *Searcher) SearchExcluding(ctx context.Context, query string, topK int, excludeID core.ID) ([]*core.SearchResult, error) {
	return s.searchWithMonitor(ctx, query, topK, excludeID, nil)
}

// SearchWithMonitor is Search with observation hooks for each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	return s.searchWithMonitor(ctx, query, topK, 0, monitor)
}

// FindRelated returns documents similar to the given one, seeded by the
// leading text of that document and excluding the document itself.
func (s *Searcher) FindRelated(ctx context.Context, id core.ID, topK int) ([]*core.SearchResult, error) {
	record, err := s.repository.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != core.StatusCompleted {
		return []*core.SearchResult{}, nil
	}

	seed := []rune(record.ExtractedText)
	if len(seed) > relatedQueryChars {
		seed = seed[:relatedQueryChars]
	}
	return s.SearchExcluding(ctx, string(seed), topK, id)
}

func (s *Searcher) searchWithMonitor(ctx context.Context, query string, topK int, excludeID core.ID, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// A blank query is an empty result, not an error
	if strings.TrimSpace(query) == "" {
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	// Candidate set: completed documents carrying an embedding. An empty
	// set is an empty result, not an error.
	candidates, err := s.repository.CompletedDocuments(ctx)
	if err != nil {
		s.logger.Error("error retrieving search candidates", "err", err)
		return nil, err
	}
	monitor.AfterCandidateRetrieval(candidates)

	if len(candidates) == 0 {
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	queryVector, err := s.embedder.Embed(query)
	if err != nil {
		s.logger.Error("error embedding query", "err", err)
		return nil, err
	}

	// Exhaustive vector ranking
	index := newFlatIndex(candidates)
	rankedAll := index.search(queryVector)

	rankedIDs := make([]core.ID, len(rankedAll))
	distances := make(map[core.ID]float64, len(rankedAll))
	maxDistance := 0.0
	for i, entry := range rankedAll {
		rankedIDs[i] = entry.id
		distances[entry.id] = entry.distance
		if entry.distance > maxDistance {
			maxDistance = entry.distance
		}
	}
	monitor.AfterVectorRanking(rankedIDs)

	// All-zero distances would divide by zero; score them all as 1
	divisor := maxDistance
	if divisor == 0 {
		divisor = 1.0
	}

	terms := queryTerms(query)

	results := make([]*core.SearchResult, 0, len(candidates))
	for _, record := range candidates {
		if excludeID != 0 && record.Id == excludeID {
			continue
		}

		vectorScore := 1 - distances[record.Id]/divisor
		kwScore := keywordScore(terms, record.ExtractedText)
		score := vectorWeight*vectorScore + keywordWeight*kwScore

		results = append(results, &core.SearchResult{
			Record: record,
			Score:  score,
		})
	}

	// Descending score; equal scores rank the smaller ID first so results
	// are reproducible across calls
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.Id < results[j].Record.Id
	})

	if len(results) > topK {
		results = results[:topK]
	}

	s.logger.Debug("search completed",
		"candidates", len(candidates),
		"results", len(results))
	monitor.Finish(results)
	return results, nil
}
