package reindex

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/storage"
	"github.com/inklab/docstream/storage/badger"
)

func setupRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func addCompleted(t *testing.T, repo storage.DocumentRepository, title, text string) *core.DocumentRecord {
	t.Helper()
	record := &core.DocumentRecord{
		Id:            core.IDFromContent(title),
		Title:         title,
		Author:        core.PlaceholderAuthor,
		SourcePath:    "/tmp/uploads/" + title,
		Status:        core.StatusCompleted,
		Stage:         core.StageTerminal,
		ExtractedText: text,
	}
	_, err := repo.AddDocuments(context.Background(), record)
	require.NoError(t, err)
	return record
}

func TestReindexerRecomputesEmbeddings(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	embedder := embedding.NewHashingEmbedder()

	first := addCompleted(t, repo, "a.txt", "semantic indexing improves retrieval")
	second := addCompleted(t, repo, "b.txt", "keyword matching with substrings")

	// A failed document keeps its (empty) embedding
	failed := &core.DocumentRecord{
		Id:            core.IDFromContent("failed.txt"),
		Title:         "failed.txt",
		Author:        core.PlaceholderAuthor,
		SourcePath:    "/tmp/uploads/failed.txt",
		Status:        core.StatusFailed,
		Stage:         core.StageTerminal,
		ExtractedText: "Error extracting text: unreadable",
	}
	_, err := repo.AddDocuments(ctx, failed)
	require.NoError(t, err)

	var buf bytes.Buffer
	reindexer := NewReindexer(repo, embedder, nil, &buf)
	require.NoError(t, reindexer.Run(ctx))

	for _, id := range []core.ID{first.Id, second.Id} {
		got, err := repo.GetDocument(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.Embedding, core.EmbeddingDim)

		want, err := embedder.Embed(got.ExtractedText)
		require.NoError(t, err)
		assert.Equal(t, want, got.Embedding)
	}

	gotFailed, err := repo.GetDocument(ctx, failed.Id)
	require.NoError(t, err)
	assert.Empty(t, gotFailed.Embedding)

	assert.Contains(t, buf.String(), "Reindex complete")
}

func TestReindexerEmptyCollection(t *testing.T) {
	repo := setupRepo(t)

	var buf bytes.Buffer
	reindexer := NewReindexer(repo, embedding.NewHashingEmbedder(), nil, &buf)
	require.NoError(t, reindexer.Run(context.Background()))
	assert.Contains(t, buf.String(), "No completed documents")
}

func TestReindexerContextCancelled(t *testing.T) {
	repo := setupRepo(t)
	addCompleted(t, repo, "a.txt", "some text")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	reindexer := NewReindexer(repo, embedding.NewHashingEmbedder(), &Config{BatchSize: 1, ReportInterval: 1}, &buf)
	assert.ErrorIs(t, reindexer.Run(ctx), context.Canceled)
}

func TestReindexerBatchesSmallerThanCollection(t *testing.T) {
	repo := setupRepo(t)
	for _, title := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		addCompleted(t, repo, title, "document body for "+title)
	}

	var buf bytes.Buffer
	reindexer := NewReindexer(repo, embedding.NewHashingEmbedder(), &Config{BatchSize: 2, ReportInterval: 2}, &buf)
	require.NoError(t, reindexer.Run(context.Background()))

	completed, err := repo.CompletedDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, completed, 5)
}
