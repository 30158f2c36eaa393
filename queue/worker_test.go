package queue

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/extract"
	"github.com/inklab/docstream/extract/mock"
	"github.com/inklab/docstream/storage"
	"github.com/inklab/docstream/storage/badger"
)

type workerFixture struct {
	repo     storage.DocumentRepository
	provider *mock.Provider
	worker   *Worker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()

	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	provider := mock.NewProvider()
	worker, err := NewWorker(repo, provider, embedding.NewHashingEmbedder())
	require.NoError(t, err)

	return &workerFixture{repo: repo, provider: provider, worker: worker}
}

func (f *workerFixture) addDocument(t *testing.T, title string) *core.DocumentRecord {
	t.Helper()
	record := &core.DocumentRecord{
		Id:         core.IDFromContent(title),
		Title:      title,
		Author:     core.PlaceholderAuthor,
		SourcePath: "/tmp/uploads/" + title,
		Status:     core.StatusUploaded,
		Stage:      core.StageUploaded,
	}
	_, err := f.repo.AddDocuments(context.Background(), record)
	require.NoError(t, err)
	return record
}

func TestNewWorkerValidation(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()
	provider := mock.NewProvider()
	embedder := embedding.NewHashingEmbedder()

	_, err = NewWorker(nil, provider, embedder)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewWorker(repo, nil, embedder)
	assert.ErrorIs(t, err, ErrProviderRequired)

	_, err = NewWorker(repo, provider, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestProcessHappyPath(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusCompleted, got.Status)
	assert.Equal(t, core.StageTerminal, got.Stage)
	assert.Equal(t, "Semantic indexing improves retrieval.", got.ExtractedText)
	assert.Equal(t, []string{"semantic", "indexing", "improves", "retrieval"}, got.Keywords)
	require.Len(t, got.Entities, 2)
	assert.Equal(t, "Dr. A. Smith", got.Entities[0].Text)

	// Author backfilled from the first PERSON entity
	assert.Equal(t, "Dr. A. Smith", got.Author)

	// Embedding is unit-length with the fixed dimension
	require.Len(t, got.Embedding, core.EmbeddingDim)
	var norm float64
	for _, v := range got.Embedding {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestProcessFatalExtractionError(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "corrupt.pdf")

	f.provider.Text.ExtractTextFunc = func(ctx context.Context, sourcePath string) (string, error) {
		return "", errors.New("unreadable file")
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusFailed, got.Status)
	assert.Equal(t, core.StageTerminal, got.Stage)
	assert.Contains(t, got.ExtractedText, "Error extracting text:")
	assert.Contains(t, got.ExtractedText, "unreadable file")

	// Later stages never ran
	assert.Empty(t, got.Keywords)
	assert.Empty(t, got.Entities)
	assert.Empty(t, got.Embedding)
	assert.Zero(t, f.provider.Keywords.CallCount())
	assert.Zero(t, f.provider.Entities.CallCount())
}

func TestProcessWhitespaceOnlyText(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "scan.pdf")

	f.provider.Text.ExtractTextFunc = func(ctx context.Context, sourcePath string) (string, error) {
		return "   \n\t  ", nil
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	// No extractable text is degraded, not fatal
	assert.Equal(t, core.StatusCompleted, got.Status)
	assert.Equal(t, noTextPlaceholder, got.ExtractedText)
}

func TestProcessKeywordErrorIsNonFatal(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	f.provider.Keywords.ExtractKeywordsFunc = func(ctx context.Context, text string) ([]string, error) {
		return nil, errors.New("keyword service down")
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusCompleted, got.Status)
	assert.Equal(t, []string{errorKeyword}, got.Keywords)
	assert.NotEmpty(t, got.Entities)
}

func TestProcessEntityErrorIsNonFatal(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	f.provider.Entities.ExtractEntitiesFunc = func(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
		return nil, errors.New("entity service down")
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusCompleted, got.Status)
	assert.Empty(t, got.Entities)
	assert.Equal(t, core.PlaceholderAuthor, got.Author)
	assert.NotEmpty(t, got.Keywords)
}

func TestProcessEntityDeduplicationAndCap(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	f.provider.Entities.ExtractEntitiesFunc = func(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
		var entities []core.Entity
		for i := 0; i < 30; i++ {
			entities = append(entities,
				core.Entity{Text: "Org " + string(rune('A'+i)), Label: extract.LabelOrg},
				core.Entity{Text: "Org " + string(rune('A'+i)), Label: extract.LabelOrg})
		}
		return entities, nil
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Len(t, got.Entities, extract.MaxEntitiesPerDocument)
	seen := make(map[string]bool)
	for _, entity := range got.Entities {
		assert.False(t, seen[entity.Text], "duplicate entity %q", entity.Text)
		seen[entity.Text] = true
	}
}

func TestProcessAuthorBackfillBeyondEntityCap(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	// The only PERSON appears after MaxEntitiesPerDocument distinct orgs,
	// so it is dropped from the stored list but must still name the author.
	f.provider.Entities.ExtractEntitiesFunc = func(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
		var entities []core.Entity
		for i := 0; i < extract.MaxEntitiesPerDocument; i++ {
			entities = append(entities, core.Entity{
				Text:  "Org " + string(rune('A'+i)),
				Label: extract.LabelOrg,
			})
		}
		entities = append(entities, core.Entity{Text: "Morgan Vale", Label: extract.LabelPerson})
		return entities, nil
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)

	assert.Equal(t, "Morgan Vale", got.Author)
	require.Len(t, got.Entities, extract.MaxEntitiesPerDocument)
	for _, entity := range got.Entities {
		assert.NotEqual(t, "Morgan Vale", entity.Text)
	}
}

func TestProcessKeepsExistingAuthor(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")
	record.Author = "Jordan Reyes"
	_, err := f.repo.UpdateDocument(context.Background(), record)
	require.NoError(t, err)

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	got, err := f.repo.GetDocument(context.Background(), record.Id)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", got.Author)
}

func TestProcessMissingDocument(t *testing.T) {
	f := newWorkerFixture(t)

	// A vanished record is skipped so the queue keeps draining
	assert.NoError(t, f.worker.Process(context.Background(), core.ID(424242)))
}

func TestProcessRecoversFromPanic(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	f.provider.Keywords.ExtractKeywordsFunc = func(ctx context.Context, text string) ([]string, error) {
		panic("keyword extractor exploded")
	}

	err := f.worker.Process(context.Background(), record.Id)
	assert.ErrorIs(t, err, ErrWorkerPanic)
}

func TestProcessStageProgression(t *testing.T) {
	f := newWorkerFixture(t)
	record := f.addDocument(t, "notes.txt")

	var stages []int
	f.provider.Text.ExtractTextFunc = func(ctx context.Context, sourcePath string) (string, error) {
		got, err := f.repo.GetDocument(ctx, record.Id)
		require.NoError(t, err)
		stages = append(stages, got.Stage)
		assert.Equal(t, extractingPlaceholder, got.ExtractedText)
		assert.Equal(t, core.StatusProcessing, got.Status)
		return "Some extracted text.", nil
	}
	f.provider.Keywords.ExtractKeywordsFunc = func(ctx context.Context, text string) ([]string, error) {
		got, err := f.repo.GetDocument(ctx, record.Id)
		require.NoError(t, err)
		stages = append(stages, got.Stage)
		return []string{"some"}, nil
	}
	f.provider.Entities.ExtractEntitiesFunc = func(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
		got, err := f.repo.GetDocument(ctx, record.Id)
		require.NoError(t, err)
		stages = append(stages, got.Stage)
		return nil, nil
	}

	require.NoError(t, f.worker.Process(context.Background(), record.Id))

	// Stages are monotonically non-decreasing across commits
	assert.Equal(t, []int{core.StageExtracting, core.StageAnalyzing, core.StageTerminal}, stages)
}

func TestDedupeEntities(t *testing.T) {
	entities := []core.Entity{
		{Text: "MIT", Label: extract.LabelOrg},
		{Text: "MIT", Label: extract.LabelOrg},
		{Text: "Dr. A. Smith", Label: extract.LabelPerson},
	}

	got := dedupeEntities(entities)
	require.Len(t, got, 2)
	assert.Equal(t, "MIT", got[0].Text)
	assert.Equal(t, "Dr. A. Smith", got[1].Text)

	assert.Nil(t, dedupeEntities(nil))
}
