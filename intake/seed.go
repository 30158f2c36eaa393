package intake

import (
	"context"
	"time"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/storage"
)

// SeedLibrary loads a small demonstration collection so a fresh library is
// not empty: one fully processed document, one mid-pipeline, one untouched.
// Seeding an already-populated library returns ErrDuplicateKey.
func SeedLibrary(ctx context.Context, repository storage.DocumentRepository, embedder embedding.Embedder) error {
	indexed := &core.DocumentRecord{
		Title:         "Semantic Indexing Foundations",
		Author:        "Dr. A. Smith",
		SourcePath:    "doc1.pdf",
		Status:        core.StatusCompleted,
		Stage:         core.StageTerminal,
		ExtractedText: "Semantic indexing improves information retrieval by focusing on the meaning of words rather than just their literal string matching. This monograph explores various techniques...",
		Keywords:      []string{"semantic", "indexing", "nlp", "retrieval"},
		Entities: []core.Entity{
			{Text: "Dr. A. Smith", Label: "PERSON"},
			{Text: "MIT", Label: "ORG"},
		},
		UploadedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	vector, err := embedder.Embed(indexed.ExtractedText)
	if err != nil {
		return err
	}
	indexed.Embedding = vector

	processing := &core.DocumentRecord{
		Title:         "Advanced OCR Techniques",
		Author:        "J. Doe",
		SourcePath:    "doc2.pdf",
		Status:        core.StatusProcessing,
		Stage:         core.StageExtracting,
		ExtractedText: "Optical Character Recognition (OCR) is the electronic or mechanical conversion of images of typed, handwritten or printed text into machine-encoded text...",
		UploadedAt:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	uploaded := &core.DocumentRecord{
		Title:      "Neural Networks in 2024",
		Author:     "K. Lee",
		SourcePath: "doc3.pdf",
		Status:     core.StatusUploaded,
		Stage:      core.StageUploaded,
		UploadedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	for _, record := range []*core.DocumentRecord{indexed, processing, uploaded} {
		record.Id = core.IDFromContent(record.SourcePath)
	}

	_, err = repository.AddDocuments(ctx, indexed, processing, uploaded)
	return err
}
