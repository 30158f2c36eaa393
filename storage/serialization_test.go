package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklab/docstream/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("1756400000000000000_report.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalDocumentRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.DocumentRecord
	}{
		{
			name: "freshly uploaded record",
			record: &core.DocumentRecord{
				Id:         core.ID(1),
				Title:      "report.pdf",
				Author:     core.PlaceholderAuthor,
				SourcePath: "/tmp/uploads/1756400000000000000_report.pdf",
				Status:     core.StatusUploaded,
				Stage:      core.StageUploaded,
				UploadedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "completed record with analysis",
			record: &core.DocumentRecord{
				Id:            core.ID(2),
				Title:         "Semantic Indexing Foundations",
				Author:        "Dr. A. Smith",
				SourcePath:    "/tmp/uploads/foundations.txt",
				Status:        core.StatusCompleted,
				Stage:         core.StageTerminal,
				ExtractedText: "Semantic indexing improves retrieval.",
				Keywords:      []string{"semantic indexing", "retrieval"},
				Entities: []core.Entity{
					{Text: "Dr. A. Smith", Label: "PERSON"},
					{Text: "MIT", Label: "ORG"},
				},
				Embedding:  []float32{0.1, 0.2, 0.3, 0.4},
				UploadedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "failed record",
			record: &core.DocumentRecord{
				Id:            core.ID(3),
				Title:         "broken.bin",
				Author:        core.PlaceholderAuthor,
				SourcePath:    "/tmp/uploads/broken.bin",
				Status:        core.StatusFailed,
				Stage:         core.StageTerminal,
				ExtractedText: "Error: unreadable file",
				UploadedAt:    now,
				UpdatedAt:     now,
			},
		},
		{
			name: "unicode content",
			record: &core.DocumentRecord{
				Id:            core.ID(4),
				Title:         "世界.txt",
				Author:        "Émile",
				SourcePath:    "/tmp/uploads/unicode.txt",
				Status:        core.StatusCompleted,
				Stage:         core.StageTerminal,
				ExtractedText: "Hello 世界 🌍",
				Embedding:     make([]float32, core.EmbeddingDim),
				UploadedAt:    now,
				UpdatedAt:     now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocumentRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocumentRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.record.Id, decoded.Id)
			assert.Equal(t, tt.record.Title, decoded.Title)
			assert.Equal(t, tt.record.Author, decoded.Author)
			assert.Equal(t, tt.record.SourcePath, decoded.SourcePath)
			assert.Equal(t, tt.record.Status, decoded.Status)
			assert.Equal(t, tt.record.Stage, decoded.Stage)
			assert.Equal(t, tt.record.ExtractedText, decoded.ExtractedText)
			assert.True(t, tt.record.UploadedAt.Equal(decoded.UploadedAt))
			assert.True(t, tt.record.UpdatedAt.Equal(decoded.UpdatedAt))
			// Handle nil vs empty slice
			if len(tt.record.Keywords) == 0 {
				assert.Empty(t, decoded.Keywords)
			} else {
				assert.Equal(t, tt.record.Keywords, decoded.Keywords)
			}
			if len(tt.record.Entities) == 0 {
				assert.Empty(t, decoded.Entities)
			} else {
				assert.Equal(t, tt.record.Entities, decoded.Entities)
			}
			if len(tt.record.Embedding) == 0 {
				assert.Empty(t, decoded.Embedding)
			} else {
				assert.Equal(t, tt.record.Embedding, decoded.Embedding)
			}
		})
	}
}

func TestUnmarshalDocumentRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDocumentRecord(tt.data)
			assert.Error(t, err)
		})
	}
}
