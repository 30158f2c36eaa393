package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing of the stored source path,
// which is unique per upload.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Status describes where a document is in its lifecycle.
type Status int

const (
	// StatusUploaded means the document has been stored but not yet processed.
	StatusUploaded Status = iota + 1
	// StatusProcessing means the pipeline worker is currently advancing the document.
	StatusProcessing
	// StatusCompleted means every pipeline stage finished; the document is searchable.
	StatusCompleted
	// StatusFailed means text extraction failed; the document carries its error text.
	StatusFailed
)

// String returns the lowercase display name of the status.
func (s Status) String() string {
	switch s {
	case StatusUploaded:
		return "uploaded"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is an end state of the pipeline.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Pipeline stages. Stage mirrors Status for progress display and is
// non-decreasing over a document's lifetime.
const (
	StageUploaded   = 0
	StageExtracting = 1
	StageAnalyzing  = 2
	StageTerminal   = 3
)

// EmbeddingDim is the fixed dimension of document embeddings.
// An embedding is either empty or exactly this long.
const EmbeddingDim = 128

// PlaceholderAuthor is the author value assigned at upload time.
// Entity extraction may replace it with the first PERSON entity found.
const PlaceholderAuthor = "Unknown Author"

// Entity is a named entity extracted from a document's text.
type Entity struct {
	Text  string
	Label string
}

// DocumentRecord is the unit of work for the pipeline and the unit of search.
// All fields are always present; derived fields hold explicit empty values
// until the corresponding pipeline stage has run.
type DocumentRecord struct {
	Id            ID
	Title         string
	Author        string
	SourcePath    string // stored raw file, owned by the upload collaborator
	Status        Status
	Stage         int
	ExtractedText string // holds a human-readable error string when Status is Failed
	Keywords      []string
	Entities      []Entity
	Embedding     []float32 // empty or exactly EmbeddingDim long
	UploadedAt    time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy of the record.
// The pipeline worker mutates copies and commits them whole, so readers
// never observe a partially updated record.
func (d *DocumentRecord) Clone() *DocumentRecord {
	if d == nil {
		return nil
	}
	out := *d
	out.Keywords = append([]string(nil), d.Keywords...)
	out.Entities = append([]Entity(nil), d.Entities...)
	out.Embedding = append([]float32(nil), d.Embedding...)
	return &out
}

// PlaceholderRecord returns the sentinel record used for lookups that find
// nothing, so display logic never has to special-case absence.
func PlaceholderRecord() *DocumentRecord {
	return &DocumentRecord{
		Id:            0,
		Title:         "No Document Selected",
		Author:        "-",
		Status:        StatusUploaded,
		Stage:         StageUploaded,
		ExtractedText: "No content available.",
		Keywords:      []string{},
		Entities:      []Entity{},
		Embedding:     []float32{},
	}
}

// SearchResult pairs a document with its hybrid relevance score for one query.
// The score is transient; it is never written back to the store.
type SearchResult struct {
	Record *DocumentRecord
	Score  float64
}

// LibraryStats summarizes the document collection for display.
type LibraryStats struct {
	Total      int
	Processing int
	Completed  int
	Failed     int
}
