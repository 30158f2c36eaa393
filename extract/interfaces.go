package extract

import (
	"context"

	"github.com/inklab/docstream/core"
)

// TextExtractor extracts the plain text of a stored document file.
// Implementations must be thread-safe for concurrent use.
type TextExtractor interface {
	// ExtractText reads the file at sourcePath and returns its text content.
	// An error is fatal for the document: the pipeline marks it Failed and
	// records the error text. Whitespace-only output is not an error; the
	// pipeline substitutes a fixed placeholder for it.
	ExtractText(ctx context.Context, sourcePath string) (string, error)
}

// KeywordExtractor extracts an ordered list of keywords from text.
// Implementations must be thread-safe for concurrent use.
type KeywordExtractor interface {
	// ExtractKeywords analyzes text and returns keywords in relevance order.
	// Errors are non-fatal: the pipeline substitutes a sentinel keyword and
	// continues.
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}

// EntityExtractor extracts named entities from text.
// Implementations must be thread-safe for concurrent use.
type EntityExtractor interface {
	// ExtractEntities analyzes at most maxChars leading characters of text
	// and returns entities in extraction order. Labels should come from
	// EntityLabels, but source-defined equivalents are tolerated.
	// Errors are non-fatal: the pipeline leaves entities empty and continues.
	ExtractEntities(ctx context.Context, text string, maxChars int) ([]core.Entity, error)
}

// Provider aggregates the extraction collaborators for convenient
// initialization and lifecycle management.
type Provider interface {
	// TextExtractor returns the text extraction service.
	TextExtractor() TextExtractor

	// KeywordExtractor returns the keyword extraction service.
	KeywordExtractor() KeywordExtractor

	// EntityExtractor returns the entity extraction service.
	EntityExtractor() EntityExtractor

	// Close releases resources held by the provider and its services.
	Close() error
}
