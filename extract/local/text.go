package local

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/inklab/docstream/extract"
)

// TextExtractor reads stored files as plain UTF-8 text.
type TextExtractor struct{}

var _ extract.TextExtractor = (*TextExtractor)(nil)

// NewTextExtractor creates a plain-text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText reads the file at sourcePath and returns its contents.
// Unreadable files and non-UTF-8 content are fatal extraction errors.
func (e *TextExtractor) ExtractText(ctx context.Context, sourcePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", extract.ErrUnreadableFile, sourcePath, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", extract.ErrNotText, sourcePath)
	}

	return string(data), nil
}
