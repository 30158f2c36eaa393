package mock

import (
	"context"
	"strings"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/extract"
)

// TextExtractor is a test double for extract.TextExtractor.
// It allows custom behavior injection via function fields.
type TextExtractor struct {
	// ExtractTextFunc is called by ExtractText if set.
	// If nil, returns a fixed sample text regardless of the path.
	ExtractTextFunc func(ctx context.Context, sourcePath string) (string, error)

	callCount int
}

// ExtractText returns the injected behavior or a fixed sample text.
func (m *TextExtractor) ExtractText(ctx context.Context, sourcePath string) (string, error) {
	m.callCount++

	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, sourcePath)
	}
	return "Semantic indexing improves retrieval.", nil
}

// CallCount returns the number of times ExtractText was called.
func (m *TextExtractor) CallCount() int {
	return m.callCount
}

// KeywordExtractor is a test double for extract.KeywordExtractor.
type KeywordExtractor struct {
	// ExtractKeywordsFunc is called by ExtractKeywords if set.
	// If nil, the first five distinct lower-cased words become keywords.
	ExtractKeywordsFunc func(ctx context.Context, text string) ([]string, error)

	callCount int
}

// ExtractKeywords returns the injected behavior or simple word keywords.
func (m *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	m.callCount++

	if m.ExtractKeywordsFunc != nil {
		return m.ExtractKeywordsFunc(ctx, text)
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords, nil
}

// CallCount returns the number of times ExtractKeywords was called.
func (m *KeywordExtractor) CallCount() int {
	return m.callCount
}

// EntityExtractor is a test double for extract.EntityExtractor.
type EntityExtractor struct {
	// ExtractEntitiesFunc is called by ExtractEntities if set.
	// If nil, returns a fixed PERSON and ORG pair.
	ExtractEntitiesFunc func(ctx context.Context, text string, maxChars int) ([]core.Entity, error)

	callCount int
}

// ExtractEntities returns the injected behavior or a fixed entity pair.
func (m *EntityExtractor) ExtractEntities(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
	m.callCount++

	if m.ExtractEntitiesFunc != nil {
		return m.ExtractEntitiesFunc(ctx, text, maxChars)
	}
	return []core.Entity{
		{Text: "Dr. A. Smith", Label: extract.LabelPerson},
		{Text: "MIT", Label: extract.LabelOrg},
	}, nil
}

// CallCount returns the number of times ExtractEntities was called.
func (m *EntityExtractor) CallCount() int {
	return m.callCount
}
