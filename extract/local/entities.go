package local

import (
	"context"
	"regexp"
	"strings"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/extract"
)

// EntityExtractor finds entities with regular-expression patterns. It is a
// coarse substitute for a statistical NER model: dates, honorific-prefixed
// person names, and capitalized multiword spans. Spans it cannot classify
// are labeled MISC.
type EntityExtractor struct {
	datePattern   *regexp.Regexp
	personPattern *regexp.Regexp
	spanPattern   *regexp.Regexp
	orgSuffixes   map[string]struct{}
}

var _ extract.EntityExtractor = (*EntityExtractor)(nil)

// NewEntityExtractor creates a pattern-based entity extractor.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{
		// 2024-05-01, 05/01/2024, May 1, 2024, 1 May 2024
		datePattern: regexp.MustCompile(
			`\b(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4}|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})\b`),
		// Dr. A. Smith, Prof. Jane Doe, Mr. K. Lee
		personPattern: regexp.MustCompile(
			`\b(?:Dr|Prof|Mr|Mrs|Ms)\.?\s+(?:[A-Z]\.\s*)*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`),
		// Two or more consecutive capitalized words
		spanPattern: regexp.MustCompile(
			`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)+\b`),
		orgSuffixes: map[string]struct{}{
			"inc": {}, "ltd": {}, "llc": {}, "corp": {}, "corporation": {},
			"university": {}, "institute": {}, "laboratories": {}, "labs": {},
			"systems": {}, "group": {}, "foundation": {},
		},
	}
}

// ExtractEntities scans at most maxChars leading characters of text and
// returns entities in the order their patterns matched: dates first, then
// person names, then remaining capitalized spans.
func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text = extract.TruncateChars(text, maxChars)

	var entities []core.Entity
	seen := make(map[string]struct{})

	add := func(value, label string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		entities = append(entities, core.Entity{Text: value, Label: label})
	}

	for _, match := range e.datePattern.FindAllString(text, -1) {
		add(match, extract.LabelDate)
	}
	for _, match := range e.personPattern.FindAllString(text, -1) {
		add(match, extract.LabelPerson)
	}
	for _, match := range e.spanPattern.FindAllString(text, -1) {
		if e.covered(match, seen) {
			continue
		}
		add(match, e.classifySpan(match))
	}

	return entities, nil
}

// covered reports whether the span is part of an already recorded entity,
// e.g. the "Jane Doe" inside "Prof. Jane Doe".
func (e *EntityExtractor) covered(span string, seen map[string]struct{}) bool {
	for recorded := range seen {
		if strings.Contains(recorded, span) {
			return true
		}
	}
	return false
}

// classifySpan labels a capitalized span: ORG when its last word is a known
// organization suffix, MISC otherwise.
func (e *EntityExtractor) classifySpan(span string) string {
	words := strings.Fields(span)
	last := strings.ToLower(strings.Trim(words[len(words)-1], ".,"))
	if _, ok := e.orgSuffixes[last]; ok {
		return extract.LabelOrg
	}
	return extract.LabelMisc
}
