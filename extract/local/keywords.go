package local

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// KeywordExtractor ranks document terms by frequency, with stopwords
// filtered out. It is deliberately simple: no phrase detection, no
// stemming, just the most frequent content words in relevance order.
type KeywordExtractor struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
	maxKeywords  int
}

// NewKeywordExtractor creates a frequency-based keyword extractor returning
// at most maxKeywords keywords per call.
func NewKeywordExtractor(maxKeywords int) *KeywordExtractor {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &KeywordExtractor{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
		maxKeywords:  maxKeywords,
	}
}

// ExtractKeywords returns the most frequent non-stopword terms of text,
// most frequent first. Ties are broken by first occurrence in the text so
// the ordering is deterministic.
func (e *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := e.tokenPattern.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if _, ok := e.stopwords[tok]; ok {
			continue
		}
		if len(tok) < 3 {
			continue
		}
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > e.maxKeywords {
		terms = terms[:e.maxKeywords]
	}
	return terms, nil
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
		"were", "be", "been", "being", "it", "this", "that", "these", "those",
		"from", "up", "down", "over", "under", "again", "further", "than",
		"so", "such", "into", "about", "between", "through", "during",
		"before", "after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "not", "have", "has", "had",
		"its", "their", "they", "them", "which", "when", "while", "where",
		"what", "who", "how", "also", "more", "most", "other", "some", "any",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
