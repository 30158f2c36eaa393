package search

import "strings"

// queryTerms splits the query on whitespace into distinct lower-cased terms,
// preserving first-appearance order.
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		terms = append(terms, field)
	}
	return terms
}

// keywordScore is the fraction of distinct query terms occurring as a
// substring of the document's lower-cased extracted text. Zero terms score 0.
func keywordScore(terms []string, extractedText string) float64 {
	if len(terms) == 0 {
		return 0
	}
	text := strings.ToLower(extractedText)
	matched := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}
