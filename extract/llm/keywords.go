// Copyright 2026 Inklab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/inklab/docstream/extract"
)

// KeywordExtractor implements extract.KeywordExtractor using an
// OpenAI-compatible chat API.
type KeywordExtractor struct {
	client      llms.Model
	maxKeywords int
	logger      *slog.Logger
}

var _ extract.KeywordExtractor = (*KeywordExtractor)(nil)

// keywordList is the wrapper structure for the model's JSON response.
type keywordList struct {
	Keywords []string `json:"keywords"`
}

// newKeywordExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newKeywordExtractor(config *extract.Config) (*KeywordExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &KeywordExtractor{
		client:      client,
		maxKeywords: config.MaxKeywords,
		logger:      slog.Default().With("component", "llm-keywords"),
	}, nil
}

// NewKeywordExtractor creates a new keyword extractor using the provided
// configuration.
//
// Returns extract.KeywordExtractor interface to enforce abstraction.
func NewKeywordExtractor(config *extract.Config) (extract.KeywordExtractor, error) {
	return newKeywordExtractor(config)
}

// ExtractKeywords asks the model for the most relevant keywords in text.
// Results are lower-cased, deduplicated and capped at the configured maximum.
func (e *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}, nil
	}

	var result keywordList
	if err := generateJSON(ctx, e.client, e.logger, buildKeywordPrompt(e.maxKeywords), text, &result); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(result.Keywords))
	keywords := make([]string, 0, len(result.Keywords))
	for _, keyword := range result.Keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
		if len(keywords) == e.maxKeywords {
			break
		}
	}

	e.logger.Debug("extracted keywords",
		"returned", len(result.Keywords),
		"kept", len(keywords))
	return keywords, nil
}
