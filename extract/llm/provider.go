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


// Package llm provides keyword and entity extraction backed by an
// OpenAI-compatible chat API. Text extraction is delegated to a file-based
// extractor; chat models only see already-extracted text.
package llm

import (
	"log/slog"

	"github.com/inklab/docstream/extract"
	"github.com/inklab/docstream/extract/local"
)

// Provider implements extract.Provider using OpenAI-compatible services
// for keyword and entity extraction. Text extraction stays local: reading
// stored files is not a language-model task.
type Provider struct {
	config   *extract.Config
	text     extract.TextExtractor
	keywords *KeywordExtractor
	entities *EntityExtractor
	logger   *slog.Logger
}

// NewProvider creates a new extraction provider with OpenAI-compatible
// analysis services. The config is validated and normalized before use.
//
// Returns extract.Provider (not *Provider) to enforce abstraction and
// prevent coupling to implementation details.
func NewProvider(config *extract.Config, text extract.TextExtractor) (extract.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if text == nil {
		text = local.NewTextExtractor()
	}

	keywords, err := newKeywordExtractor(config)
	if err != nil {
		return nil, err
	}

	entities, err := newEntityExtractor(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		text:     text,
		keywords: keywords,
		entities: entities,
		logger:   slog.Default().With("component", "llm-provider"),
	}, nil
}

// TextExtractor returns the file text extraction service.
func (p *Provider) TextExtractor() extract.TextExtractor {
	return p.text
}

// KeywordExtractor returns the keyword extraction service.
func (p *Provider) KeywordExtractor() extract.KeywordExtractor {
	return p.keywords
}

// EntityExtractor returns the entity extraction service.
func (p *Provider) EntityExtractor() extract.EntityExtractor {
	return p.entities
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing llm provider")
	return nil
}
