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


// Package local provides extraction collaborators that run entirely in
// process: a plain-text file reader, a frequency-based keyword extractor,
// and a pattern-based entity extractor. They are the default engines when
// no external service is configured.
package local

import (
	"log/slog"

	"github.com/inklab/docstream/extract"
)

// Provider implements extract.Provider with in-process engines.
type Provider struct {
	text     *TextExtractor
	keywords *KeywordExtractor
	entities *EntityExtractor
	logger   *slog.Logger
}

var _ extract.Provider = (*Provider)(nil)

// NewProvider creates a provider backed by the local extraction engines.
func NewProvider() *Provider {
	return &Provider{
		text:     NewTextExtractor(),
		keywords: NewKeywordExtractor(10),
		entities: NewEntityExtractor(),
		logger:   slog.Default().With("component", "local-provider"),
	}
}

// TextExtractor returns the plain-text file extraction service.
func (p *Provider) TextExtractor() extract.TextExtractor {
	return p.text
}

// KeywordExtractor returns the frequency-based keyword extraction service.
func (p *Provider) KeywordExtractor() extract.KeywordExtractor {
	return p.keywords
}

// EntityExtractor returns the pattern-based entity extraction service.
func (p *Provider) EntityExtractor() extract.EntityExtractor {
	return p.entities
}

// Close releases resources held by the provider. The local engines hold
// none, so this is a no-op.
func (p *Provider) Close() error {
	p.logger.Debug("closing local provider")
	return nil
}
