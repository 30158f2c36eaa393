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

package extract

import (
	"context"
	"path/filepath"
	"strings"
)

// RoutingTextExtractor dispatches text extraction by file extension.
type RoutingTextExtractor struct {
	byExt    map[string]TextExtractor
	fallback TextExtractor
}

var _ TextExtractor = (*RoutingTextExtractor)(nil)

// NewRoutingTextExtractor creates an extractor that routes to byExt based on
// the lowercased file extension (including the leading dot), falling back to
// fallback for unknown extensions.
func NewRoutingTextExtractor(byExt map[string]TextExtractor, fallback TextExtractor) *RoutingTextExtractor {
	normalized := make(map[string]TextExtractor, len(byExt))
	for ext, extractor := range byExt {
		normalized[strings.ToLower(ext)] = extractor
	}
	return &RoutingTextExtractor{
		byExt:    normalized,
		fallback: fallback,
	}
}

// ExtractText delegates to the extractor registered for sourcePath's
// extension.
func (r *RoutingTextExtractor) ExtractText(ctx context.Context, sourcePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(sourcePath))
	if extractor, ok := r.byExt[ext]; ok {
		return extractor.ExtractText(ctx, sourcePath)
	}
	return r.fallback.ExtractText(ctx, sourcePath)
}

// Bundle is an extract.Provider assembled from independently constructed
// services. It owns no external resources.
type Bundle struct {
	text     TextExtractor
	keywords KeywordExtractor
	entities EntityExtractor
}

var _ Provider = (*Bundle)(nil)

// NewBundle composes the given services into a Provider.
func NewBundle(text TextExtractor, keywords KeywordExtractor, entities EntityExtractor) *Bundle {
	return &Bundle{
		text:     text,
		keywords: keywords,
		entities: entities,
	}
}

func (b *Bundle) TextExtractor() TextExtractor       { return b.text }
func (b *Bundle) KeywordExtractor() KeywordExtractor { return b.keywords }
func (b *Bundle) EntityExtractor() EntityExtractor   { return b.entities }

func (b *Bundle) Close() error { return nil }
