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
	"slices"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/extract"
)

// EntityExtractor implements extract.EntityExtractor using an
// OpenAI-compatible chat API.
type EntityExtractor struct {
	client llms.Model
	logger *slog.Logger
}

var _ extract.EntityExtractor = (*EntityExtractor)(nil)

// entity is an internal type used for JSON unmarshaling.
// It matches the structure expected from the model.
type entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// entityList is the wrapper structure for the model's JSON response.
type entityList struct {
	Entities []entity `json:"entities"`
}

// newEntityExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEntityExtractor(config *extract.Config) (*EntityExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &EntityExtractor{
		client: client,
		logger: slog.Default().With("component", "llm-entities"),
	}, nil
}

// NewEntityExtractor creates a new entity extractor using the provided
// configuration.
//
// Returns extract.EntityExtractor interface to enforce abstraction.
func NewEntityExtractor(config *extract.Config) (extract.EntityExtractor, error) {
	return newEntityExtractor(config)
}

// ExtractEntities asks the model for the named entities mentioned in text.
// Input longer than maxChars is truncated before the request. Entities with
// unknown labels are dropped, duplicates are removed, and at most
// extract.MaxEntitiesPerDocument entities are returned in document order.
func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string, maxChars int) ([]core.Entity, error) {
	text = extract.TruncateChars(strings.TrimSpace(text), maxChars)
	if text == "" {
		return []core.Entity{}, nil
	}

	var result entityList
	if err := generateJSON(ctx, e.client, e.logger, buildEntityPrompt(), text, &result); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(result.Entities))
	entities := make([]core.Entity, 0, len(result.Entities))
	for _, candidate := range result.Entities {
		label := strings.ToUpper(strings.TrimSpace(candidate.Label))
		entityText := strings.TrimSpace(candidate.Text)
		if entityText == "" || !slices.Contains(extract.EntityLabels, label) {
			continue
		}
		if _, ok := seen[entityText]; ok {
			continue
		}
		seen[entityText] = struct{}{}
		entities = append(entities, core.Entity{Text: entityText, Label: label})
		if len(entities) == extract.MaxEntitiesPerDocument {
			break
		}
	}

	e.logger.Debug("extracted entities",
		"returned", len(result.Entities),
		"kept", len(entities))
	return entities, nil
}
