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


package core

import "fmt"

// ValidateDocumentRecord validates a DocumentRecord according to domain rules.
//
// Validation rules:
//   - Title and SourcePath must not be empty
//   - Status must be a known value
//   - Stage must be within 0..3 and consistent with Status
//   - Embedding must be empty or exactly EmbeddingDim long
//
// NOT validated (populated by the pipeline worker):
//   - ExtractedText, Keywords, Entities (empty until their stage runs)
func ValidateDocumentRecord(record *DocumentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidDocument)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}
	if record.SourcePath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySourcePath)
	}

	if err := ValidateStatus(record.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if record.Stage < StageUploaded || record.Stage > StageTerminal {
		return fmt.Errorf("%w: %w: %d", ErrInvalidDocument, ErrInvalidStage, record.Stage)
	}

	if err := validateStageConsistency(record.Status, record.Stage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if len(record.Embedding) != 0 && len(record.Embedding) != EmbeddingDim {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidDocument, ErrInvalidEmbedding, len(record.Embedding))
	}

	return nil
}

// ValidateStatus validates that a Status has a known value.
func ValidateStatus(status Status) error {
	switch status {
	case StatusUploaded, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
}

// validateStageConsistency enforces the status/stage invariant:
// terminal statuses sit at stage 3, Uploaded at stage 0, and Processing
// anywhere in between (the worker commits stage advances one at a time).
func validateStageConsistency(status Status, stage int) error {
	switch status {
	case StatusCompleted, StatusFailed:
		if stage != StageTerminal {
			return fmt.Errorf("%w: %s at stage %d", ErrStageMismatch, status, stage)
		}
	case StatusUploaded:
		if stage != StageUploaded {
			return fmt.Errorf("%w: %s at stage %d", ErrStageMismatch, status, stage)
		}
	case StatusProcessing:
		if stage < StageExtracting || stage > StageTerminal {
			return fmt.Errorf("%w: %s at stage %d", ErrStageMismatch, status, stage)
		}
	}
	return nil
}
