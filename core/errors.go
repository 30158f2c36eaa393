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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a DocumentRecord failed validation.
	ErrInvalidDocument = errors.New("invalid document record")

	// ErrInvalidStatus indicates an invalid Status value.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidStage indicates a Stage outside the 0..3 range.
	ErrInvalidStage = errors.New("invalid pipeline stage")

	// ErrStageMismatch indicates Status and Stage are inconsistent.
	ErrStageMismatch = errors.New("status and stage are inconsistent")

	// ErrInvalidEmbedding indicates an embedding of the wrong dimension.
	ErrInvalidEmbedding = errors.New("embedding must be empty or of the fixed dimension")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptySourcePath indicates the SourcePath field is empty.
	ErrEmptySourcePath = errors.New("source path cannot be empty")

	// ErrCorruptRecord indicates serialized record data that cannot be
	// decoded, e.g. an element count exceeding the remaining data.
	ErrCorruptRecord = errors.New("corrupt serialized record")
)
