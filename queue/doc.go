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


// Package queue provides the ingestion queue and pipeline worker.
//
// The Manager holds a FIFO queue of document IDs and guarantees at most one
// active worker: the first Enqueue on an idle queue starts a drain task, and
// later Enqueue calls only lengthen the queue that task will drain. The
// Worker advances a single document through the extraction and analysis
// stages, committing each stage to storage so observers see progress.
//
// Extraction failure is fatal for a document because every later stage
// operates on the extracted text. The analysis stages degrade gracefully
// instead: keyword errors substitute a sentinel keyword, entity errors leave
// entities empty, and embedding errors fall back to the zero vector. Partial
// enrichment is still useful and is never discarded.
package queue
