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

// Package reindex recomputes stored document embeddings in batches.
//
// Embeddings are derived purely from extracted text, so a change to the
// embedding scheme invalidates every stored vector at once. The Reindexer
// walks all completed documents, re-embeds their text and writes the new
// vectors back, reporting progress as it goes.
package reindex
