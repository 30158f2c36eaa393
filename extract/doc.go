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


// Package extract defines the contracts between the document pipeline and
// its extraction collaborators: text extraction from stored files, keyword
// extraction, and named-entity extraction.
//
// The pipeline only depends on these interfaces. Concrete engines live in
// subpackages: extract/local (no external services), extract/pdf (pdfcpu),
// extract/llm (OpenAI-compatible chat models), and extract/mock (test
// doubles).
//
// Failure semantics matter here: a text extraction error is fatal for the
// document being processed, while keyword and entity extraction errors are
// degraded: the pipeline substitutes a safe default and continues.
package extract
