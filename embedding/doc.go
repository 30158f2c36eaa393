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


// Package embedding generates fixed-dimension vectors for document text.
//
// The same embedder is used at indexing time and at query time, so vectors
// are always comparable. The default implementation is a deterministic
// bag-of-words hashing embedder: no model, no network, bit-reproducible
// output for identical input.
package embedding
