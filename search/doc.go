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


// Package search provides hybrid vector and keyword search over documents.
//
// The Searcher ranks every completed document by squared Euclidean distance
// between its embedding and the query embedding, normalizes distances into a
// vector score, blends in a keyword score from query-term substring matches,
// and returns the top results. The ranking is rebuilt from scratch on every
// call; at the collection sizes this system targets (tens to low thousands
// of documents) an exhaustive pass is simpler and fast enough.
package search
