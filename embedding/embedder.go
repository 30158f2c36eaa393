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


package embedding

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/inklab/docstream/core"
)

// Embedder generates a vector embedding for a text.
// Implementations must be safe for concurrent use.
type Embedder interface {
	// Embed generates the embedding for the given text.
	// The returned vector has length Dimension, or is the zero vector
	// for empty input.
	Embed(text string) ([]float32, error)

	// Dimension returns the fixed length of generated vectors.
	Dimension() int
}

// HashingEmbedder is a deterministic bag-of-words hashing embedder.
//
// Tokens are the whitespace-separated words of the lower-cased input. Each
// token is hashed into one of Dimension buckets and counted; hash collisions
// are accepted and unresolved. The resulting term-frequency vector is
// L2-normalized, so any non-degenerate embedding has unit norm.
type HashingEmbedder struct {
	dim int
}

var _ Embedder = (*HashingEmbedder)(nil)

// NewHashingEmbedder creates a hashing embedder with the domain's fixed
// dimension (core.EmbeddingDim).
func NewHashingEmbedder() *HashingEmbedder {
	return &HashingEmbedder{dim: core.EmbeddingDim}
}

// Embed generates the hashed term-frequency embedding for text.
// It is a pure function: the same text always yields the identical vector.
func (e *HashingEmbedder) Embed(text string) ([]float32, error) {
	vec := make([]float32, e.dim)

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return vec, nil
	}

	for _, word := range words {
		vec[e.bucket(word)]++
	}

	var sumSquares float64
	for _, v := range vec {
		sumSquares += float64(v) * float64(v)
	}
	norm := math.Sqrt(sumSquares)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}

	return vec, nil
}

// Dimension returns the fixed embedding dimension.
func (e *HashingEmbedder) Dimension() int {
	return e.dim
}

// bucket maps a token to a vector index via a stable BLAKE2b hash.
func (e *HashingEmbedder) bucket(token string) int {
	h, _ := blake2b.New(8, nil)
	h.Write([]byte(token))
	sum := h.Sum(nil)
	return int(binary.LittleEndian.Uint64(sum) % uint64(e.dim))
}
