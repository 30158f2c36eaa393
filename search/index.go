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


package search

import (
	"sort"

	"github.com/inklab/docstream/core"
)

// flatIndex is an exhaustive nearest-neighbor index over document embeddings.
// It ranks every entry on each query; there is no approximation and no
// persistence.
type flatIndex struct {
	ids     []core.ID
	vectors [][]float32
}

// ranked is one index entry with its distance to a query.
type ranked struct {
	id       core.ID
	distance float64
}

// newFlatIndex builds an index over the given records in slice order.
func newFlatIndex(records []*core.DocumentRecord) *flatIndex {
	idx := &flatIndex{
		ids:     make([]core.ID, 0, len(records)),
		vectors: make([][]float32, 0, len(records)),
	}
	for _, record := range records {
		idx.ids = append(idx.ids, record.Id)
		idx.vectors = append(idx.vectors, record.Embedding)
	}
	return idx
}

// search returns every entry ranked ascending by squared Euclidean distance
// to the query vector. Ties keep insertion order.
func (idx *flatIndex) search(query []float32) []ranked {
	results := make([]ranked, len(idx.ids))
	for i := range idx.ids {
		results[i] = ranked{
			id:       idx.ids[i],
			distance: squaredDistance(query, idx.vectors[i]),
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].distance < results[j].distance
	})
	return results
}

// squaredDistance computes the squared Euclidean distance between vectors,
// over their common length.
func squaredDistance(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	var sum float64
	for i := 0; i < minLen; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
