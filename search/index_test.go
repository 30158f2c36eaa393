package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklab/docstream/core"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"unit apart", []float32{0, 0}, []float32{1, 0}, 1},
		{"pythagorean", []float32{0, 0}, []float32{3, 4}, 25},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, squaredDistance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFlatIndexRanksAscending(t *testing.T) {
	records := []*core.DocumentRecord{
		{Id: 1, Embedding: []float32{1, 0}},
		{Id: 2, Embedding: []float32{0, 1}},
		{Id: 3, Embedding: []float32{0.9, 0.1}},
	}
	index := newFlatIndex(records)

	ranked := index.search([]float32{1, 0})
	require.Len(t, ranked, 3)
	assert.Equal(t, core.ID(1), ranked[0].id)
	assert.Equal(t, core.ID(3), ranked[1].id)
	assert.Equal(t, core.ID(2), ranked[2].id)
	assert.Equal(t, 0.0, ranked[0].distance)
}

func TestFlatIndexTiesKeepInsertionOrder(t *testing.T) {
	records := []*core.DocumentRecord{
		{Id: 7, Embedding: []float32{0, 1}},
		{Id: 3, Embedding: []float32{0, -1}},
	}
	index := newFlatIndex(records)

	ranked := index.search([]float32{0, 0})
	require.Len(t, ranked, 2)
	assert.Equal(t, core.ID(7), ranked[0].id)
	assert.Equal(t, core.ID(3), ranked[1].id)
}

func TestFlatIndexEmpty(t *testing.T) {
	index := newFlatIndex(nil)
	assert.Empty(t, index.search([]float32{1, 2}))
}
