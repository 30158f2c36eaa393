package embedding

import (
	"math"
	"testing"

	"github.com/inklab/docstream/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorNorm(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func TestHashingEmbedder_Deterministic(t *testing.T) {
	embedder := NewHashingEmbedder()

	first, err := embedder.Embed("Semantic indexing improves retrieval.")
	require.NoError(t, err)
	second, err := embedder.Embed("Semantic indexing improves retrieval.")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same text must yield identical vectors")
}

func TestHashingEmbedder_Dimension(t *testing.T) {
	embedder := NewHashingEmbedder()

	vec, err := embedder.Embed("one two three")
	require.NoError(t, err)

	assert.Len(t, vec, core.EmbeddingDim)
	assert.Equal(t, core.EmbeddingDim, embedder.Dimension())
}

func TestHashingEmbedder_EmptyText(t *testing.T) {
	embedder := NewHashingEmbedder()

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := embedder.Embed(tt.text)
			require.NoError(t, err)
			require.Len(t, vec, core.EmbeddingDim)
			assert.Zero(t, vectorNorm(vec), "empty input must produce the zero vector")
		})
	}
}

func TestHashingEmbedder_UnitNorm(t *testing.T) {
	embedder := NewHashingEmbedder()

	texts := []string{
		"word",
		"semantic indexing improves retrieval",
		"the the the the repeated words still normalize",
	}

	for _, text := range texts {
		vec, err := embedder.Embed(text)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, vectorNorm(vec), 1e-5, "text %q", text)
	}
}

func TestHashingEmbedder_CaseInsensitive(t *testing.T) {
	embedder := NewHashingEmbedder()

	lower, err := embedder.Embed("neural networks")
	require.NoError(t, err)
	upper, err := embedder.Embed("NEURAL NETWORKS")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestHashingEmbedder_OrderIndependent(t *testing.T) {
	embedder := NewHashingEmbedder()

	ab, err := embedder.Embed("alpha beta")
	require.NoError(t, err)
	ba, err := embedder.Embed("beta alpha")
	require.NoError(t, err)

	assert.Equal(t, ab, ba, "bag-of-words embedding must ignore token order")
}

func TestHashingEmbedder_DifferentTextsDiffer(t *testing.T) {
	embedder := NewHashingEmbedder()

	a, err := embedder.Embed("semantic indexing")
	require.NoError(t, err)
	b, err := embedder.Embed("optical character recognition")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
