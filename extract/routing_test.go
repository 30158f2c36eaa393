package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedExtractor struct {
	text string
}

func (f *fixedExtractor) ExtractText(ctx context.Context, sourcePath string) (string, error) {
	return f.text, nil
}

func TestRoutingTextExtractorDispatch(t *testing.T) {
	pdf := &fixedExtractor{text: "from pdf"}
	plain := &fixedExtractor{text: "from plain"}
	router := NewRoutingTextExtractor(map[string]TextExtractor{".pdf": pdf}, plain)
	ctx := context.Background()

	got, err := router.ExtractText(ctx, "/tmp/uploads/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "from pdf", got)

	got, err = router.ExtractText(ctx, "/tmp/uploads/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "from plain", got)

	got, err = router.ExtractText(ctx, "/tmp/uploads/no_extension")
	require.NoError(t, err)
	assert.Equal(t, "from plain", got)
}

func TestRoutingTextExtractorCaseInsensitiveExtension(t *testing.T) {
	pdf := &fixedExtractor{text: "from pdf"}
	plain := &fixedExtractor{text: "from plain"}
	router := NewRoutingTextExtractor(map[string]TextExtractor{".PDF": pdf}, plain)

	got, err := router.ExtractText(context.Background(), "/tmp/uploads/Report.Pdf")
	require.NoError(t, err)
	assert.Equal(t, "from pdf", got)
}

func TestBundle(t *testing.T) {
	text := &fixedExtractor{text: "body"}
	bundle := NewBundle(text, nil, nil)

	assert.Same(t, text, bundle.TextExtractor())
	assert.Nil(t, bundle.KeywordExtractor())
	assert.Nil(t, bundle.EntityExtractor())
	assert.NoError(t, bundle.Close())
}
