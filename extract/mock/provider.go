package mock

import (
	"github.com/inklab/docstream/extract"
)

// Provider is a test double for extract.Provider bundling the mock
// collaborators. The zero value is ready to use with default behaviors.
type Provider struct {
	Text     TextExtractor
	Keywords KeywordExtractor
	Entities EntityExtractor
}

var _ extract.Provider = (*Provider)(nil)

// NewProvider creates a mock provider with default deterministic behavior.
func NewProvider() *Provider {
	return &Provider{}
}

// TextExtractor returns the mock text extraction service.
func (p *Provider) TextExtractor() extract.TextExtractor {
	return &p.Text
}

// KeywordExtractor returns the mock keyword extraction service.
func (p *Provider) KeywordExtractor() extract.KeywordExtractor {
	return &p.Keywords
}

// EntityExtractor returns the mock entity extraction service.
func (p *Provider) EntityExtractor() extract.EntityExtractor {
	return &p.Entities
}

// Close is a no-op.
func (p *Provider) Close() error {
	return nil
}
