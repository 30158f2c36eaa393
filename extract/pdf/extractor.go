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


// Package pdf extracts plain text from PDF files.
//
// Page content streams are decoded with pdfcpu and scanned for text-showing
// operators. PDFs without a text layer (image scans without OCR) yield an
// empty string rather than an error.
package pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/inklab/docstream/extract"
)

// TextExtractor implements extract.TextExtractor for PDF files.
type TextExtractor struct {
	conf   *model.Configuration
	logger *slog.Logger
}

var _ extract.TextExtractor = (*TextExtractor)(nil)

// NewTextExtractor creates a PDF text extractor with relaxed validation,
// tolerating the minor structural damage common in real-world PDFs.
func NewTextExtractor() *TextExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &TextExtractor{
		conf:   conf,
		logger: slog.Default().With("component", "pdf-extractor"),
	}
}

// ExtractText reads the PDF at sourcePath and returns the concatenated text
// of all pages. Unreadable files map to extract.ErrUnreadableFile.
func (e *TextExtractor) ExtractText(ctx context.Context, sourcePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("%w: %s: %v", extract.ErrUnreadableFile, sourcePath, err)
	}

	pdfCtx, err := api.ReadContextFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", extract.ErrUnreadableFile, sourcePath, err)
	}

	var builder strings.Builder
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		reader, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "path", sourcePath, "page", pageNr, "err", err)
			continue
		}
		if reader == nil {
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "path", sourcePath, "page", pageNr, "err", err)
			continue
		}

		pageText := scanContentText(content)
		if pageText == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(pageText)
	}

	text := strings.TrimSpace(builder.String())
	e.logger.Debug("extracted pdf text",
		"path", sourcePath,
		"pages", pdfCtx.PageCount,
		"chars", len(text))
	return text, nil
}
