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


// Package intake accepts uploaded files into the library.
//
// An upload stores the raw bytes under a timestamped name, creates the
// document record in its initial state, and enqueues it for processing.
// The stored name, not the user-supplied one, identifies the document:
// uploading the same file twice yields two independent documents.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/queue"
	"github.com/inklab/docstream/storage"
)

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrManagerRequired is returned when a queue manager is not provided.
	ErrManagerRequired = errors.New("queue manager required")

	// ErrEmptyFileName is returned when an upload has no file name.
	ErrEmptyFileName = errors.New("file name required")
)

// Intake stores uploaded files and registers them for processing.
type Intake struct {
	uploadDir  string
	repository storage.DocumentRepository
	manager    *queue.Manager
	logger     *slog.Logger
}

// NewIntake creates an intake writing raw files into uploadDir.
// The directory is created on first use.
func NewIntake(uploadDir string, repository storage.DocumentRepository, manager *queue.Manager) (*Intake, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if manager == nil {
		return nil, ErrManagerRequired
	}

	return &Intake{
		uploadDir:  uploadDir,
		repository: repository,
		manager:    manager,
		logger:     slog.Default().With("component", "intake"),
	}, nil
}

// Upload stores the file bytes, creates the document record in its initial
// state and enqueues it. The returned record carries the assigned ID.
func (i *Intake) Upload(ctx context.Context, fileName string, data []byte) (*core.DocumentRecord, error) {
	fileName = filepath.Base(fileName)
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, ErrEmptyFileName
	}

	if err := os.MkdirAll(i.uploadDir, 0755); err != nil {
		return nil, err
	}

	// Timestamp prefix keeps repeated uploads of one file distinct
	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileName)
	storedPath := filepath.Join(i.uploadDir, storedName)
	if err := os.WriteFile(storedPath, data, 0644); err != nil {
		return nil, err
	}

	record := &core.DocumentRecord{
		Id:         core.IDFromContent(storedName),
		Title:      fileName,
		Author:     core.PlaceholderAuthor,
		SourcePath: storedPath,
		Status:     core.StatusUploaded,
		Stage:      core.StageUploaded,
	}

	if _, err := i.repository.AddDocuments(ctx, record); err != nil {
		return nil, err
	}
	if err := i.manager.Enqueue(record.Id); err != nil {
		return nil, err
	}

	i.logger.Info("uploaded document", "id", record.Id, "title", fileName, "bytes", len(data))
	return record, nil
}

// UploadFile reads a file from disk and uploads it under its base name.
func (i *Intake) UploadFile(ctx context.Context, path string) (*core.DocumentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return i.Upload(ctx, filepath.Base(path), data)
}
