package queue

import "errors"

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrProviderRequired is returned when an extraction provider is not provided.
	ErrProviderRequired = errors.New("extraction provider required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrWorkerRequired is returned when a worker is not provided.
	ErrWorkerRequired = errors.New("worker required")

	// ErrManagerReleased is returned when enqueueing on a released manager.
	ErrManagerReleased = errors.New("queue manager released")

	// ErrWorkerPanic is returned when a panic escapes a pipeline stage.
	ErrWorkerPanic = errors.New("unhandled worker panic")
)
