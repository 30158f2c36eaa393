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


package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/inklab/docstream/core"
)

// Processor advances one document end-to-end. Implemented by Worker.
type Processor interface {
	Process(ctx context.Context, id core.ID) error
}

// Manager owns the FIFO ingestion queue and the worker-running flag.
// Enqueue never blocks the caller; draining happens on a pool of size one,
// so at most one document is ever mid-pipeline.
type Manager struct {
	worker Processor
	pool   *ants.Pool
	logger *slog.Logger

	mu       sync.Mutex
	pending  []core.ID
	running  bool
	released bool
	idle     chan struct{} // closed whenever the queue is drained
}

// NewManager creates a queue manager draining into the given processor.
func NewManager(worker Processor) (*Manager, error) {
	if worker == nil {
		return nil, ErrWorkerRequired
	}

	// Pool size 1 enforces single-flight processing
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	idle := make(chan struct{})
	close(idle)

	return &Manager{
		worker: worker,
		pool:   pool,
		logger: slog.Default().With("component", "queue-manager"),
		idle:   idle,
	}, nil
}

// Enqueue appends the document ID to the queue tail and starts the drain
// task if the worker is idle. Callers must not enqueue an ID already
// present; the manager does not deduplicate.
func (m *Manager) Enqueue(id core.ID) error {
	m.mu.Lock()
	if m.released {
		m.mu.Unlock()
		return ErrManagerReleased
	}
	m.pending = append(m.pending, id)
	start := !m.running
	if start {
		m.running = true
		m.idle = make(chan struct{})
	}
	m.mu.Unlock()

	if start {
		if err := m.pool.Submit(m.drain); err != nil {
			m.mu.Lock()
			m.running = false
			close(m.idle)
			m.mu.Unlock()
			return err
		}
	}

	m.logger.Debug("enqueued document", "id", id)
	return nil
}

// Pending returns the current queue length, including the document being
// processed; its entry stays at the head until it reaches a terminal outcome.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Running reports whether the drain task is active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// WaitIdle blocks until the queue is empty and the worker has stopped, or
// the context is done.
func (m *Manager) WaitIdle(ctx context.Context) error {
	for {
		m.mu.Lock()
		ch := m.idle
		m.mu.Unlock()

		select {
		case <-ch:
			m.mu.Lock()
			done := !m.running && len(m.pending) == 0
			m.mu.Unlock()
			if done {
				return nil
			}
			// A new drain started between the close and our check; wait again.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Release waits for in-flight work to finish and shuts the pool down.
// The manager must not be used after Release.
func (m *Manager) Release() {
	m.mu.Lock()
	if m.released {
		m.mu.Unlock()
		return
	}
	m.released = true
	m.mu.Unlock()

	m.WaitIdle(context.Background())
	m.pool.Release()
}

// drain processes queue heads until the queue is observed empty, then
// clears the running flag. The flag flips only under the lock after the
// empty observation, so an Enqueue racing with shutdown either sees
// running=true and just appends, or sees running=false and starts a fresh
// drain. No enqueue is ever lost.
func (m *Manager) drain() {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.running = false
			close(m.idle)
			m.mu.Unlock()
			return
		}
		id := m.pending[0]
		m.mu.Unlock()

		if err := m.worker.Process(context.Background(), id); err != nil {
			m.logger.Error("error processing document", "id", id, "err", err)
		}

		m.mu.Lock()
		if len(m.pending) > 0 && m.pending[0] == id {
			m.pending = m.pending[1:]
		}
		m.mu.Unlock()
	}
}
