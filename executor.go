// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

import "sync"

// Executor is the package's only external boundary: schedule a zero-argument
// thunk for eventual execution and return immediately.
//
// An Executor must eventually invoke every thunk handed to it exactly once.
// Liveness is assumed, not verified. Implementations are shared by reference
// and treated as stateless schedulers by this package; their internal queue
// or thread management is their own concern.
type Executor interface {
	Execute(thunk func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(thunk func())

// Execute implements Executor.
func (f ExecutorFunc) Execute(thunk func()) { f(thunk) }

// Sync is the immediate executor: thunks run on the caller's goroutine
// before Execute returns. Useful for tests and for collapsing an executor
// hop back into synchronous evaluation.
type Sync struct{}

// Execute implements Executor by invoking the thunk in place.
func (Sync) Execute(thunk func()) { thunk() }

// Spawn is the unbounded executor: every thunk gets its own goroutine.
type Spawn struct{}

// Execute implements Executor by starting a new goroutine.
func (Spawn) Execute(thunk func()) { go thunk() }

// WorkerPool is a fixed-size executor: n goroutines drain a shared queue.
// Thunks submitted to a full queue block in Execute until a worker frees
// a slot; submission after Close panics on the closed channel.
type WorkerPool struct {
	queue chan func()
	done  sync.WaitGroup
}

// NewWorkerPool starts n workers over a queue of the given depth.
func NewWorkerPool(n, depth int) *WorkerPool {
	p := &WorkerPool{queue: make(chan func(), depth)}
	p.done.Add(n)
	for range n {
		go func() {
			defer p.done.Done()
			for thunk := range p.queue {
				thunk()
			}
		}()
	}
	return p
}

// Execute implements Executor by enqueueing the thunk.
func (p *WorkerPool) Execute(thunk func()) {
	p.queue <- thunk
}

// Close stops accepting work and waits for queued thunks to finish.
func (p *WorkerPool) Close() {
	close(p.queue)
	p.done.Wait()
}
