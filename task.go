// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

import "sync/atomic"

// Unit is the informationless type: the answer type of run-to-completion
// computations whose only point is their side effects.
type Unit = struct{}

// Task is an effectful computation that delivers a value of type A and
// answers Unit. This is the variant that can cross executor boundaries:
// once the answer type carries no information, delivery no longer needs to
// happen on the caller's goroutine.
type Task[A any] = Cont[Unit, A]

// Emit lifts a value into a Task with full type inference on A.
// Emit(a) is equivalent to Return[Unit](a).
func Emit[A any](a A) Task[A] {
	return Return[Unit](a)
}

// ReceiveOn wraps m so that the downstream consumer invocation is dispatched
// via the given executor rather than executed on the delivering goroutine.
//
// This operation exists only for Task. Composing further value-producing
// stages after an executor hop is impossible in this encoding: the hop
// answers Unit before the consumer has run, so every downstream answer type
// has already collapsed to Unit. Language-level suspension is the way out of
// that corner; this package keeps the boundary visible instead.
func ReceiveOn[A any](m Task[A], on Executor) Task[A] {
	return func(k func(A) Unit) Unit {
		return m(func(a A) Unit {
			on.Execute(func() {
				k(a)
			})
			return Unit{}
		})
	}
}

// SubscribeOn wraps m so that the initial triggering — the call that starts
// the chain executing — is dispatched via the given executor. The same
// compositionality boundary as [ReceiveOn] applies.
func SubscribeOn[A any](m Task[A], on Executor) Task[A] {
	return func(k func(A) Unit) Unit {
		on.Execute(func() {
			m(k)
		})
		return Unit{}
	}
}

// Subscription is the cancellation handle returned by [Start].
// Cancellation is a cooperative flag checked at the delivery boundary.
type Subscription struct {
	cancelled atomic.Bool
}

// Cancel requests that the terminal consumer not be observed.
// It suppresses deliveries that have not yet reached the consumer; work
// already handed to an Executor still runs, and a delivery that has already
// committed is unaffected.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (s *Subscription) Cancelled() bool {
	return s.cancelled.Load()
}

// Start triggers m on the given executor, delivering to k, and returns a
// cancellable handle. The flag is checked once, immediately before invoking
// k; there are no other suspension points in a Task chain.
func Start[A any](m Task[A], on Executor, k func(A)) *Subscription {
	s := new(Subscription)
	on.Execute(func() {
		m(func(a A) Unit {
			if !s.cancelled.Load() {
				k(a)
			}
			return Unit{}
		})
	})
	return s
}
