// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

import "sync/atomic"

// Affine wraps a consumer with one-shot enforcement. The consumer can be
// invoked at most once; subsequent attempts panic (Resume) or return false
// (TryResume).
//
// Delivery in this package is single-shot by contract; Affine is the
// runtime teeth for places where that contract is load-bearing, such as
// the racing sides of [ZipPar].
type Affine[R, A any] struct {
	used   atomic.Uintptr
	resume func(A) R
}

// Once creates an affine consumer from a regular consumer.
func Once[R, A any](k func(A) R) *Affine[R, A] {
	return &Affine[R, A]{resume: k}
}

// Resume invokes the consumer with the given value.
// Panics if the consumer has already been used.
func (a *Affine[R, A]) Resume(v A) R {
	if a.used.Add(1) != 1 {
		panic("kfp: affine consumer resumed twice")
	}
	return a.resume(v)
}

// TryResume attempts to invoke the consumer.
// Returns (result, true) on success, or (zero, false) if already used.
func (a *Affine[R, A]) TryResume(v A) (R, bool) {
	if a.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return a.resume(v), true
}

// Discard marks the consumer as used without invoking it.
func (a *Affine[R, A]) Discard() {
	a.used.Store(1)
}
