// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
//
// A chain built from [Map] and [Bind] is a singly linked structure of
// closures, each closing over its predecessor; nothing executes until the
// chain is run with a terminal consumer, and nothing is cached afterwards.
// Each run re-executes the chain from the source.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that wrap an
// arbitrary delivery protocol (callbacks, completion handlers).
//
// The delivery contract: f must invoke the supplied consumer exactly once
// with some value of type A and return that consumer's result. kfp assumes
// this; it does not verify it.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Run executes a continuation with [Iden] as the terminal consumer.
// The result type must match the value type (R = A).
//
// Iden is a named generic function, so each instantiation is a static
// function value: no closure allocation per call.
func Run[A any](m Cont[A, A]) A {
	return m(Iden[A])
}

// RunWith executes a continuation with a custom terminal consumer.
// For chains built from Map and Bind, this single call transitively
// executes the entire chain from source to sink exactly once.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
