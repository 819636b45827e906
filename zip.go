// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

import "sync"

// Pair is the tuple type delivered by the zip operations.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip pairs the results of two continuations whose answer types match their
// value types. Each side is run to completion with the identity consumer,
// left first, then right; the pair is then delivered downstream.
//
// This is sequential composition disguised as zip: no concurrency and no
// ordering guarantee beyond left-before-right is implied. For racing sides,
// use [ZipPar].
func Zip[R, A, B any](ma Cont[A, A], mb Cont[B, B]) Cont[R, Pair[A, B]] {
	return func(k func(Pair[A, B]) R) R {
		return k(Pair[A, B]{Fst: Run(ma), Snd: Run(mb)})
	}
}

// ZipPar pairs the results of two Tasks that may complete on different
// goroutines, typically because the sides were composed with [SubscribeOn]
// or [ReceiveOn]. Both sides are triggered when the result is run; they race.
//
// A mutex guards two optional slots. Each side writes its slot under the
// lock and observes the other; whichever side completes second delivers the
// pair downstream, outside the lock, so arbitrary consumer work never runs
// inside the critical section. The downstream consumer is invoked exactly
// once per run: never twice (only the second completer observes both slots,
// and delivery goes through an affine consumer), and never with a partial
// pair.
//
// Liveness policy: ZipPar never blocks and never times out. If one side
// never completes, the pair is never delivered.
func ZipPar[A, B any](ma Task[A], mb Task[B]) Task[Pair[A, B]] {
	return func(k func(Pair[A, B]) Unit) Unit {
		var (
			mu sync.Mutex
			fa *A
			fb *B
		)
		once := Once(k)
		ma(func(a A) Unit {
			mu.Lock()
			fa = &a
			if fb == nil {
				mu.Unlock()
				return Unit{}
			}
			p := Pair[A, B]{Fst: a, Snd: *fb}
			mu.Unlock()
			return once.Resume(p)
		})
		mb(func(b B) Unit {
			mu.Lock()
			fb = &b
			if fa == nil {
				mu.Unlock()
				return Unit{}
			}
			p := Pair[A, B]{Fst: *fa, Snd: b}
			mu.Unlock()
			return once.Resume(p)
		})
		return Unit{}
	}
}
