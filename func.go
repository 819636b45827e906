// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

// Func is a nominal wrapper around a pure total mapping from A to B.
// Naming the bare function type is the whole trick: construction is type
// conversion, invocation is plain application, and composition operations
// are free generic functions over the named type.
//
// Callers guarantee totality (a result for every input) and determinism
// (same input, same output). Neither is runtime-checked; a partial or
// effectful mapping fails exactly as it would when called directly.
type Func[A, B any] func(A) B

// MapFunc composes on the output side: MapFunc(f, g)(a) == g(f(a)).
//
// Functor laws: MapFunc(f, Iden) behaves as f, and
// MapFunc(MapFunc(f, g), h) behaves as MapFunc(f, Comp(g, h)).
func MapFunc[A, B, C any](f Func[A, B], g func(B) C) Func[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// ContraMapFunc composes on the input side: ContraMapFunc(f, g)(c) == f(g(c)).
//
// Contravariant laws: ContraMapFunc(f, Iden) behaves as f, and
// ContraMapFunc(ContraMapFunc(f, g), h) behaves as ContraMapFunc(f, Comp(h, g))
// — successive input transforms apply in reverse order of attachment.
func ContraMapFunc[A, B, C any](f Func[A, B], g func(C) A) Func[C, B] {
	return func(c C) B {
		return f(g(c))
	}
}

// FlatMapFunc is reader-style bind: the input value is used twice, once to
// produce the intermediate result and once to drive the follow-on function.
//
//	FlatMapFunc(f, g)(a) == g(f(a))(a)
//
// This is bind over the shared input A (the reader monad on functions),
// not monadic bind over the output B. There is no deferred delivery here:
// everything runs eagerly at application time.
func FlatMapFunc[A, B, C any](f Func[A, B], g func(B) Func[A, C]) Func[A, C] {
	return func(a A) C {
		return g(f(a))(a)
	}
}

// DimapFunc transforms both sides at once. It is exactly
// MapFunc(ContraMapFunc(f, hoist), lower), provided as one operation for
// symmetry: hoist adapts the new input, lower adapts the old output.
func DimapFunc[A, B, C, D any](f Func[A, B], hoist func(C) A, lower func(B) D) Func[C, D] {
	return func(c C) D {
		return lower(f(hoist(c)))
	}
}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
// Stateless and side-effect-free; useful for building arguments to the
// composition operations on the fly.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden is the identity function, the left and right unit of Comp.
func Iden[A any](a A) A { return a }

// Const returns a function that ignores its argument and returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}
