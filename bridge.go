// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

// Direct style and continuation-passing style are mechanically equivalent;
// these conversions move a pipeline between the two representations.
// They are illustrative rather than load-bearing: nothing else in the
// package depends on them, but they preserve the equivalence as code.

// ToCPS lifts a direct-style step into its continuation-passing form:
// a Kleisli arrow that, given an input, produces a continuation delivering
// the output. ToCPS(f) is ready to feed to [Bind].
func ToCPS[R, A, B any](f Func[A, B]) func(A) Cont[R, B] {
	return func(a A) Cont[R, B] {
		return Return[R](f(a))
	}
}

// FromCPS collapses a continuation-passing step back to direct style by
// running it with the identity consumer. Inverse of ToCPS when R = B:
// FromCPS(ToCPS[B](f)) behaves as f.
func FromCPS[A, B any](f func(A) Cont[B, B]) Func[A, B] {
	return func(a A) B {
		return Run(f(a))
	}
}

// LiftCont expresses a direct-style step as a transformer of whole chains:
// LiftCont(f)(m) is Map(m, f). Composing lifted steps left to right is the
// CPS rendition of composing the direct pipeline with [Comp].
func LiftCont[R, A, B any](f Func[A, B]) func(Cont[R, A]) Cont[R, B] {
	return func(m Cont[R, A]) Cont[R, B] {
		return Map(m, f)
	}
}
