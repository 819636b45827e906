// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/kfp"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randAffine returns a random order-sensitive function x -> a*x + b.
func randAffine(rng *rand.Rand) func(int) int {
	a := rng.IntN(7) - 3
	b := rng.IntN(21) - 10
	return func(x int) int { return a*x + b }
}

// --- Group 1: Func Laws ---

// TestPropertyMapFuncIdentity: MapFunc(f, Iden) ≡ f
func TestPropertyMapFuncIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		x := randInt(rng)
		left := kfp.MapFunc(f, kfp.Iden[int])(x)
		right := f(x)
		if left != right {
			t.Fatalf("map identity: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyMapFuncAssociativity: MapFunc(MapFunc(f, g), h) ≡ MapFunc(f, Comp(g, h))
func TestPropertyMapFuncAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		g := randAffine(rng)
		h := randAffine(rng)
		x := randInt(rng)
		left := kfp.MapFunc(kfp.MapFunc(f, g), h)(x)
		right := kfp.MapFunc(f, kfp.Comp(g, h))(x)
		if left != right {
			t.Fatalf("map associativity: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyContraMapFuncIdentity: ContraMapFunc(f, Iden) ≡ f
func TestPropertyContraMapFuncIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		x := randInt(rng)
		left := kfp.ContraMapFunc(f, kfp.Iden[int])(x)
		right := f(x)
		if left != right {
			t.Fatalf("contra identity: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyContraMapFuncReversal: ContraMapFunc(ContraMapFunc(f, g), h)
// applies h before g on the input path.
func TestPropertyContraMapFuncReversal(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		g := randAffine(rng)
		h := randAffine(rng)
		x := randInt(rng)
		left := kfp.ContraMapFunc(kfp.ContraMapFunc(f, g), h)(x)
		right := f(g(h(x)))
		if left != right {
			t.Fatalf("contra reversal: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyDimapDecomposition: DimapFunc(f, hoist, lower) ≡
// MapFunc(ContraMapFunc(f, hoist), lower)
func TestPropertyDimapDecomposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		hoist := randAffine(rng)
		lower := randAffine(rng)
		x := randInt(rng)
		left := kfp.DimapFunc(f, hoist, lower)(x)
		right := kfp.MapFunc(kfp.ContraMapFunc(f, hoist), lower)(x)
		if left != right {
			t.Fatalf("dimap decomposition: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyFlatMapFuncReader: FlatMapFunc(f, g)(a) ≡ g(f(a))(a)
func TestPropertyFlatMapFuncReader(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kfp.Func[int, int](randAffine(rng))
		inner := randAffine(rng)
		g := func(b int) kfp.Func[int, int] {
			return func(a int) int { return b + inner(a) }
		}
		a := randInt(rng)
		left := kfp.FlatMapFunc(f, g)(a)
		right := g(f(a))(a)
		if left != right {
			t.Fatalf("reader bind: %d != %d (a=%d)", left, right, a)
		}
	}
}

// --- Group 2: Cont Monad Laws ---

// TestPropertyContLeftIdentity: Bind(Return(a), f) ≡ f(a)
func TestPropertyContLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		step := randAffine(rng)
		f := func(x int) kfp.Cont[int, int] { return kfp.Return[int](step(x)) }
		left := kfp.Run(kfp.Bind(kfp.Return[int](a), f))
		right := kfp.Run(f(a))
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContRightIdentity: Bind(m, Return) ≡ m
func TestPropertyContRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := kfp.Return[int](a)
		left := kfp.Run(kfp.Bind(m, func(x int) kfp.Cont[int, int] {
			return kfp.Return[int](x)
		}))
		right := kfp.Run(m)
		if left != right {
			t.Fatalf("right identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func TestPropertyContAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		fs := randAffine(rng)
		gs := randAffine(rng)
		m := kfp.Return[int](a)
		f := func(x int) kfp.Cont[int, int] { return kfp.Return[int](fs(x)) }
		g := func(x int) kfp.Cont[int, int] { return kfp.Return[int](gs(x)) }
		left := kfp.Run(kfp.Bind(kfp.Bind(m, f), g))
		right := kfp.Run(kfp.Bind(m, func(x int) kfp.Cont[int, int] {
			return kfp.Bind(f(x), g)
		}))
		if left != right {
			t.Fatalf("associativity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContMapFunctor: Map(Map(m, f), g) ≡ Map(m, Comp(f, g))
func TestPropertyContMapFunctor(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := randAffine(rng)
		g := randAffine(rng)
		m := kfp.Return[int](a)
		left := kfp.Run(kfp.Map(kfp.Map(m, f), g))
		right := kfp.Run(kfp.Map(m, kfp.Comp(f, g)))
		if left != right {
			t.Fatalf("functor composition: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyZipPairing: Zip(Return(a), Return(b)) delivers (a, b)
func TestPropertyZipPairing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		b := randInt(rng)
		p := kfp.Run(kfp.Zip[kfp.Pair[int, int]](kfp.Return[int](a), kfp.Return[int](b)))
		if p.Fst != a || p.Snd != b {
			t.Fatalf("zip pairing: got (%d, %d), want (%d, %d)", p.Fst, p.Snd, a, b)
		}
	}
}
