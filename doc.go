// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kfp provides composable function and continuation primitives in Go.
//
// Two independent abstractions are exported. [Func] is a nominal wrapper
// around a pure total mapping, supporting covariant and contravariant
// composition. [Cont] represents a continuation-passing computation:
// a suspended delivery of a value to a caller-supplied consumer.
//
// # Design Philosophy
//
// kfp provides:
//   - Minimal but complete operations for function and continuation composition
//   - Free generic functions instead of method chains, so every operation can
//     introduce fresh type parameters
//   - A single external boundary: the [Executor] schedule-a-thunk capability
//
// # Composable Functions
//
// [Func] names the bare function type func(A) B. Construction is type
// conversion; invocation is plain application. Composition is covariant on
// the output side and contravariant on the input side:
//
//   - [MapFunc]: Compose on the output side — MapFunc(f, g)(a) == g(f(a))
//   - [ContraMapFunc]: Compose on the input side — ContraMapFunc(f, g)(c) == f(g(c))
//   - [FlatMapFunc]: Reader-style bind — the same input drives both stages
//   - [DimapFunc]: Both sides at once — ContraMapFunc then MapFunc
//
// Free helpers for building arguments on the fly:
//
//   - [Comp]: Left-to-right composition — Comp(f, g)(x) == g(f(x))
//   - [Iden]: The identity function
//   - [Const]: Ignore the argument, return a fixed value
//
// FlatMapFunc is reader bind, not bind over the output type: the input value
// is reused to both produce the intermediate result and drive the follow-on
// function. This is deliberate and documented on the operation.
//
// # Continuations
//
// Cont[R, A] computes a value of type A, with final result type R. The
// function receives a continuation k of type func(A) R — "the rest of the
// computation" — and applying k to a value produces the final result.
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a continuation
//   - [Bind]: Sequence two continuations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result
//   - [Then]: Sequence, discarding first result
//
// Execution:
//
//   - [Suspend]: Create a continuation from a CPS function
//   - [Run]: Execute a continuation with the identity consumer
//   - [RunWith]: Execute with a custom terminal consumer
//
// A continuation is built once and run once. Re-running is permitted by the
// type but re-executes the entire chain from scratch; nothing is memoized.
//
// # Zip
//
// Two zip forms pair the results of two continuations:
//
//   - [Zip]: Shared-result form — runs each side to completion with the
//     identity consumer, sequentially. No concurrency is implied.
//   - [ZipPar]: Thread-safe parallel form over [Task] — both sides race;
//     a mutex guards two optional slots, and whichever side completes second
//     delivers the pair downstream, outside the lock, exactly once.
//
// ZipPar never blocks on a missing side and never times out: if one side
// never completes, the pair is never delivered. Detecting that is out of
// scope here.
//
// # Tasks and Executors
//
// [Task] is the effectful variant: Task[A] = Cont[Unit, A], a run-to-completion
// computation whose answer type carries no information. The [Executor]
// interface — schedule a zero-argument thunk for eventual execution — is the
// package's only external collaborator:
//
//   - [Sync]: Immediate same-goroutine invocation
//   - [Spawn]: One goroutine per thunk
//   - [WorkerPool]: Fixed-size pool over a channel queue
//   - [ExecutorFunc]: Adapter for plain functions
//
// Scheduling combinators:
//
//   - [ReceiveOn]: Dispatch the downstream consumer invocation via an Executor
//   - [SubscribeOn]: Dispatch the initial triggering via an Executor
//   - [Start]: Run a Task on an Executor, returning a cancellable [Subscription]
//
// ReceiveOn and SubscribeOn exist only for Task: once the answer type has
// collapsed to [Unit], every further composition must also answer Unit, so
// value-producing composition downstream of an executor hop is lost. This is
// a known architectural boundary of the encoding, kept deliberately rather
// than papered over.
//
// Cancellation is a cooperative flag checked at the delivery boundary.
// [Subscription.Cancel] suppresses observation of the terminal consumer; it
// never unschedules work already handed to an Executor.
//
// # Affine Consumers
//
// [Affine] wraps a consumer with one-shot enforcement:
//
//   - [Once]: Create an affine consumer
//   - [Affine.Resume]: Invoke (panics on reuse)
//   - [Affine.TryResume]: Non-panicking variant
//   - [Affine.Discard]: Drop without invoking
//
// ZipPar delivers through an affine consumer, turning an accidental double
// delivery into a panic instead of a silent duplicate.
//
// # Either Type
//
// Neither Func nor Cont has a built-in error channel. Fallibility is encoded
// in the delivered values themselves with [Either]:
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Right
//   - [FlatMapEither]: Monadic bind
//   - [MapLeftEither]: Transform Left value
//
// Map and Bind never special-case a Left flowing through them; branching on
// failure is the composed functions' concern.
//
// # Direct Style and CPS
//
// The two styles are mechanically equivalent, and the package keeps
// conversions between them:
//
//   - [ToCPS]: Func[A, B] → func(A) Cont[R, B] (direct step becomes Kleisli arrow)
//   - [FromCPS]: func(A) Cont[B, B] → Func[A, B] (run with the identity consumer)
//   - [LiftCont]: Func[A, B] → func(Cont[R, A]) Cont[R, B] (step as chain transformer)
//
// # Publishers
//
// [Publisher] states the minimum capability for a value source — Sink a
// consumer — as an explicit interface, with composition written out as plain
// wrapping rather than synthesized dispatch:
//
//   - [Just]: Single-value source
//   - [PublisherFunc]: Adapter for plain functions
//   - [MapPublisher]: Transform published values
//   - [FromTask]: Bridge a [Task] into the publisher world
//
// # Example
//
//	chain := kfp.Map(kfp.Emit(5), func(x int) int { return x * 2 })
//
//	var got []int
//	kfp.RunWith(chain, func(x int) kfp.Unit {
//		got = append(got, x)
//		return kfp.Unit{}
//	})
//	// got == []int{10}: the terminal consumer ran exactly once
package kfp
