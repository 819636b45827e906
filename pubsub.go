// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kfp

// Publisher states the minimum capability for a value source: accept a
// consumer and deliver to it. It is the interface-shaped twin of [Task] —
// the same protocol, expressed as a capability a concrete type can satisfy
// rather than a closure.
//
// Composition over the interface is written out as explicit wrapping
// (see [MapPublisher]); there is no hidden dispatch machinery. This is a
// pedagogical sketch of capability-based design, not hardened streaming
// infrastructure: a Publisher delivers once per Sink call and knows nothing
// of demand, buffering, or completion signals.
type Publisher[A any] interface {
	Sink(k func(A))
}

// PublisherFunc adapts a plain delivery function to the Publisher interface.
type PublisherFunc[A any] func(k func(A))

// Sink implements Publisher.
func (f PublisherFunc[A]) Sink(k func(A)) { f(k) }

// just is the single-value source behind [Just].
type just[A any] struct {
	value A
}

func (j just[A]) Sink(k func(A)) { k(j.value) }

// Just creates a Publisher that delivers one known value per Sink call.
func Just[A any](a A) Publisher[A] {
	return just[A]{value: a}
}

// mapped composes a source with an output transform.
type mapped[A, B any] struct {
	src Publisher[A]
	f   func(A) B
}

func (m mapped[A, B]) Sink(k func(B)) {
	m.src.Sink(func(a A) {
		k(m.f(a))
	})
}

// MapPublisher transforms the values a Publisher delivers. The returned
// Publisher sinks into the source with a consumer that applies f before
// delivering downstream — composition by wrapping, spelled out.
func MapPublisher[A, B any](p Publisher[A], f func(A) B) Publisher[B] {
	return mapped[A, B]{src: p, f: f}
}

// FromTask bridges a [Task] into the publisher world. Each Sink call runs
// the task from scratch with the given consumer.
func FromTask[A any](m Task[A]) Publisher[A] {
	return PublisherFunc[A](func(k func(A)) {
		m(func(a A) Unit {
			k(a)
			return Unit{}
		})
	})
}
