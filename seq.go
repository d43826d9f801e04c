// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Exhausted is the end sentinel of a [Seq].
type Exhausted struct{}

// Seq adapts an iter.Seq to the [Iterable] protocol.
//
// Each Begin starts a fresh pull over the sequence, so a Seq is
// re-iterable exactly when the underlying sequence is. Seq makes no
// no-panic claims: the sequence function may do anything.
type Seq[E any] iter.Seq[E]

// Begin implements [Iterable]. The returned iterator implements [Stopper];
// it must be stopped if abandoned before reaching the end.
func (s Seq[E]) Begin() Iterator[E, Exhausted] {
	next, stop := iter.Pull(iter.Seq[E](s))
	it := &pullIter[E]{next: next, stop: stop}
	it.Next()
	return it
}

// End implements [Iterable].
func (s Seq[E]) End() Exhausted {
	return Exhausted{}
}

type pullIter[E any] struct {
	next func() (E, bool)
	stop func()
	cur  g.Option[E]
}

func (it *pullIter[E]) Value() E {
	return it.cur.Unwrap()
}

func (it *pullIter[E]) Next() {
	v, ok := it.next()
	if !ok {
		it.cur = g.None[E]()
		return
	}
	it.cur = g.Some(v)
}

func (it *pullIter[E]) Equal(Exhausted) bool {
	return !it.cur.Ok
}

func (it *pullIter[E]) Stop() {
	it.stop()
}
