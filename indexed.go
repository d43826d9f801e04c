// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

// IndexedIterator pairs an index counter with an underlying iterator.
//
// It refers to the underlying cursor but never to the iterable, and it
// implements Iterator[Pair[I, E], S] so indexed iteration composes.
type IndexedIterator[I Index, E, S any] struct {
	it         Iterator[E, S]
	index      I
	guarantees Guarantee
}

func newIndexedIterator[I Index, E, S any](it Iterator[E, S], g Guarantee) *IndexedIterator[I, E, S] {
	return &IndexedIterator[I, E, S]{
		it:         it,
		guarantees: NoPanicConstruct | g&iteratorGuarantees,
	}
}

// Next advances the underlying iterator, then the index.
// The index wraps on overflow.
func (x *IndexedIterator[I, E, S]) Next() {
	x.it.Next()
	x.index++
}

// Value returns the current index with the underlying element.
func (x *IndexedIterator[I, E, S]) Value() Pair[I, E] {
	return Pair[I, E]{Index: x.index, Elem: x.it.Value()}
}

// Equal forwards to the underlying iterator's termination test.
func (x *IndexedIterator[I, E, S]) Equal(end S) bool {
	return x.it.Equal(end)
}

// Stop releases the underlying iterator if it holds resources.
func (x *IndexedIterator[I, E, S]) Stop() {
	if s, ok := x.it.(Stopper); ok {
		s.Stop()
	}
}

// Guarantees returns NoPanicConstruct plus the underlying cursor claims.
func (x *IndexedIterator[I, E, S]) Guarantees() Guarantee {
	return x.guarantees
}
