// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import "iter"

// Enumerator is the value returned by the Enumerate, Own and Emplace
// families. It holds exactly one iterable and carries the index type I as
// a type parameter.
//
// An Enumerator is itself an Iterable[Pair[I, E], S]. Range over it with
// [Enumerator.All]:
//
//	for i, v := range xtr.Enumerate(xtr.SliceOf("a", "b")).All() {
//	    fmt.Println(i, v)
//	}
//
// A borrowing Enumerator may be iterated any number of times. Iterating an
// owning Enumerator again behaves exactly as iterating its iterable again:
// whatever the iterable guarantees, nothing more.
type Enumerator[I Index, E, S any] struct {
	h holder[E, S]
}

func newEnumerator[I Index, E, S any](h holder[E, S]) *Enumerator[I, E, S] {
	return &Enumerator[I, E, S]{h: h}
}

// Enumerate borrows iterable and indexes it with uint.
func Enumerate[E, S any](iterable Iterable[E, S]) *Enumerator[uint, E, S] {
	return newEnumerator[uint](borrow(iterable))
}

// EnumerateSized borrows iterable and indexes it with the result type of
// its Len method.
func EnumerateSized[E, S any, I Index](iterable Sized[E, S, I]) *Enumerator[I, E, S] {
	return newEnumerator[I](borrow[E, S](iterable))
}

// EnumerateAs borrows iterable and indexes it with I.
//
//	e := xtr.EnumerateAs[uint8](xtr.SliceOf(1, 2, 3))
func EnumerateAs[I Index, E, S any](iterable Iterable[E, S]) *Enumerator[I, E, S] {
	return newEnumerator[I](borrow(iterable))
}

// Own takes ownership of iterable and indexes it with uint.
// The caller must not use iterable afterwards.
func Own[E, S any](iterable Iterable[E, S]) *Enumerator[uint, E, S] {
	return newEnumerator[uint](consume(iterable))
}

// OwnSized takes ownership of iterable and indexes it with the result type
// of its Len method.
func OwnSized[E, S any, I Index](iterable Sized[E, S, I]) *Enumerator[I, E, S] {
	return newEnumerator[I](consume[E, S](iterable))
}

// OwnAs takes ownership of iterable and indexes it with I.
func OwnAs[I Index, E, S any](iterable Iterable[E, S]) *Enumerator[I, E, S] {
	return newEnumerator[I](consume(iterable))
}

// Emplace builds the iterable from args and enumerates it with a uint
// index. The element and sentinel types are given explicitly:
//
//	e := xtr.Emplace[string, int](xtr.SliceOf[string], "a", "b", "c")
func Emplace[E, S any, C Iterable[E, S], A any](build func(...A) C, args ...A) *Enumerator[uint, E, S] {
	return newEnumerator[uint](emplace[E, S](build, args...))
}

// EmplaceSized builds the iterable from args and indexes it with the result
// type of its Len method.
func EmplaceSized[E, S any, I Index, C Sized[E, S, I], A any](build func(...A) C, args ...A) *Enumerator[I, E, S] {
	return newEnumerator[I](emplace[E, S](build, args...))
}

// EmplaceAs builds the iterable from args and indexes it with I.
func EmplaceAs[I Index, E, S any, C Iterable[E, S], A any](build func(...A) C, args ...A) *Enumerator[I, E, S] {
	return newEnumerator[I](emplace[E, S](build, args...))
}

// Begin wraps the iterable's own Begin in a fresh [IndexedIterator].
func Begin[I Index, E, S any](e *Enumerator[I, E, S]) *IndexedIterator[I, E, S] {
	return newIndexedIterator[I](e.h.get().Begin(), e.h.guarantees)
}

// End returns the iterable's own end sentinel, unwrapped.
func End[I Index, E, S any](e *Enumerator[I, E, S]) S {
	return e.h.get().End()
}

// Begin implements [Iterable].
func (e *Enumerator[I, E, S]) Begin() Iterator[Pair[I, E], S] {
	return Begin(e)
}

// End implements [Iterable].
func (e *Enumerator[I, E, S]) End() S {
	return End(e)
}

// All returns an iterator over (index, element) pairs.
// The underlying iterator is stopped when the loop ends, early or not.
func (e *Enumerator[I, E, S]) All() iter.Seq2[I, E] {
	return func(yield func(I, E) bool) {
		it := Begin(e)
		defer it.Stop()
		end := End(e)
		for ; !it.Equal(end); it.Next() {
			p := it.Value()
			if !yield(p.Index, p.Elem) {
				return
			}
		}
	}
}

// Pairs is like All but yields each step as a single [Pair].
func (e *Enumerator[I, E, S]) Pairs() iter.Seq[Pair[I, E]] {
	return func(yield func(Pair[I, E]) bool) {
		it := Begin(e)
		defer it.Stop()
		end := End(e)
		for ; !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Guarantees returns the claims of the enumerator. NoPanicConstruct is
// always present when borrowing; otherwise every claim is inherited from
// the iterable. After Close the enumerator claims nothing.
func (e *Enumerator[I, E, S]) Guarantees() Guarantee {
	return e.h.guarantees
}

// Ownership reports how the iterable is held.
func (e *Enumerator[I, E, S]) Ownership() Ownership {
	return e.h.mode
}

// Close releases the iterable. An owning enumerator closes it when it
// implements io.Closer; a borrowing one leaves it untouched.
// Any use of e after Close panics. Closing twice returns nil.
func (e *Enumerator[I, E, S]) Close() error {
	return e.h.release()
}
