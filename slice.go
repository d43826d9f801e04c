// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

// Slice is an Iterable view of a slice yielding element copies.
//
// Its end sentinel is the slice length and its size type is int, so
// [EnumerateSized] indexes it the way a range loop over a slice does.
type Slice[E any] []E

// SliceOf returns a Slice holding elems.
func SliceOf[E any](elems ...E) Slice[E] {
	return Slice[E](elems)
}

// Begin implements [Iterable].
func (s Slice[E]) Begin() Iterator[E, int] {
	return &sliceIter[E]{s: s}
}

// End implements [Iterable].
func (s Slice[E]) End() int {
	return len(s)
}

// Len returns the number of elements.
func (s Slice[E]) Len() int {
	return len(s)
}

// Guarantees implements [Guaranteer].
func (s Slice[E]) Guarantees() Guarantee {
	return NoPanicAll
}

type sliceIter[E any] struct {
	s []E
	i int
}

func (it *sliceIter[E]) Value() E { return it.s[it.i] }
func (it *sliceIter[E]) Next() { it.i++ }
func (it *sliceIter[E]) Equal(end int) bool { return it.i == end }

// Refs is an Iterable view of a slice yielding pointers to its elements,
// so the loop body can update them in place.
//
//	for _, p := range xtr.EnumerateSized(xtr.Refs[int](xs)).All() {
//	    *p *= 2
//	}
type Refs[E any] []E

// Begin implements [Iterable].
func (s Refs[E]) Begin() Iterator[*E, int] {
	return &refsIter[E]{s: s}
}

// End implements [Iterable].
func (s Refs[E]) End() int {
	return len(s)
}

// Len returns the number of elements.
func (s Refs[E]) Len() int {
	return len(s)
}

// Guarantees implements [Guaranteer].
func (s Refs[E]) Guarantees() Guarantee {
	return NoPanicAll
}

type refsIter[E any] struct {
	s []E
	i int
}

func (it *refsIter[E]) Value() *E { return &it.s[it.i] }
func (it *refsIter[E]) Next() { it.i++ }
func (it *refsIter[E]) Equal(end int) bool { return it.i == end }
