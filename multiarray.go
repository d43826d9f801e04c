// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import "fmt"

// MultiArray is a fixed-shape n-dimensional array stored in row-major
// order, the run-time counterpart of nesting fixed-size arrays by hand.
//
//	grid := xtr.NewMultiArray[float64](3, 4) // like [3][4]float64
//	*grid.At(2, 1) = 0.5
//
// As an [Iterable] it walks the elements in memory order; [MultiArray.Coords]
// turns a flat enumeration index back into coordinates.
type MultiArray[E any] struct {
	dims    []int
	strides []int
	data    []E
}

// NewMultiArray creates a zeroed array with the given dimensions.
// Panics if no dimension is given or any dimension is < 1.
func NewMultiArray[E any](dims ...int) *MultiArray[E] {
	if len(dims) == 0 {
		panic("xtr: multiarray needs at least one dimension")
	}
	strides := make([]int, len(dims))
	n := 1
	for i := len(dims) - 1; i >= 0; i-- {
		if dims[i] < 1 {
			panic(fmt.Sprintf("xtr: multiarray dimension %d is %d, must be >= 1", i, dims[i]))
		}
		strides[i] = n
		n *= dims[i]
	}
	return &MultiArray[E]{
		dims:    append([]int(nil), dims...),
		strides: strides,
		data:    make([]E, n),
	}
}

// At returns a pointer to the element at ix.
// Panics if len(ix) differs from the rank or any coordinate is out of range.
func (m *MultiArray[E]) At(ix ...int) *E {
	if len(ix) != len(m.dims) {
		panic(fmt.Sprintf("xtr: multiarray rank is %d, got %d coordinates", len(m.dims), len(ix)))
	}
	off := 0
	for i, x := range ix {
		if x < 0 || x >= m.dims[i] {
			panic(fmt.Sprintf("xtr: multiarray coordinate %d out of range [0, %d)", x, m.dims[i]))
		}
		off += x * m.strides[i]
	}
	return &m.data[off]
}

// Coords converts a flat row-major index into coordinates.
func (m *MultiArray[E]) Coords(flat int) []int {
	if flat < 0 || flat >= len(m.data) {
		panic(fmt.Sprintf("xtr: multiarray flat index %d out of range [0, %d)", flat, len(m.data)))
	}
	ix := make([]int, len(m.dims))
	for i, s := range m.strides {
		ix[i] = flat / s
		flat %= s
	}
	return ix
}

// Dims returns a copy of the dimensions.
func (m *MultiArray[E]) Dims() []int {
	return append([]int(nil), m.dims...)
}

// Rank returns the number of dimensions.
func (m *MultiArray[E]) Rank() int {
	return len(m.dims)
}

// Len returns the total number of elements.
func (m *MultiArray[E]) Len() int {
	return len(m.data)
}

// Begin implements [Iterable].
func (m *MultiArray[E]) Begin() Iterator[E, int] {
	return &sliceIter[E]{s: m.data}
}

// End implements [Iterable].
func (m *MultiArray[E]) End() int {
	return len(m.data)
}

// Guarantees implements [Guaranteer].
func (m *MultiArray[E]) Guarantees() Guarantee {
	return NoPanicAll
}
