// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

// Index is the set of types usable as an enumeration index.
//
// Only integer kinds are admitted, so pointer or other reference-like
// index types fail at instantiation rather than at run time.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Iterator is a forward cursor produced by [Iterable.Begin].
//
// The termination test compares the cursor against a sentinel of type S,
// which need not be the iterator's own type. A slice cursor, for example,
// compares its position against the slice length.
type Iterator[E, S any] interface {
	// Value returns the element at the current position.
	// Calling Value once Equal(end) reports true is a contract violation.
	Value() E

	// Next advances the cursor by one element.
	Next()

	// Equal reports whether the cursor has reached end.
	Equal(end S) bool
}

// Iterable is any type exposing a start-iterator/end-sentinel protocol.
//
// Example:
//
//	type Countdown int
//
//	func (c Countdown) Begin() xtr.Iterator[int, int] { return &countdownIter{n: int(c)} }
//	func (c Countdown) End() int                     { return 0 }
type Iterable[E, S any] interface {
	// Begin returns a cursor positioned at the first element.
	Begin() Iterator[E, S]

	// End returns the sentinel the cursor is compared against.
	End() S
}

// Sized is an Iterable that declares its size type through Len.
//
// The result type of Len is the index type chosen by [EnumerateSized],
// [OwnSized] and [EmplaceSized].
type Sized[E, S any, I Index] interface {
	Iterable[E, S]
	Len() I
}

// Stopper is implemented by iterators holding resources that must be
// released when iteration ends early or completes.
type Stopper interface {
	Stop()
}

// Pair is the (index, element) pair produced by an [IndexedIterator].
//
// Elem carries whatever the underlying iterator's Value returns: a copy for
// value iterables, a pointer for [Refs].
type Pair[I Index, E any] struct {
	Index I
	Elem  E
}
