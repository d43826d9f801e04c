// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xtr provides indexed iteration over any iterable, along with a
// few small conveniences (branch hints, debug logging, n-dimensional arrays).
//
// # Quick Start
//
//	names := xtr.SliceOf("ada", "grace", "barbara")
//	for i, name := range xtr.Enumerate(names).All() {
//	    fmt.Println(i, name) // i is a uint
//	}
//
// # Iteration Protocol
//
// Anything implementing [Iterable] can be enumerated:
//
//	type Iterable[E, S any] interface {
//	    Begin() Iterator[E, S]
//	    End() S
//	}
//
// The end value S is a sentinel the iterator compares itself against with
// Equal; it need not be an iterator. A slice cursor compares its position
// with the length, a [Ring] cursor compares its last error with
// [ErrWouldBlock], a [Seq] cursor checks for [Exhausted].
//
// [Begin] on an [Enumerator] wraps the iterable's first iterator in an
// [IndexedIterator]; [End] returns the iterable's sentinel untouched.
//
// # Ownership
//
// Three constructor families decide how the iterable is held:
//
//	xtr.Enumerate(c)                 // borrow: caller keeps c, re-iterable
//	xtr.Own(c)                       // consume: enumerator owns c, Close closes it
//	xtr.Emplace[E, S](build, args...) // build in place from args, then own
//
// Ownership is fixed at construction; see [Ownership].
//
// # Index Type
//
// Enumerate, Own and Emplace index with uint. The Sized variants use the
// result type of the iterable's Len method, and the As variants take the
// index type explicitly:
//
//	xtr.EnumerateSized(ring)          // ring.Len() is uint64 → uint64 index
//	xtr.EnumerateAs[uint8](names)     // uint8 index
//
// Only integer kinds satisfy [Index]; anything else fails to compile.
//
// # No-panic Guarantees
//
// Iterables may declare which of their operations never panic by
// implementing [Guaranteer]. Enumerators and indexed iterators report
// exactly the claims of what they wrap, plus the claims that hold for the
// adapter itself (borrowing never panics, neither does advancing an index).
// Panics raised by the wrapped iterable propagate unchanged.
//
// # Ready-made Iterables
//
//	Slice[E]       - slice view yielding copies, int size type
//	Refs[E]        - slice view yielding *E for in-place updates
//	Seq[E]         - any iter.Seq[E], pulled on demand
//	Ring[E]        - SPSC ring; iteration drains it, uint64 size type
//	MultiArray[E]  - row-major n-dimensional array
//
// # Debug Builds
//
// Building with the debug tag turns [Assume] and [AssertAssume] into
// checks and makes [DebugLog] write to standard output:
//
//	go test -tags debug ./...
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] and [code.hybscloud.com/spin] for the ring,
// and [github.com/anacrolix/generics] for the pull cursor of [Seq].
package xtr
