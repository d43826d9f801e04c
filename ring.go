// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Ring is a bounded single-producer single-consumer FIFO.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's dequeue index, and vice versa,
// reducing cross-core cache line traffic.
//
// Ring is a consuming [Iterable]: iterating it dequeues, and the pass ends
// when the ring runs dry. The consumer goroutine may enumerate while a
// producer goroutine keeps enqueueing; each pass only sees what was
// available when it reached that position.
//
// Memory: O(capacity) with minimal per-slot overhead
type Ring[E any] struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	closed     atomix.Bool
	_          pad
	buffer     []E
	mask       uint64
}

// NewRing creates a new ring.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func NewRing[E any](capacity int) *Ring[E] {
	if capacity < 2 {
		panic("xtr: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &Ring[E]{
		buffer: make([]E, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrWouldBlock if the ring is full, ErrClosed after Close.
func (q *Ring[E]) Enqueue(elem *E) error {
	if Unlikely(q.closed.LoadAcquire()) {
		return ErrClosed
	}
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrWouldBlock
		}
	}

	q.buffer[tail&q.mask] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Put enqueues elem, spinning while the ring is full (producer only).
// Returns ErrClosed if the ring is closed before elem fits.
func (q *Ring[E]) Put(elem *E) error {
	sw := spin.Wait{}
	for {
		err := q.Enqueue(elem)
		if !IsWouldBlock(err) {
			return err
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty, and
// (zero-value, ErrClosed) once it is empty and closed. Elements enqueued
// before Close are still delivered.
func (q *Ring[E]) Dequeue() (E, error) {
	var zero E
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		// Load closed before tail: a close observed here implies every
		// enqueue preceding it is visible in tail.
		closed := q.closed.LoadAcquire()
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			if Unlikely(closed) {
				return zero, ErrClosed
			}
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[head&q.mask]
	q.buffer[head&q.mask] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the ring capacity.
func (q *Ring[E]) Cap() int {
	return int(q.mask + 1)
}

// Len returns the number of queued elements. It is exact only when no
// other goroutine is operating on the ring.
func (q *Ring[E]) Len() uint64 {
	head := q.head.LoadAcquire()
	return q.tail.LoadAcquire() - head
}

// Close marks the ring closed. Enqueue and Put fail with ErrClosed from
// then on; Dequeue drains what is left before reporting ErrClosed.
// Close may be called by the producer while the consumer is dequeueing.
func (q *Ring[E]) Close() error {
	q.closed.StoreRelease(true)
	return nil
}

// Begin implements [Iterable]. The cursor dequeues the first element
// immediately.
func (q *Ring[E]) Begin() Iterator[E, error] {
	it := &ringIter[E]{q: q}
	it.Next()
	return it
}

// End implements [Iterable]: a pass ends once the ring would block.
func (q *Ring[E]) End() error {
	return ErrWouldBlock
}

// Guarantees implements [Guaranteer].
func (q *Ring[E]) Guarantees() Guarantee {
	return NoPanicAll
}

type ringIter[E any] struct {
	q    *Ring[E]
	elem E
	err  error
}

func (it *ringIter[E]) Value() E {
	return it.elem
}

func (it *ringIter[E]) Next() {
	it.elem, it.err = it.q.Dequeue()
}

// Equal reports true for the end sentinel and for any failure, so a
// drained closed ring terminates the pass too.
func (it *ringIter[E]) Equal(end error) bool {
	return errors.Is(it.err, end) || !IsNonFailure(it.err)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
