// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import (
	"io"

	"code.hybscloud.com/xtr/internal/debug"
)

// Ownership describes how an [Enumerator] holds its iterable.
type Ownership uint8

const (
	// Borrowed: the caller keeps the iterable; the enumerator only refers to it.
	Borrowed Ownership = iota
	// Owned: the caller handed the iterable over to the enumerator.
	Owned
	// Emplaced: the enumerator built the iterable itself.
	Emplaced
)

// String returns a human-readable representation of the ownership.
func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	case Emplaced:
		return "emplaced"
	default:
		return "?"
	}
}

// holder decouples the enumerator's storage from how the caller
// supplied the iterable. The mode is fixed at construction.
type holder[E, S any] struct {
	iterable   Iterable[E, S]
	mode       Ownership
	guarantees Guarantee
	released   bool
}

func borrow[E, S any](iterable Iterable[E, S]) holder[E, S] {
	g := GuaranteesOf(iterable)
	return holder[E, S]{
		iterable:   iterable,
		mode:       Borrowed,
		guarantees: g | NoPanicConstruct,
	}
}

func consume[E, S any](iterable Iterable[E, S]) holder[E, S] {
	return holder[E, S]{
		iterable:   iterable,
		mode:       Owned,
		guarantees: GuaranteesOf(iterable),
	}
}

func emplace[E, S any, C Iterable[E, S], A any](build func(...A) C, args ...A) holder[E, S] {
	h := consume[E, S](build(args...))
	h.mode = Emplaced
	return h
}

// get returns the held iterable, panicking after release.
func (h *holder[E, S]) get() Iterable[E, S] {
	if h.released {
		panic("xtr: use after Close")
	}
	return h.iterable
}

// release drops the iterable, closing it first when the holder owns it.
// Begin and End panic from then on, so every claim is withdrawn.
func (h *holder[E, S]) release() error {
	if h.released {
		return nil
	}
	h.released = true
	h.guarantees = 0
	it := h.iterable
	h.iterable = nil
	if h.mode == Borrowed {
		return nil
	}
	if c, ok := it.(io.Closer); ok {
		debug.Log(0, "closing "+h.mode.String()+" iterable")
		return c.Close()
	}
	return nil
}
