// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a [Ring] operation cannot proceed immediately.
//
// For Enqueue: the ring is full (backpressure)
// For Dequeue: the ring is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. It is also the end
// sentinel of a Ring: enumeration of a ring stops when it runs dry.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClosed is returned by [Ring] operations after Close.
var ErrClosed = errors.New("xtr: ring closed")

// IsWouldBlock reports whether err, possibly wrapped, is [ErrWouldBlock].
// [Ring.Put] spins on it.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is an iox control flow signal rather
// than a failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or a control flow signal.
// A ring pass ends on anything else, such as [ErrClosed].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
