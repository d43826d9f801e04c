// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import "code.hybscloud.com/xtr/internal/debug"

// DebugEnabled reports whether the package was built with the debug tag.
const DebugEnabled = debug.Enabled

// Likely marks cond as the expected outcome of a branch and returns it.
// The Go compiler takes no branch hints; Likely documents intent only.
//
//	if xtr.Likely(err == nil) {
//	    ...
//	}
func Likely(cond bool) bool { return cond }

// Unlikely marks cond as the unexpected outcome of a branch and returns it.
func Unlikely(cond bool) bool { return cond }

// Assume states an invariant the caller guarantees. It is checked only in
// debug builds, where a false cond panics.
func Assume(cond bool) {
	debug.Assert(cond, "assumption violated")
}

// AssertAssume checks cond in debug builds, panicking with msg when it is
// false. Release builds trust cond.
func AssertAssume(cond bool, msg string) {
	debug.Assert(cond, "%s", msg)
}

// DebugLog writes "Debug message: msg" with the caller's file and line to
// standard output in debug builds. It does nothing otherwise.
func DebugLog(msg string) {
	debug.Log(1, msg)
}
