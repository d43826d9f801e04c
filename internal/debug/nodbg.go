// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !debug

package debug

// Enabled indicates whether debugging is enabled.
const Enabled = false

// Log logs a debug message when debugging is enabled.
func Log(int, string) {}

// Assert asserts a condition when debugging is enabled.
func Assert(bool, string, ...any) {}
