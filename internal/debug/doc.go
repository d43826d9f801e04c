// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package debug provides checks and logging compiled in only with the
// debug build tag:
//
//	go test -tags debug ./...
//
// Without the tag every function is an empty body the compiler removes.
package debug
