// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package xtr

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent [Ring] tests, which trigger false
// positives because the detector cannot observe atomix memory ordering
// on the unsynchronized buffer slots.
const RaceEnabled = true
