// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build debug

package xtr_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/xtr"
	"code.hybscloud.com/xtr/internal/debug"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestDebugLogReportsCaller verifies DebugLog tags the message with the
// file and line of its caller, not of the hints package.
func TestDebugLogReportsCaller(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	debug.SetLogger(zap.New(core))
	defer debug.SetLogger(nil)

	xtr.DebugLog("x")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Message != "Debug message: x" {
		t.Fatalf("Message: got %q, want %q", e.Message, "Debug message: x")
	}
	fields := e.ContextMap()
	if file, _ := fields["file"].(string); !strings.HasSuffix(file, "hints_debug_test.go") {
		t.Fatalf("file: got %v, want suffix hints_debug_test.go", fields["file"])
	}
	if line, _ := fields["line"].(int64); line <= 0 {
		t.Fatalf("line: got %v, want > 0", fields["line"])
	}
}

// TestCloseLogsOwnedRelease verifies closing an owning enumerator over a
// closable iterable emits one debug entry.
func TestCloseLogsOwnedRelease(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	debug.SetLogger(zap.New(core))
	defer debug.SetLogger(nil)

	xtr.Enumerate(xtr.NewRing[int](2)).Close()
	if n := logs.Len(); n != 0 {
		t.Fatalf("entries after borrowed Close: got %d, want 0", n)
	}
	xtr.Own(xtr.NewRing[int](2)).Close()
	if got := logs.FilterMessage("Debug message: closing owned iterable").Len(); got != 1 {
		t.Fatalf("closing entries: got %d, want 1", got)
	}
}
