// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build debug

package debug

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Enabled indicates whether debugging is enabled.
const Enabled = true

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

func getLogger() *zap.Logger {
	loggerOnce.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level.SetLevel(zap.DebugLevel)
		config.OutputPaths = []string{"stdout"}
		config.DisableStacktrace = true
		// Log reports the caller itself; zap's own would always be this file.
		config.DisableCaller = true

		l, err := config.Build()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// SetLogger replaces the logger used by Log. A nil logger discards output.
func SetLogger(l *zap.Logger) {
	getLogger()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Log writes msg tagged with the file and line skip frames above the caller.
func Log(skip int, msg string) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "?", 0
	}
	getLogger().Debug("Debug message: "+msg,
		zap.String("file", file),
		zap.Int("line", line),
	)
}

// Assert panics with msg when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic("xtr: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
