package assimp

/*
#include <assimp/cimport.h>

void ai_attach_go_stream(void);
*/
import "C"

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logStreamMu sync.Mutex
	logStream   *zap.Logger
)

// AttachLogger forwards the native library's log output to l. Calling it
// again replaces the destination. A nil l detaches like DetachLoggers.
func AttachLogger(l *zap.Logger) {
	if l == nil {
		DetachLoggers()
		return
	}
	logStreamMu.Lock()
	defer logStreamMu.Unlock()
	if logStream == nil {
		C.ai_attach_go_stream()
	}
	logStream = l.Named("native")
}

// DetachLoggers stops all native log output, including streams attached
// outside this package.
func DetachLoggers() {
	logStreamMu.Lock()
	defer logStreamMu.Unlock()
	C.aiDetachAllLogStreams()
	logStream = nil
}

// SetVerboseLogging enables the native library's debug and verbose
// messages.
func SetVerboseLogging(on bool) {
	var v C.aiBool
	if on {
		v = 1
	}
	C.aiEnableVerboseLogging(v)
}

//export assimpLogMessage
func assimpLogMessage(msg *C.char, user *C.char) {
	logStreamMu.Lock()
	l := logStream
	logStreamMu.Unlock()
	if l == nil {
		return
	}
	level, text := parseLogLine(C.GoString(msg))
	if ce := l.Check(level, text); ce != nil {
		ce.Write()
	}
}

// parseLogLine splits a native log line such as "Warn,  T0: message\n"
// into a level and the message text.
func parseLogLine(line string) (zapcore.Level, string) {
	line = strings.TrimRight(line, "\r\n")
	prefix, rest, ok := strings.Cut(line, ",")
	if !ok {
		return zapcore.InfoLevel, line
	}

	level := zapcore.InfoLevel
	switch prefix {
	case "Debug", "Verbose":
		level = zapcore.DebugLevel
	case "Info":
		level = zapcore.InfoLevel
	case "Warn":
		level = zapcore.WarnLevel
	case "Error":
		level = zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel, line
	}

	rest = strings.TrimLeft(rest, " ")
	if _, msg, ok := strings.Cut(rest, ": "); ok && strings.HasPrefix(rest, "T") {
		rest = msg
	}
	return level, rest
}
