package assimp

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLine(t *testing.T) {
	tests := []struct {
		line  string
		level zapcore.Level
		msg   string
	}{
		{"Info,  T0: Load model.dae\n", zapcore.InfoLevel, "Load model.dae"},
		{"Warn,  T0: ObjFileParser: unknown keyword\n", zapcore.WarnLevel, "ObjFileParser: unknown keyword"},
		{"Error, T1: Unable to open file \"x.fbx\".", zapcore.ErrorLevel, "Unable to open file \"x.fbx\"."},
		{"Debug, T0: Assimp 5.4.3", zapcore.DebugLevel, "Assimp 5.4.3"},
		{"Verbose, T0: detail", zapcore.DebugLevel, "detail"},
		{"no prefix here", zapcore.InfoLevel, "no prefix here"},
		{"Trace, odd", zapcore.InfoLevel, "Trace, odd"},
	}
	for _, tt := range tests {
		level, msg := parseLogLine(tt.line)
		if level != tt.level || msg != tt.msg {
			t.Errorf("parseLogLine(%q) = %v %q, want %v %q", tt.line, level, msg, tt.level, tt.msg)
		}
	}
}

func TestAttachLogger_NilDetaches(t *testing.T) {
	defer DetachLoggers()

	AttachLogger(zap.NewNop())
	if logStream == nil {
		t.Fatal("no stream attached")
	}
	AttachLogger(nil)
	if logStream != nil {
		t.Error("AttachLogger(nil) left a stream attached")
	}
	AttachLogger(nil)
}
