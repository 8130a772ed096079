package fileio

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	Logger().Info("routed")
	if logs.FilterMessage("routed").Len() != 1 {
		t.Fatal("message did not reach the configured logger")
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	Logger().Info("dropped")
	if logs.FilterMessage("dropped").Len() != 0 {
		t.Error("message reached a logger that was replaced")
	}
}
