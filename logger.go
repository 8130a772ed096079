package assimp

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the assimp package's logger. It is a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the assimp package's logger.
// Passing nil restores the no-op logger. Set it before any import.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
