package fileio

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// abort terminates the process.
var abort = func() { C.fio_abort() }

// fatal reports a broken bridge contract and aborts. Nothing may unwind
// through the importer's C++ frames, so a panic is never an option here.
func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "fileio: %s\nAborting...\n", msg)
	_ = os.Stderr.Sync()
	Logger().Error("bridge contract violated", zap.String("detail", msg))
	_ = Logger().Sync()
	abort()
	panic("fileio: abort returned after: " + msg)
}

// trap converts a panic escaping a C procedure into fatal. Deferred at the
// top of every exported procedure.
func trap(proc string) {
	if r := recover(); r != nil {
		fatal("panic in %s procedure: %v", proc, r)
	}
}
