package fileio

/*
#include "bridge.h"
*/
import "C"

import (
	"math"
	"unsafe"
)

// The procedures below are the only entry points from C. Each resolves
// its user-data, pins what it needs, and defers to the Go-level
// implementation. bridge.c wraps them in thunks with the exact
// cfileio.h signatures.

//export fioOpenProc
func fioOpenProc(table *C.struct_aiFileIO, path, mode *C.char) *C.struct_aiFile {
	defer trap("open")
	b := resolve(table, "open")
	if path == nil {
		fatal("open: null path pointer")
	}
	return b.open(C.GoString(path), C.GoString(mode))
}

//export fioCloseProc
func fioCloseProc(table *C.struct_aiFileIO, rec *C.struct_aiFile) {
	defer trap("close")
	b := resolve(table, "close")
	b.closeRecord(rec)
}

//export fioReadProc
func fioReadProc(rec *C.struct_aiFile, buf *C.char, size, count C.size_t) C.size_t {
	defer trap("read")
	b, h, f := borrow(rec, "read")
	defer b.files.Return(h)

	n := byteCount(uint64(size), uint64(count), "read")
	if n == 0 {
		return 0
	}
	if buf == nil {
		fatal("read %q: null buffer for %d bytes", f.path, n)
	}
	return C.size_t(f.read(unsafe.Slice((*byte)(unsafe.Pointer(buf)), n)))
}

//export fioWriteProc
func fioWriteProc(rec *C.struct_aiFile, buf *C.char, size, count C.size_t) C.size_t {
	defer trap("write")
	b, h, f := borrow(rec, "write")
	defer b.files.Return(h)

	n := byteCount(uint64(size), uint64(count), "write")
	if n == 0 {
		return 0
	}
	if buf == nil {
		fatal("write %q: null buffer for %d bytes", f.path, n)
	}
	return C.size_t(f.write(unsafe.Slice((*byte)(unsafe.Pointer(buf)), n)))
}

//export fioTellProc
func fioTellProc(rec *C.struct_aiFile) C.size_t {
	defer trap("tell")
	b, h, f := borrow(rec, "tell")
	defer b.files.Return(h)
	return C.size_t(f.tell())
}

//export fioSizeProc
func fioSizeProc(rec *C.struct_aiFile) C.size_t {
	defer trap("size")
	b, h, f := borrow(rec, "size")
	defer b.files.Return(h)
	return C.size_t(f.size())
}

//export fioSeekProc
func fioSeekProc(rec *C.struct_aiFile, offset C.size_t, origin C.int) C.int {
	defer trap("seek")
	b, h, f := borrow(rec, "seek")
	defer b.files.Return(h)
	return C.int(f.seek(uint64(offset), int(origin)))
}

//export fioFlushProc
func fioFlushProc(rec *C.struct_aiFile) {
	defer trap("flush")
	b, h, f := borrow(rec, "flush")
	defer b.files.Return(h)
	f.flush()
}

// byteCount computes size*count, aborting on overflow.
func byteCount(size, count uint64, proc string) int {
	if size == 0 || count == 0 {
		return 0
	}
	if size > math.MaxInt/count {
		fatal("%s: %d elements of %d bytes overflow", proc, count, size)
	}
	return int(size * count)
}
