package fileio

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"io"
	"unsafe"

	"github.com/wippyai/assimp/errors"
)

// File drives a bridge from the native side, calling the C procedures the
// same way the importer does. It is used to probe bridges without running
// an import. A File is not safe for concurrent use.
type File struct {
	owner IO
	table *C.struct_aiFileIO
	rec   *C.struct_aiFile
	path  string
}

// Open opens path through the bridge in read mode.
func Open(x IO, path string) (*File, error) {
	return OpenMode(x, path, "rb")
}

// OpenMode opens path through the bridge with an fopen-style mode.
func OpenMode(x IO, path, mode string) (*File, error) {
	table := (*C.struct_aiFileIO)(x.Raw())
	if table == nil {
		return nil, errors.Closed(errors.PhaseBridge, "bridge")
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cmode := C.CString(mode)
	defer C.free(unsafe.Pointer(cmode))

	rec := C.fio_call_open(table, cpath, cmode)
	if rec == nil {
		return nil, errors.New(errors.PhaseOpen, errors.KindHandler).
			Path(path).
			Detail("open procedure returned no record").
			Build()
	}
	return &File{owner: x, table: table, rec: rec, path: path}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// live reports whether the record may still be used. Closing the bridge
// frees records the importer left open, so the owner is checked too.
func (f *File) live() error {
	if f.rec != nil && f.owner.Raw() == nil {
		f.rec = nil
	}
	if f.rec == nil {
		return errors.Closed(errors.PhaseIO, f.path)
	}
	return nil
}

// Read calls the record's read procedure. It returns io.EOF once the
// procedure reports zero bytes.
func (f *File) Read(p []byte) (int, error) {
	if err := f.live(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	buf := C.malloc(C.size_t(len(p)))
	if buf == nil {
		return 0, errors.AllocationFailed(errors.PhaseIO, "read buffer", uintptr(len(p)))
	}
	defer C.free(buf)

	n := int(C.fio_call_read(f.rec, (*C.char)(buf), 1, C.size_t(len(p))))
	copy(p, unsafe.Slice((*byte)(buf), n))
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write calls the record's write procedure. Read-only records accept
// nothing and Write reports io.ErrShortWrite.
func (f *File) Write(p []byte) (int, error) {
	if err := f.live(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	buf := C.CBytes(p)
	defer C.free(buf)

	n := int(C.fio_call_write(f.rec, (*C.char)(buf), 1, C.size_t(len(p))))
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek calls the record's seek procedure and then its tell procedure.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.live(); err != nil {
		return 0, err
	}
	var origin C.int
	switch whence {
	case io.SeekStart:
		origin = originSet
	case io.SeekCurrent:
		origin = originCur
	case io.SeekEnd:
		origin = originEnd
	default:
		return 0, errors.InvalidInput(errors.PhaseIO, "invalid whence")
	}
	if C.fio_call_seek(f.rec, C.size_t(uint64(offset)), origin) != seekSuccess {
		return 0, errors.New(errors.PhaseIO, errors.KindOutOfBounds).
			Path(f.path).
			Detail("seek to %d (whence %d) failed", offset, whence).
			Build()
	}
	return f.Tell(), nil
}

// Tell returns the current offset.
func (f *File) Tell() int64 {
	if f.live() != nil {
		return 0
	}
	return int64(C.fio_call_tell(f.rec))
}

// Size returns the stream length.
func (f *File) Size() int64 {
	if f.live() != nil {
		return 0
	}
	return int64(C.fio_call_size(f.rec))
}

// Flush calls the record's flush procedure.
func (f *File) Flush() {
	if f.live() == nil {
		C.fio_call_flush(f.rec)
	}
}

// Close calls the table's close procedure. Closing twice returns an error.
func (f *File) Close() error {
	if err := f.live(); err != nil {
		return err
	}
	C.fio_call_close(f.table, f.rec)
	f.rec = nil
	return nil
}

// ReadFile opens path through the bridge and reads it whole.
func ReadFile(x IO, path string) ([]byte, error) {
	f, err := Open(x, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make([]byte, 0, f.Size())
	buf := make([]byte, 32*1024)
	for {
		n, err := f.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}
