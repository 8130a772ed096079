package fileio

/*
#include "bridge.h"
*/
import "C"

import (
	"io"
	"math"
)

// Mode selects the dispatch table of a file record.
type Mode uint8

const (
	ModeReadOnly Mode = iota + 1
	ModeReadWrite
)

func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "read-only"
	case ModeReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Seek origins and results as defined by assimp's cfileio.h and types.h.
const (
	originSet = 0
	originCur = 1
	originEnd = 2

	seekSuccess = 0
	seekFailure = -1
)

// openFile is the Go half of a file record: the stream a handler produced
// and the way to hand it back.
type openFile struct {
	reader ReadOnlyStream
	writer io.Writer
	close  func() error
	record *C.struct_aiFile
	path   string
	mode   Mode
}

// Drop frees the C record once the file leaves its bridge's table.
func (f *openFile) Drop() {
	freeRecord(f.record)
	f.record = nil
}

func (f *openFile) read(buf []byte) int {
	n, err := io.ReadFull(f.reader, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		fatal("read %q: %v", f.path, err)
	}
	return n
}

func (f *openFile) write(buf []byte) int {
	if f.mode == ModeReadOnly || f.writer == nil {
		return 0
	}
	n, err := f.writer.Write(buf)
	if err != nil {
		fatal("write %q: %v", f.path, err)
	}
	return n
}

func (f *openFile) tell() uint64 {
	pos, err := f.reader.Seek(0, io.SeekCurrent)
	if err != nil {
		fatal("tell %q: %v", f.path, err)
	}
	return uint64(pos)
}

// size reports the stream length, restoring the position afterwards.
func (f *openFile) size() uint64 {
	pos := f.tell()
	end, err := f.reader.Seek(0, io.SeekEnd)
	if err != nil {
		fatal("size %q: %v", f.path, err)
	}
	if _, err := f.reader.Seek(int64(pos), io.SeekStart); err != nil {
		fatal("size %q: restore position %d: %v", f.path, pos, err)
	}
	return uint64(end)
}

// seek maps an aiOrigin onto io.Seeker. offset arrives as size_t; CUR and
// END offsets are two's-complement negative when they move backwards.
func (f *openFile) seek(offset uint64, origin int) int {
	var whence int
	switch origin {
	case originSet:
		if offset > math.MaxInt64 {
			return seekFailure
		}
		whence = io.SeekStart
	case originCur:
		whence = io.SeekCurrent
	case originEnd:
		whence = io.SeekEnd
	default:
		fatal("seek %q: unknown origin %d", f.path, origin)
	}
	if _, err := f.reader.Seek(int64(offset), whence); err != nil {
		return seekFailure
	}
	return seekSuccess
}

func (f *openFile) flush() {
	if f.mode == ModeReadOnly {
		return
	}
	fl, ok := f.writer.(Flusher)
	if !ok {
		return
	}
	if err := fl.Flush(); err != nil {
		fatal("flush %q: %v", f.path, err)
	}
}
