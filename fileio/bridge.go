package fileio

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"sync"
	"unicode/utf8"
	"unsafe"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/fileio/internal/resource"
)

// IO is a bridge that can be handed to an import call.
type IO interface {
	// Raw returns the struct aiFileIO pointer, or nil once closed.
	Raw() unsafe.Pointer

	// Close frees the table and any records the importer left open.
	// Closing twice is a no-op.
	Close() error
}

type bridgeKind uint8

const (
	kindDefault bridgeKind = iota + 1
	kindCustom
	kindStream
	kindReadOnlyStream
	kindMulti
)

func (k bridgeKind) String() string {
	switch k {
	case kindDefault:
		return "default"
	case kindCustom:
		return "custom"
	case kindStream:
		return "stream"
	case kindReadOnlyStream:
		return "read-only-stream"
	case kindMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// bridges resolves table user-data to the owning bridge.
var bridges = resource.NewTable[*bridge]()

// opener produces the Go half of a file record for a decoded path.
type opener interface {
	open(path string) (*openFile, error)
}

// discarder is implemented by openers holding streams nobody claimed.
type discarder interface {
	discard() error
}

// bridge is the state shared by every IO implementation.
type bridge struct {
	opener opener
	files  *resource.Table[*openFile]
	table  *C.struct_aiFileIO
	mu     sync.Mutex
	id     resource.Handle
	kind   bridgeKind
}

func newBridge(kind bridgeKind, op opener) (*bridge, error) {
	b := &bridge{
		opener: op,
		files:  resource.NewTable[*openFile](),
		kind:   kind,
	}

	b.id = bridges.Insert(resource.Kind(kind), b)
	if b.id == 0 {
		return nil, errors.New(errors.PhaseBridge, errors.KindAllocation).
			Detail("bridge registry exhausted").
			Build()
	}

	b.table = allocTable(b.id)
	if b.table == nil {
		bridges.Remove(b.id)
		return nil, errors.AllocationFailed(errors.PhaseBridge, "file table", tableSize)
	}

	b.files.Subscribe(fileLog{bridge: b.id, kind: kind})
	Logger().Debug("bridge created", zap.Uint32("bridge", uint32(b.id)), zap.Stringer("kind", kind))
	return b, nil
}

// Raw implements IO.
func (b *bridge) Raw() unsafe.Pointer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return unsafe.Pointer(b.table)
}

// OpenFiles reports how many records the importer currently holds.
func (b *bridge) OpenFiles() int {
	return b.files.Len()
}

// Close implements IO.
func (b *bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.table == nil {
		return nil
	}

	var err error
	for _, f := range b.files.Close() {
		Logger().Warn("file record still open at bridge close",
			zap.Uint32("bridge", uint32(b.id)),
			zap.String("path", f.path))
		f.Drop()
		err = multierr.Append(err, f.close())
	}

	freeTable(b.table)
	b.table = nil
	bridges.Remove(b.id)

	if d, ok := b.opener.(discarder); ok {
		err = multierr.Append(err, d.discard())
	}

	Logger().Debug("bridge closed", zap.Uint32("bridge", uint32(b.id)), zap.Stringer("kind", b.kind))
	return err
}

// decodePath validates a path received from the importer.
func decodePath(p string) (string, error) {
	if p == "" {
		return "", errors.InvalidPath(p, "empty path")
	}
	if !utf8.ValidString(p) {
		return "", errors.InvalidPath(p, "path is not valid UTF-8")
	}
	return p, nil
}

// openStream runs the handler for path and registers the result. A
// handler panic is treated as a failed open.
func (b *bridge) openStream(path string) (h resource.Handle, f *openFile, err error) {
	path, err = decodePath(path)
	if err != nil {
		return 0, nil, err
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.OpenFailed(path, fmt.Errorf("handler panic: %v", r))
			}
		}()
		f, err = b.opener.open(path)
	}()
	if err != nil {
		return 0, nil, err
	}
	f.path = path

	h = b.files.Insert(resource.Kind(f.mode), f)
	if h == 0 {
		closeErr := f.close()
		return 0, nil, multierr.Append(errors.Closed(errors.PhaseBridge, "bridge"), closeErr)
	}
	return h, f, nil
}

// open runs a handler for path and boxes the result in a new record.
// mode is advisory: the record's dispatch table follows the stream.
func (b *bridge) open(path, mode string) *C.struct_aiFile {
	h, f, err := b.openStream(path)
	if err != nil {
		Logger().Debug("open failed",
			zap.Uint32("bridge", uint32(b.id)),
			zap.String("path", path),
			zap.String("mode", mode),
			zap.Error(err))
		return nil
	}

	rec := allocRecord(b.id, h, f.mode == ModeReadWrite)
	if rec == nil {
		Logger().Warn("file record allocation failed",
			zap.String("path", path),
			zap.Uintptr("bytes", recordSize))
		b.release(b.id, h)
		return nil
	}
	f.record = rec
	return rec
}

// release hands the file behind handle back to its handler and frees its
// record. The owner must be this bridge.
func (b *bridge) release(owner, h resource.Handle) {
	if owner != b.id {
		fatal("record of bridge %d closed through bridge %d", owner, b.id)
	}
	f, err := b.files.Remove(h)
	if err != nil {
		fatal("close of file %d on bridge %d: %v", h, b.id, err)
	}
	if err := f.close(); err != nil {
		fatal("handler close %q: %v", f.path, err)
	}
}

// closeRecord is the close procedure after the table has been resolved.
func (b *bridge) closeRecord(rec *C.struct_aiFile) {
	owner, h, ok := recordSlot(rec)
	if !ok {
		fatal("close: null file record or user-data")
	}
	b.release(owner, h)
}

// borrow pins the file behind a record for one stream operation.
func borrow(rec *C.struct_aiFile, proc string) (*bridge, resource.Handle, *openFile) {
	owner, h, ok := recordSlot(rec)
	if !ok {
		fatal("%s: null file record or user-data", proc)
	}
	b, ok := bridges.Get(owner)
	if !ok {
		fatal("%s: record refers to unknown bridge %d", proc, owner)
	}
	f, ok := b.files.Borrow(h)
	if !ok {
		fatal("%s: record refers to unknown file %d on bridge %d", proc, h, owner)
	}
	return b, h, f
}

// resolve recovers the bridge owning a table.
func resolve(table *C.struct_aiFileIO, proc string) *bridge {
	id, ok := tableOwner(table)
	if !ok {
		fatal("%s: null file table or user-data", proc)
	}
	b, ok := bridges.Get(id)
	if !ok {
		fatal("%s: table refers to unknown bridge %d", proc, id)
	}
	return b
}

// fileLog traces record lifecycles at debug level.
type fileLog struct {
	bridge resource.Handle
	kind   bridgeKind
}

func (l fileLog) OnResourceEvent(e resource.Event) {
	f, _ := e.Value.(*openFile)
	if f == nil {
		return
	}
	switch e.Type {
	case resource.EventCreated:
		Logger().Debug("file opened",
			zap.Uint32("bridge", uint32(l.bridge)),
			zap.Stringer("kind", l.kind),
			zap.String("path", f.path),
			zap.Stringer("mode", f.mode))
	case resource.EventDropped:
		Logger().Debug("file closed",
			zap.Uint32("bridge", uint32(l.bridge)),
			zap.String("path", f.path))
	}
}
