package fileio

import (
	"io"

	"github.com/wippyai/assimp/errors"
)

// Opened is a stream tagged with the dispatch table its record should use.
type Opened struct {
	stream ReadOnlyStream
	writer io.Writer
	mode   Mode
}

// AsReadOnly tags s so writes through its record are dropped.
func AsReadOnly(s ReadOnlyStream) Opened {
	return Opened{stream: s, mode: ModeReadOnly}
}

// AsReadWrite tags s so writes through its record reach it.
func AsReadWrite(s Stream) Opened {
	return Opened{stream: s, writer: s, mode: ModeReadWrite}
}

// Mode returns the tag.
func (o Opened) Mode() Mode {
	return o.mode
}

type multiOpener struct {
	handler *CallbackHandler[Opened]
}

func (o multiOpener) open(path string) (*openFile, error) {
	opened, err := o.handler.Open(path)
	if err != nil {
		return nil, err
	}
	if opened.stream == nil || opened.mode == 0 {
		return nil, errors.OpenFailed(path, errors.InvalidInput(errors.PhaseOpen, "callback returned an untagged stream"))
	}
	return &openFile{
		reader: opened.stream,
		writer: opened.writer,
		close:  func() error { return closeStream(opened.stream) },
		mode:   opened.mode,
	}, nil
}

// MultiStreamIO asks one callback for every path and lets it decide, per
// path, whether the record is read-only or read-write. The decision holds
// for the life of the record.
type MultiStreamIO struct {
	*bridge
	handler *CallbackHandler[Opened]
}

// NewMultiStreamIO builds a bridge around fn.
func NewMultiStreamIO(fn func(path string) (Opened, error)) (*MultiStreamIO, error) {
	h := NewCallbackHandler(fn)
	b, err := newBridge(kindMulti, multiOpener{handler: h})
	if err != nil {
		return nil, err
	}
	return &MultiStreamIO{bridge: b, handler: h}, nil
}

// MultiRead is NewMultiStreamIO for callbacks that only produce read-only streams.
func MultiRead(fn func(path string) (ReadOnlyStream, error)) (*MultiStreamIO, error) {
	return NewMultiStreamIO(func(path string) (Opened, error) {
		s, err := fn(path)
		if err != nil {
			return Opened{}, err
		}
		return AsReadOnly(s), nil
	})
}

// MultiWrite is NewMultiStreamIO for callbacks that only produce writable streams.
func MultiWrite(fn func(path string) (Stream, error)) (*MultiStreamIO, error) {
	return NewMultiStreamIO(func(path string) (Opened, error) {
		s, err := fn(path)
		if err != nil {
			return Opened{}, err
		}
		return AsReadWrite(s), nil
	})
}

// Poisoned reports whether the callback has panicked.
func (m *MultiStreamIO) Poisoned() bool {
	return m.handler.Poisoned()
}
