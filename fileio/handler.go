package fileio

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/wippyai/assimp/errors"
)

// Handler produces streams for paths the importer asks for and takes them
// back when the importer is done.
type Handler[S any] interface {
	Open(path string) (S, error)
	Close(stream S) error
}

// FSHandler opens files from an afero filesystem.
type FSHandler struct {
	Fs   afero.Fs
	Flag int
	Perm os.FileMode
}

// NewFSHandler returns a handler opening files read-only from fs.
func NewFSHandler(fs afero.Fs) FSHandler {
	return FSHandler{Fs: fs, Flag: os.O_RDONLY}
}

// DefaultHandler opens real files read-only.
func DefaultHandler() FSHandler {
	return NewFSHandler(afero.NewOsFs())
}

func (h FSHandler) Open(path string) (afero.File, error) {
	f, err := h.Fs.OpenFile(path, h.Flag, h.Perm)
	if err != nil {
		return nil, errors.OpenFailed(path, err)
	}
	return f, nil
}

func (h FSHandler) Close(f afero.File) error {
	return f.Close()
}

// CallbackHandler serializes a user closure behind a mutex. A closure that
// panics poisons the handler and every later open fails. A call made while
// the closure is already running fails instead of deadlocking.
type CallbackHandler[S any] struct {
	fn       func(path string) (S, error)
	cause    error
	mu       sync.Mutex
	poisoned atomic.Bool
}

// NewCallbackHandler wraps fn.
func NewCallbackHandler[S any](fn func(path string) (S, error)) *CallbackHandler[S] {
	return &CallbackHandler[S]{fn: fn}
}

func (h *CallbackHandler[S]) Open(path string) (stream S, err error) {
	if h.poisoned.Load() {
		return stream, errors.Poisoned(path, h.cause)
	}
	if !h.mu.TryLock() {
		return stream, errors.Busy(path)
	}
	defer h.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			h.cause = fmt.Errorf("panic: %v", r)
			h.poisoned.Store(true)
			var zero S
			stream, err = zero, errors.Poisoned(path, h.cause)
		}
	}()

	stream, err = h.fn(path)
	if err != nil {
		return stream, errors.OpenFailed(path, err)
	}
	return stream, nil
}

// Close closes the stream when it supports closing.
func (h *CallbackHandler[S]) Close(stream S) error {
	return closeStream(stream)
}

// Poisoned reports whether the closure has panicked.
func (h *CallbackHandler[S]) Poisoned() bool {
	return h.poisoned.Load()
}
