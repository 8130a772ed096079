package fileio

import (
	"io"
)

// ReadOnlyStream is what a handler must produce at minimum: assimp reads
// and seeks but never needs to write while importing.
type ReadOnlyStream interface {
	io.Reader
	io.Seeker
}

// Stream is a readable, writable, seekable byte stream.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// Flusher is implemented by streams that buffer writes.
type Flusher interface {
	Flush() error
}

// ReadOnly adapts r to a Stream whose writes are accepted and dropped,
// reporting zero bytes written.
func ReadOnly(r ReadOnlyStream) Stream {
	return readOnly{r}
}

type readOnly struct {
	ReadOnlyStream
}

func (readOnly) Write([]byte) (int, error) { return 0, nil }

// Close closes the wrapped stream when it supports closing.
func (r readOnly) Close() error {
	return closeStream(r.ReadOnlyStream)
}

func closeStream(s any) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
