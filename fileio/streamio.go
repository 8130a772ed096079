package fileio

// StreamIO serves one pre-owned stream for the hinted path, once, and opens
// real files for everything else. Use it to import a model held in memory
// whose companion files (textures, material libraries) live on disk.
type StreamIO struct {
	*bridge
	handler *HintedHandler[Stream]
}

// NewStreamIO builds a bridge holding stream for hint.
func NewStreamIO(stream Stream, hint string, opts ...Option) (*StreamIO, error) {
	o := buildOptions(opts)
	fallback := NewFSHandler(o.fs)
	h := NewHintedHandler[Stream](stream, hint, func(path string) (Stream, error) {
		f, err := fallback.Open(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	b, err := newBridge(kindStream, handlerOpener[Stream, *HintedHandler[Stream]]{handler: h})
	if err != nil {
		return nil, err
	}
	return &StreamIO{bridge: b, handler: h}, nil
}

// Claimed reports whether the hinted stream has been opened.
func (s *StreamIO) Claimed() bool {
	return s.handler.Claimed()
}

// ReadOnlyStreamIO is StreamIO for streams that only read and seek.
// Writes to any of its records are dropped.
type ReadOnlyStreamIO struct {
	*bridge
	handler *HintedHandler[ReadOnlyStream]
}

// NewReadOnlyStreamIO builds a read-only bridge holding stream for hint.
func NewReadOnlyStreamIO(stream ReadOnlyStream, hint string, opts ...Option) (*ReadOnlyStreamIO, error) {
	o := buildOptions(opts)
	fallback := NewFSHandler(o.fs)
	h := NewHintedHandler[ReadOnlyStream](stream, hint, func(path string) (ReadOnlyStream, error) {
		f, err := fallback.Open(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	b, err := newBridge(kindReadOnlyStream, readOnlyOpener[ReadOnlyStream, *HintedHandler[ReadOnlyStream]]{handler: h})
	if err != nil {
		return nil, err
	}
	return &ReadOnlyStreamIO{bridge: b, handler: h}, nil
}

// Claimed reports whether the hinted stream has been opened.
func (s *ReadOnlyStreamIO) Claimed() bool {
	return s.handler.Claimed()
}
