package fileio

// handlerOpener boxes streams from a read-write Handler.
type handlerOpener[S Stream, H Handler[S]] struct {
	handler H
}

func (o handlerOpener[S, H]) open(path string) (*openFile, error) {
	s, err := o.handler.Open(path)
	if err != nil {
		return nil, err
	}
	return &openFile{
		reader: s,
		writer: s,
		close:  func() error { return o.handler.Close(s) },
		mode:   ModeReadWrite,
	}, nil
}

func (o handlerOpener[S, H]) discard() error {
	if d, ok := any(o.handler).(discarder); ok {
		return d.discard()
	}
	return nil
}

// readOnlyOpener boxes streams from a Handler that cannot write.
type readOnlyOpener[S ReadOnlyStream, H Handler[S]] struct {
	handler H
}

func (o readOnlyOpener[S, H]) open(path string) (*openFile, error) {
	s, err := o.handler.Open(path)
	if err != nil {
		return nil, err
	}
	return &openFile{
		reader: s,
		close:  func() error { return o.handler.Close(s) },
		mode:   ModeReadOnly,
	}, nil
}

func (o readOnlyOpener[S, H]) discard() error {
	if d, ok := any(o.handler).(discarder); ok {
		return d.discard()
	}
	return nil
}

// CustomIO routes every open through a caller-supplied Handler.
type CustomIO[S Stream, H Handler[S]] struct {
	*bridge
	handler H
}

// NewCustomIO builds a bridge around handler.
func NewCustomIO[S Stream, H Handler[S]](handler H) (*CustomIO[S, H], error) {
	b, err := newBridge(kindCustom, handlerOpener[S, H]{handler: handler})
	if err != nil {
		return nil, err
	}
	return &CustomIO[S, H]{bridge: b, handler: handler}, nil
}

// NewCallbackIO builds a bridge whose opens call fn.
func NewCallbackIO[S Stream](fn func(path string) (S, error)) (*CustomIO[S, *CallbackHandler[S]], error) {
	return NewCustomIO[S](NewCallbackHandler(fn))
}

// Handler returns the handler the bridge was built with.
func (c *CustomIO[S, H]) Handler() H {
	return c.handler
}
