package fileio

import (
	"github.com/spf13/afero"
)

// DefaultIO opens real files. It behaves like the importer's built-in file
// system and exists so the bridge can be exercised without custom streams.
type DefaultIO struct {
	*bridge
	handler FSHandler
}

// NewDefaultIO builds a bridge over the OS filesystem, or the one given
// with WithFs.
func NewDefaultIO(opts ...Option) (*DefaultIO, error) {
	o := buildOptions(opts)
	h := NewFSHandler(o.fs)
	b, err := newBridge(kindDefault, handlerOpener[afero.File, FSHandler]{handler: h})
	if err != nil {
		return nil, err
	}
	return &DefaultIO{bridge: b, handler: h}, nil
}

// Fs returns the filesystem files are opened from.
func (d *DefaultIO) Fs() afero.Fs {
	return d.handler.Fs
}
