package fileio

import (
	"github.com/spf13/afero"
)

type options struct {
	fs afero.Fs
}

// Option configures bridges that fall back to a filesystem.
type Option func(*options)

// WithFs replaces the real filesystem used for unmatched paths.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

func buildOptions(opts []Option) options {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
