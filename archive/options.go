package archive

import (
	"github.com/spf13/afero"
)

const (
	defaultCacheSize = 64
	defaultMaxSize   = 512 << 20
)

type options struct {
	fs        afero.Fs
	cacheSize int
	maxSize   int64
}

// Option configures archive access.
type Option func(*options)

// WithFs reads archives and compressed files from fs instead of the OS.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithCacheSize sets how many extracted members stay in memory.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithMaxSize caps the decompressed size of any single member or asset.
func WithMaxSize(n int64) Option {
	return func(o *options) { o.maxSize = n }
}

func buildOptions(opts []Option) options {
	o := options{
		fs:        afero.NewOsFs(),
		cacheSize: defaultCacheSize,
		maxSize:   defaultMaxSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize <= 0 {
		o.cacheSize = 1
	}
	return o
}
