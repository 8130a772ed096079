package archive

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"go.uber.org/zap"

	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/fileio"
)

type decoder func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoder{
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
	".lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
	".xz": func(r io.Reader) (io.ReadCloser, error) {
		d, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(d), nil
	},
	".br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
}

// Compressed reports whether path carries a single-file compression
// suffix Decompress understands.
func Compressed(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Decompress reads a compressed file whole. The returned name is the base
// name with the compression suffix stripped ("duck.dae.gz" gives
// "duck.dae"), which importers use to pick a format.
func Decompress(path string, opts ...Option) (string, []byte, error) {
	o := buildOptions(opts)

	ext := filepath.Ext(path)
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return "", nil, errors.Unsupported(errors.PhaseArchive, "compression suffix "+ext)
	}

	f, err := o.fs.Open(path)
	if err != nil {
		return "", nil, errors.New(errors.PhaseArchive, errors.KindNotFound).Path(path).Cause(err).Build()
	}
	defer f.Close()

	r, err := dec(f)
	if err != nil {
		return "", nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "open "+path)
	}
	defer r.Close()

	data, err := readLimited(r, path, o.maxSize)
	if err != nil {
		return "", nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), ext)
	Logger().Debug("decompressed",
		zap.String("path", path),
		zap.String("name", name),
		zap.Int("size", len(data)))
	return name, data, nil
}

// OpenCompressed decompresses path and returns a bridge that serves the
// result, from memory, every time the returned name is opened. The name
// sits next to path ("models/duck.obj.gz" gives "models/duck.obj") so the
// importer resolves companion files against the compressed file's
// directory. Other paths open from the filesystem given in opts.
func OpenCompressed(path string, opts ...Option) (string, *fileio.MultiStreamIO, error) {
	o := buildOptions(opts)
	base, data, err := Decompress(path, opts...)
	if err != nil {
		return "", nil, err
	}
	name := filepath.Join(filepath.Dir(path), base)
	fallback := fileio.NewFSHandler(o.fs)
	b, err := fileio.NewMultiStreamIO(func(p string) (fileio.Opened, error) {
		if p == name {
			return fileio.AsReadOnly(bytes.NewReader(data)), nil
		}
		f, err := fallback.Open(p)
		if err != nil {
			return fileio.Opened{}, err
		}
		return fileio.AsReadOnly(f), nil
	})
	if err != nil {
		return "", nil, err
	}
	return name, b, nil
}
