// Package archive feeds models stored in archives or compressed files to
// the import bridge.
//
// Zip, 7z and rar archives are indexed once on Open; members are extracted
// on first use and kept in a small LRU cache, since importers tend to open
// the same companion file (a material library, a shared texture) many times.
// Single-file compression (gzip, zstd, lz4, xz, brotli) is handled by
// Decompress.
package archive

import (
	"bytes"
	"io"
	"path"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/javi11/sevenzip"
	"github.com/klauspost/compress/zip"
	"github.com/nwaples/rardecode/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/fileio"
)

// Kind identifies an archive container format.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindZip
	KindSevenZip
	KindRar
)

func (k Kind) String() string {
	switch k {
	case KindZip:
		return "zip"
	case KindSevenZip:
		return "7z"
	case KindRar:
		return "rar"
	default:
		return "unknown"
	}
}

var signatures = []struct {
	magic []byte
	kind  Kind
}{
	{[]byte("PK\x03\x04"), KindZip},
	{[]byte("PK\x05\x06"), KindZip},
	{[]byte("7z\xBC\xAF\x27\x1C"), KindSevenZip},
	{[]byte("Rar!\x1A\x07"), KindRar},
}

// Detect identifies a container from its leading bytes.
func Detect(header []byte) Kind {
	for _, s := range signatures {
		if bytes.HasPrefix(header, s.magic) {
			return s.kind
		}
	}
	return KindUnknown
}

type member struct {
	open func() (io.ReadCloser, error)
	name string
	size int64
}

// Archive is an indexed archive whose members can be served to the bridge.
// It is safe for concurrent use.
type Archive struct {
	file    afero.File
	cache   *lru.Cache[string, []byte]
	members map[string]member
	folded  map[string]string
	group   singleflight.Group
	extract sync.Mutex
	path    string
	names   []string
	maxSize int64
	kind    Kind
}

// Open indexes the archive at path.
func Open(p string, opts ...Option) (*Archive, error) {
	o := buildOptions(opts)

	f, err := o.fs.Open(p)
	if err != nil {
		return nil, errors.New(errors.PhaseArchive, errors.KindNotFound).Path(p).Cause(err).Build()
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "stat "+p)
	}

	header := make([]byte, 8)
	n, _ := io.ReadFull(f, header)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "rewind "+p)
	}

	cache, err := lru.New[string, []byte](o.cacheSize)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidInput, err, "member cache")
	}

	a := &Archive{
		file:    f,
		cache:   cache,
		members: map[string]member{},
		folded:  map[string]string{},
		path:    p,
		maxSize: o.maxSize,
		kind:    Detect(header[:n]),
	}

	switch a.kind {
	case KindZip:
		err = a.indexZip(info.Size())
	case KindSevenZip:
		err = a.index7z(info.Size())
	case KindRar:
		err = a.indexRar(o.fs)
	default:
		err = errors.Unsupported(errors.PhaseArchive, "unrecognized archive format in "+p)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	slices.Sort(a.names)
	Logger().Debug("archive indexed",
		zap.String("path", p),
		zap.Stringer("kind", a.kind),
		zap.Int("members", len(a.names)))
	return a, nil
}

func (a *Archive) add(name string, size int64, open func() (io.ReadCloser, error)) {
	key := clean(name)
	if key == "" {
		return
	}
	a.members[key] = member{open: open, name: key, size: size}
	a.folded[strings.ToLower(key)] = key
	a.names = append(a.names, key)
}

func (a *Archive) indexZip(size int64) error {
	r, err := zip.NewReader(a.file, size)
	if err != nil {
		return errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "read zip directory")
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		a.add(f.Name, int64(f.UncompressedSize64), f.Open)
	}
	return nil
}

func (a *Archive) index7z(size int64) error {
	r, err := sevenzip.NewReader(a.file, size)
	if err != nil {
		return errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "read 7z header")
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		a.add(f.Name, int64(f.UncompressedSize), f.Open)
	}
	return nil
}

// indexRar scans headers once. Rar members are solid streams, so each
// extraction reopens the archive and skips to the member.
func (a *Archive) indexRar(fs afero.Fs) error {
	r, err := rardecode.NewReader(a.file)
	if err != nil {
		return errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "read rar header")
	}
	for {
		h, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "scan rar headers")
		}
		if h.IsDir {
			continue
		}
		name := h.Name
		a.add(name, h.UnPackedSize, func() (io.ReadCloser, error) {
			return openRarMember(fs, a.path, name)
		})
	}
}

type rarMember struct {
	io.Reader
	file afero.File
}

func (m rarMember) Close() error { return m.file.Close() }

func openRarMember(fs afero.Fs, archivePath, name string) (io.ReadCloser, error) {
	f, err := fs.Open(archivePath)
	if err != nil {
		return nil, err
	}
	r, err := rardecode.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	for {
		h, err := r.Next()
		if err != nil {
			f.Close()
			if err == io.EOF {
				return nil, errors.NotFound(errors.PhaseArchive, "rar member", name)
			}
			return nil, err
		}
		if h.Name == name {
			return rarMember{Reader: r, file: f}, nil
		}
	}
}

// clean normalizes a member or requested path: forward slashes, no
// leading "./" or "/", no "..".
func clean(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}

// Path returns the archive's location.
func (a *Archive) Path() string { return a.path }

// Kind returns the container format.
func (a *Archive) Kind() Kind { return a.kind }

// Members lists member names, sorted.
func (a *Archive) Members() []string {
	return slices.Clone(a.names)
}

// resolve maps a requested path onto a member name: exact match first,
// then case-insensitive.
func (a *Archive) resolve(name string) (member, bool) {
	key := clean(name)
	if m, ok := a.members[key]; ok {
		return m, true
	}
	if k, ok := a.folded[strings.ToLower(key)]; ok {
		return a.members[k], true
	}
	return member{}, false
}

// Member returns the extracted bytes of a member. Callers must not modify
// the returned slice; it is shared with the cache.
func (a *Archive) Member(name string) ([]byte, error) {
	m, ok := a.resolve(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseArchive, "member", name)
	}
	if data, ok := a.cache.Get(m.name); ok {
		return data, nil
	}

	v, err, shared := a.group.Do(m.name, func() (any, error) {
		data, err := a.read(m)
		if err != nil {
			return nil, err
		}
		a.cache.Add(m.name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	Logger().Debug("member extracted",
		zap.String("archive", a.path),
		zap.String("member", m.name),
		zap.Bool("shared", shared))
	return v.([]byte), nil
}

// read extracts one member. Extractions share the archive file handle,
// whose ReadAt is not safe for concurrent use on every afero backend.
func (a *Archive) read(m member) ([]byte, error) {
	if m.size > a.maxSize {
		return nil, errors.TooLarge(errors.PhaseArchive, m.name, a.maxSize)
	}
	a.extract.Lock()
	defer a.extract.Unlock()
	rc, err := m.open()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "open member "+m.name)
	}
	defer rc.Close()
	return readLimited(rc, m.name, a.maxSize)
}

// readLimited reads r whole, failing once more than limit bytes arrive.
func readLimited(r io.Reader, name string, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseArchive, errors.KindInvalidData, err, "decompress "+name)
	}
	if int64(len(data)) > limit {
		return nil, errors.TooLarge(errors.PhaseArchive, name, limit)
	}
	return data, nil
}

// Reader returns a fresh seekable reader over a member.
func (a *Archive) Reader(name string) (*bytes.Reader, error) {
	data, err := a.Member(name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Opener resolves every path the importer asks for against the archive.
// Records are read-only.
func (a *Archive) Opener() func(path string) (fileio.Opened, error) {
	return func(p string) (fileio.Opened, error) {
		r, err := a.Reader(p)
		if err != nil {
			return fileio.Opened{}, err
		}
		return fileio.AsReadOnly(r), nil
	}
}

// IO returns a bridge serving the whole archive. Import a member by its
// name through it and companion files resolve inside the archive too.
func (a *Archive) IO() (*fileio.MultiStreamIO, error) {
	return fileio.NewMultiStreamIO(a.Opener())
}

// Hinted returns a bridge serving one member, once, for its own name and
// opening every other path from the filesystem given in opts. The importer
// probes a file by opening it before reading, which claims the member, so
// Hinted suits single-pass readers such as fileio.ReadFile; import through
// IO instead.
func (a *Archive) Hinted(name string, opts ...fileio.Option) (*fileio.ReadOnlyStreamIO, error) {
	r, err := a.Reader(name)
	if err != nil {
		return nil, err
	}
	return fileio.NewReadOnlyStreamIO(r, clean(name), opts...)
}

// Close releases the underlying file. Cached members are dropped.
func (a *Archive) Close() error {
	a.cache.Purge()
	return a.file.Close()
}
