package fileio

import (
	"io"
	"testing"

	"github.com/spf13/afero"
)

// memStream is an in-memory Stream that counts reads and remembers Close.
type memStream struct {
	data   []byte
	pos    int64
	reads  int
	closed bool
}

func newMemStream(s string) *memStream {
	return &memStream{data: []byte(s)}
}

func (m *memStream) Read(p []byte) (int, error) {
	m.reads++
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	}
	next := base + offset
	if next < 0 {
		return m.pos, io.ErrUnexpectedEOF
	}
	m.pos = next
	return next, nil
}

func (m *memStream) Close() error {
	m.closed = true
	return nil
}

type abortSignal struct{ msg string }

// expectFatal runs fn with abort replaced by a panic and fails the test
// unless fn reaches fatal.
func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	prev := abort
	abort = func() { panic(abortSignal{}) }
	defer func() { abort = prev }()

	fired := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abortSignal); !ok {
					panic(r)
				}
				fired = true
			}
		}()
		fn()
	}()
	if !fired {
		t.Fatal("expected fatal, call returned normally")
	}
}

// memFs returns a MemMapFs holding the given files.
func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}
	return fs
}

func readAll(t *testing.T, f *File) string {
	t.Helper()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", f.Path(), err)
	}
	return string(data)
}

// checkBalanced fails if records or tables were leaked since before.
func checkBalanced(t *testing.T, before Allocations) {
	t.Helper()
	after := Stats()
	if after.Records != before.Records {
		t.Errorf("live records = %d, want %d", after.Records, before.Records)
	}
	if after.Tables != before.Tables {
		t.Errorf("live tables = %d, want %d", after.Tables, before.Tables)
	}
}
