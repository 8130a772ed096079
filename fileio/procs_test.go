package fileio

import (
	"errors"
	"math"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error)       { return 0, errors.New("disk on fire") }
func (failingReader) Seek(int64, int) (int64, error) { return 0, errors.New("no seeking") }

// chunkyStream returns at most two bytes per Read.
type chunkyStream struct{ *memStream }

func (c chunkyStream) Read(p []byte) (int, error) {
	if len(p) > 2 {
		p = p[:2]
	}
	return c.memStream.Read(p)
}

type failingFlusher struct{ *memStream }

func (failingFlusher) Flush() error { return errors.New("flush failed") }

type countingFlusher struct {
	*memStream
	flushes int
}

func (c *countingFlusher) Flush() error {
	c.flushes++
	return nil
}

func TestOpenFile_ReadFillsBuffer(t *testing.T) {
	f := &openFile{reader: chunkyStream{newMemStream("abcdefg")}, path: "x", mode: ModeReadOnly}

	buf := make([]byte, 5)
	if n := f.read(buf); n != 5 || string(buf) != "abcde" {
		t.Fatalf("read = %d %q, want 5 \"abcde\"", n, buf)
	}
	if n := f.read(buf); n != 2 || string(buf[:n]) != "fg" {
		t.Fatalf("short read at EOF = %d %q", n, buf[:n])
	}
	if n := f.read(buf); n != 0 {
		t.Fatalf("read past EOF = %d", n)
	}
}

func TestOpenFile_SeekOrigins(t *testing.T) {
	f := &openFile{reader: newMemStream("0123456789"), path: "x", mode: ModeReadOnly}

	tests := []struct {
		name   string
		offset uint64
		origin int
		want   int
		pos    uint64
	}{
		{"set", 6, originSet, seekSuccess, 6},
		{"cur negative", uint64(math.MaxUint64 - 1), originCur, seekSuccess, 4}, // -2
		{"end negative", uint64(math.MaxUint64), originEnd, seekSuccess, 9},     // -1
		{"cur before start", uint64(math.MaxUint64 - 99), originCur, seekFailure, 9},
		{"set beyond int64", math.MaxUint64, originSet, seekFailure, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.seek(tt.offset, tt.origin); got != tt.want {
				t.Fatalf("seek = %d, want %d", got, tt.want)
			}
			if got := f.tell(); got != tt.pos {
				t.Errorf("tell = %d, want %d", got, tt.pos)
			}
		})
	}
}

func TestOpenFile_SizeRestoresPosition(t *testing.T) {
	f := &openFile{reader: newMemStream("0123456789"), path: "x", mode: ModeReadOnly}
	f.seek(3, originSet)

	if got := f.size(); got != 10 {
		t.Errorf("size = %d, want 10", got)
	}
	if got := f.tell(); got != 3 {
		t.Errorf("tell after size = %d, want 3", got)
	}
}

func TestOpenFile_ReadOnlyWriteAndFlush(t *testing.T) {
	s := &countingFlusher{memStream: newMemStream("keep")}
	f := &openFile{reader: s, writer: s, path: "x", mode: ModeReadOnly}

	if n := f.write([]byte("lose")); n != 0 {
		t.Errorf("write = %d, want 0", n)
	}
	f.flush()
	if s.flushes != 0 {
		t.Error("flush reached a read-only stream")
	}
	if string(s.data) != "keep" {
		t.Errorf("data = %q", s.data)
	}

	f.mode = ModeReadWrite
	f.flush()
	if s.flushes != 1 {
		t.Errorf("flushes = %d, want 1", s.flushes)
	}
}

func TestFatalPaths(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"unknown origin", func() {
			f := &openFile{reader: newMemStream("x"), path: "x"}
			f.seek(0, 7)
		}},
		{"read error", func() {
			f := &openFile{reader: failingReader{}, path: "x"}
			f.read(make([]byte, 4))
		}},
		{"tell error", func() {
			f := &openFile{reader: failingReader{}, path: "x"}
			f.tell()
		}},
		{"flush error", func() {
			s := failingFlusher{newMemStream("")}
			f := &openFile{reader: s, writer: s, path: "x", mode: ModeReadWrite}
			f.flush()
		}},
		{"byte count overflow", func() {
			byteCount(math.MaxUint64, 2, "read")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectFatal(t, tt.fn)
		})
	}
}

func TestRelease_CrossBridgeIsFatal(t *testing.T) {
	fs := memFs(t, map[string]string{"a.obj": "a"})
	one, err := NewDefaultIO(WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	defer one.Close()
	two, err := NewDefaultIO(WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	defer two.Close()

	h, _, err := one.openStream("a.obj")
	if err != nil {
		t.Fatal(err)
	}

	expectFatal(t, func() { two.release(one.id, h) })
	if one.OpenFiles() != 1 {
		t.Fatal("cross-bridge close touched the owner's file")
	}

	one.release(one.id, h)
	if one.OpenFiles() != 0 {
		t.Error("owner release did not remove the file")
	}

	expectFatal(t, func() { one.release(one.id, h) })
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"model.dae", true},
		{"models/ünïcode.obj", true},
		{"", false},
		{"bad\xff.obj", false},
	}
	for _, tt := range tests {
		_, err := decodePath(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("decodePath(%q) err = %v, want ok=%v", tt.path, err, tt.ok)
		}
	}
}

func TestByteCount(t *testing.T) {
	if got := byteCount(4, 3, "read"); got != 12 {
		t.Errorf("byteCount(4, 3) = %d", got)
	}
	if got := byteCount(0, math.MaxUint64, "read"); got != 0 {
		t.Errorf("byteCount(0, max) = %d", got)
	}
}
