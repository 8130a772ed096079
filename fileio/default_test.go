package fileio

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/assimp/errors"
)

func TestDefaultIO_RealFile(t *testing.T) {
	before := Stats()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	content := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	bridge, err := NewDefaultIO()
	if err != nil {
		t.Fatalf("NewDefaultIO: %v", err)
	}

	f, err := Open(bridge, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := f.Size(); got != int64(len(content)) {
		t.Errorf("Size() = %d, want %d", got, len(content))
	}
	if got := readAll(t, f); got != content {
		t.Errorf("content = %q, want %q", got, content)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if bridge.OpenFiles() != 0 {
		t.Errorf("OpenFiles() = %d after close", bridge.OpenFiles())
	}

	if err := bridge.Close(); err != nil {
		t.Fatalf("bridge Close: %v", err)
	}
	checkBalanced(t, before)
}

func TestDefaultIO_MissingFile(t *testing.T) {
	before := Stats()
	bridge, err := NewDefaultIO(WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	_, err = Open(bridge, "missing.fbx")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseOpen, Kind: errors.KindHandler}) {
		t.Fatalf("Open(missing) err = %v", err)
	}
	if Stats().RecordsCreated != before.RecordsCreated {
		t.Error("failed open allocated a record")
	}
}

func TestDefaultIO_InvalidPaths(t *testing.T) {
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a.obj": "x"})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	for _, p := range []string{"", "bad\xffname.obj"} {
		if _, err := Open(bridge, p); err == nil {
			t.Errorf("Open(%q) succeeded", p)
		}
	}
}

func TestFile_SizeKeepsPosition(t *testing.T) {
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a.bin": "0123456789"})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "a.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if got := f.Size(); got != 10 {
		t.Errorf("Size() = %d, want 10", got)
	}
	if got := f.Tell(); got != 4 {
		t.Errorf("Tell() after Size() = %d, want 4", got)
	}
}

func TestFile_SeekTell(t *testing.T) {
	const content = "abcdefghij"
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a.bin": content})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "a.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for n := int64(0); n <= int64(len(content)); n++ {
		pos, err := f.Seek(n, io.SeekStart)
		if err != nil {
			t.Fatalf("Seek(%d): %v", n, err)
		}
		if pos != n || f.Tell() != n {
			t.Fatalf("Seek(%d) -> %d, Tell() = %d", n, pos, f.Tell())
		}
	}

	tests := []struct {
		name   string
		offset int64
		whence int
		want   int64
	}{
		{"backwards from current", -3, io.SeekCurrent, 7},
		{"forwards from current", 2, io.SeekCurrent, 9},
		{"back from end", -1, io.SeekEnd, 9},
		{"end", 0, io.SeekEnd, 10},
		{"start", 0, io.SeekStart, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := f.Seek(tt.offset, tt.whence)
			if err != nil {
				t.Fatalf("Seek: %v", err)
			}
			if pos != tt.want {
				t.Errorf("position = %d, want %d", pos, tt.want)
			}
		})
	}
}

func TestFile_SeekBeforeStartFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bin")
	if err := os.WriteFile(path, []byte("abcdef"), 0o644); err != nil {
		t.Fatal(err)
	}
	bridge, err := NewDefaultIO()
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Seek(2, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("seek before start should fail")
	}
	if got := f.Tell(); got != 2 {
		t.Errorf("Tell() after failed seek = %d, want 2", got)
	}
}

func TestBridgeClose_ReclaimsOpenRecords(t *testing.T) {
	before := Stats()
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a": "1", "b": "2"})))
	if err != nil {
		t.Fatal(err)
	}

	fa, err := Open(bridge, "a")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(bridge, "b"); err != nil {
		t.Fatal(err)
	}
	if bridge.OpenFiles() != 2 {
		t.Fatalf("OpenFiles() = %d, want 2", bridge.OpenFiles())
	}

	if err := bridge.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	checkBalanced(t, before)

	if err := bridge.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if bridge.Raw() != nil {
		t.Error("Raw() non-nil after Close")
	}
	if err := fa.Close(); err == nil {
		t.Error("closing a record reclaimed by the bridge should fail")
	}
	if _, err := Open(bridge, "a"); err == nil {
		t.Error("Open through a closed bridge should fail")
	}
}

func TestFile_DoubleClose(t *testing.T) {
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a": "1"})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "a")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseIO, Kind: errors.KindClosed}) {
		t.Errorf("second Close err = %v", err)
	}
}

func TestFile_CloseFreesRecord(t *testing.T) {
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"a": "1"})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	before := Stats()
	f, err := Open(bridge, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got := Stats().Records - before.Records; got != 1 {
		t.Fatalf("live records while open = %d, want 1", got)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	after := Stats()
	if after.Records != before.Records {
		t.Errorf("live records after close = %d, want %d", after.Records, before.Records)
	}
	if after.RecordsCreated != before.RecordsCreated+1 {
		t.Errorf("records created = %d, want %d", after.RecordsCreated, before.RecordsCreated+1)
	}
}

func TestReadFile(t *testing.T) {
	bridge, err := NewDefaultIO(WithFs(memFs(t, map[string]string{"scene.gltf": `{"asset":{"version":"2.0"}}`})))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	data, err := ReadFile(bridge, "scene.gltf")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"asset":{"version":"2.0"}}` {
		t.Errorf("ReadFile = %q", data)
	}
	if bridge.OpenFiles() != 0 {
		t.Error("ReadFile left the record open")
	}
}
