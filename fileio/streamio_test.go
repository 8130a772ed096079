package fileio

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"
	"testing"
)

func TestStreamIO_HintClaimedOnce(t *testing.T) {
	before := Stats()
	stream := newMemStream("in-memory model")
	fs := memFs(t, map[string]string{"model.dae": "on-disk model"})

	bridge, err := NewStreamIO(stream, "model.dae", WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}

	first, err := Open(bridge, "model.dae")
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if got := readAll(t, first); got != "in-memory model" {
		t.Errorf("first open read %q", got)
	}
	if stream.reads == 0 {
		t.Error("hinted stream was never read")
	}
	if !bridge.Claimed() {
		t.Error("Claimed() = false after hinted open")
	}

	second, err := Open(bridge, "model.dae")
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if got := readAll(t, second); got != "on-disk model" {
		t.Errorf("second open read %q, want the real file", got)
	}

	second.Close()
	first.Close()
	if !stream.closed {
		t.Error("claimed stream not closed with its record")
	}
	if err := bridge.Close(); err != nil {
		t.Fatal(err)
	}
	checkBalanced(t, before)
}

func TestStreamIO_UnmatchedPathOpensRealFile(t *testing.T) {
	stream := newMemStream("model")
	fs := memFs(t, map[string]string{"textures/wood.png": "png bytes"})

	bridge, err := NewStreamIO(stream, "model.dae", WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "textures/wood.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := readAll(t, f); got != "png bytes" {
		t.Errorf("read %q", got)
	}
	if bridge.Claimed() {
		t.Error("unmatched path claimed the hinted stream")
	}
	if stream.reads != 0 {
		t.Error("hinted stream read for an unmatched path")
	}
}

func TestStreamIO_SecondOpenFailsWithoutRealFile(t *testing.T) {
	bridge, err := NewStreamIO(newMemStream("model"), "model.dae", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "model.dae")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Open(bridge, "model.dae"); err == nil {
		t.Fatal("second open of the hinted path should fall back and fail")
	}
}

func TestStreamIO_ConcurrentClaims(t *testing.T) {
	bridge, err := NewStreamIO(newMemStream("model"), "model.dae", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			f, err := Open(bridge, "model.dae")
			if err != nil {
				return
			}
			winners.Add(1)
			f.Close()
		}()
	}
	close(start)
	wg.Wait()

	if got := winners.Load(); got != 1 {
		t.Fatalf("%d opens claimed the hinted stream, want exactly 1", got)
	}
}

func TestStreamIO_EmptyHintNeverServesStream(t *testing.T) {
	stream := newMemStream("in-memory")
	fs := memFs(t, map[string]string{"tex.png": "png bytes"})
	bridge, err := NewStreamIO(stream, "", WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "tex.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got := readAll(t, f); got != "png bytes" {
		t.Errorf("read %q, want the real file", got)
	}

	if _, err := Open(bridge, "anything.obj"); err == nil {
		t.Error("open without a real file should fail")
	}
	if bridge.Claimed() {
		t.Error("empty hint claimed the stream")
	}
	if stream.reads != 0 {
		t.Errorf("stream read %d times", stream.reads)
	}
}

// The importer checks existence by opening and closing a path before it
// reads. That first open is the one that takes the hinted stream.
func TestStreamIO_ExistenceCheckClaimsStream(t *testing.T) {
	before := Stats()
	stream := newMemStream("in-memory")
	bridge, err := NewStreamIO(stream, "model.dae", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}

	check, err := Open(bridge, "model.dae")
	if err != nil {
		t.Fatalf("existence check: %v", err)
	}
	if err := check.Close(); err != nil {
		t.Fatal(err)
	}
	if !bridge.Claimed() || !stream.closed {
		t.Fatalf("claimed=%v closed=%v after the existence check", bridge.Claimed(), stream.closed)
	}

	if _, err := Open(bridge, "model.dae"); err == nil {
		t.Fatal("open after the existence check should find no record")
	}
	if stream.reads != 0 {
		t.Errorf("stream read %d times", stream.reads)
	}
	if err := bridge.Close(); err != nil {
		t.Fatal(err)
	}
	checkBalanced(t, before)
}

func TestStreamIO_CloseDiscardsUnclaimedStream(t *testing.T) {
	stream := newMemStream("never opened")
	bridge, err := NewStreamIO(stream, "model.dae", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if err := bridge.Close(); err != nil {
		t.Fatal(err)
	}
	if !stream.closed {
		t.Error("unclaimed stream not closed at bridge close")
	}
}

func TestStreamIO_WritesReachStream(t *testing.T) {
	stream := newMemStream("")
	bridge, err := NewStreamIO(stream, "out.obj", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := OpenMode(bridge, "out.obj", "wb")
	if err != nil {
		t.Fatal(err)
	}
	if n, err := f.Write([]byte("v 1 2 3\n")); err != nil || n != 8 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	f.Flush()
	f.Close()

	if string(stream.data) != "v 1 2 3\n" {
		t.Errorf("stream holds %q", stream.data)
	}
}

func TestReadOnlyStreamIO_WritesDropped(t *testing.T) {
	original := []byte("immutable")
	reader := bytes.NewReader(original)

	bridge, err := NewReadOnlyStreamIO(reader, "model.stl", WithFs(memFs(t, nil)))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "model.stl")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n, err := f.Write([]byte("overwrite"))
	if n != 0 || err != io.ErrShortWrite {
		t.Errorf("Write = %d, %v; want 0, io.ErrShortWrite", n, err)
	}
	f.Flush()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, f); got != "immutable" {
		t.Errorf("read %q after dropped write", got)
	}
	if string(original) != "immutable" {
		t.Error("source bytes mutated")
	}
}

func TestReadOnlyStreamIO_FallbackIsReadOnly(t *testing.T) {
	fs := memFs(t, map[string]string{"tex.png": "pixels"})
	bridge, err := NewReadOnlyStreamIO(bytes.NewReader(nil), "model.stl", WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	f, err := Open(bridge, "tex.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if n, _ := f.Write([]byte("x")); n != 0 {
		t.Errorf("Write through fallback record = %d, want 0", n)
	}
}
