// Package fileio bridges Go streams into assimp's C file-system callbacks.
//
// assimp reads every file through a struct aiFileIO table: an open
// procedure, a close procedure and an opaque user-data pointer. Each opened
// file is a struct aiFile record carrying read, write, tell, size, seek and
// flush procedures plus its own user-data. This package builds those tables
// in C memory, routes the procedures into Go, and owns every allocation
// made on the way.
//
// # Bridges
//
// A bridge owns one table and the handler state behind it:
//
//	DefaultIO        real files through an afero filesystem
//	CustomIO[S, H]   any Handler[S]; NewCallbackIO wraps a closure
//	StreamIO         one pre-opened stream served once for a hinted path
//	ReadOnlyStreamIO the same for streams that cannot be written
//	MultiStreamIO    a callback choosing read-only or read-write per path
//
// Every bridge implements IO. Pass it to an import call and Close it once
// the import has returned:
//
//	bridge, err := fileio.MultiRead(func(path string) (fileio.ReadOnlyStream, error) {
//		if path == "model.dae" {
//			return bytes.NewReader(data), nil
//		}
//		return os.Open(path)
//	})
//	if err != nil {
//		return err
//	}
//	defer bridge.Close()
//
//	scene, err := assimp.Import("model.dae", 0, assimp.WithIO(bridge))
//
// The importer checks that a file exists by opening and closing it before
// reading it. A hinted stream is handed out once, so with StreamIO that
// probe claims it and the real read goes to the fallback filesystem.
//
// # Ownership
//
// Go values never cross into C. Bridges and open files live in handle
// tables; user-data slots hold only their handles. A record opened through
// one bridge can only be closed through the same bridge.
//
// # Failure
//
// Failures the importer can handle (unknown path, handler error, handler
// panic during open) yield a NULL record. Contract violations (null
// pointers, stale handles, unknown seek origins, I/O errors mid-stream)
// print a diagnostic and abort the process.
package fileio
