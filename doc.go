// Package assimp binds the Open Asset Import Library for Go.
//
// Scenes are imported by the native library and exposed through read-only
// views over its own memory. Files the importer reads can come from the
// real filesystem or from Go streams handed over through the fileio bridge.
//
// # Architecture Overview
//
//	assimp/              Import entry points and scene views
//	├── fileio/          Custom I/O bridge: C procedure tables backed by Go streams
//	├── archive/         Zip, 7z, rar and compressed assets as bridge sources
//	├── geom/            Vector, matrix and color types laid out like the C structs
//	├── compat/          Conversions to cogentcore math32
//	├── formats/         Static importer format tables
//	├── errors/          Structured error types
//	└── cmd/aiview/      Command-line scene inspector
//
// # Quick Start
//
// Import a file from disk:
//
//	scene, err := assimp.Import("duck.dae", assimp.TargetRealtimeQuality)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer scene.Close()
//
//	for _, mesh := range scene.Meshes() {
//	    fmt.Println(mesh.Name(), len(mesh.Vertices()), len(mesh.Indices()))
//	}
//
// Import from memory. Every time the importer opens "duck.dae" it gets a
// fresh reader over data; any other file it asks for (textures, material
// libraries) is read from disk:
//
//	bridge, err := fileio.MultiRead(func(path string) (fileio.ReadOnlyStream, error) {
//	    if path == "duck.dae" {
//	        return bytes.NewReader(data), nil
//	    }
//	    return os.Open(path)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bridge.Close()
//
//	scene, err := assimp.Import("duck.dae", 0, assimp.WithIO(bridge))
//
// # Lifetimes
//
// Every view (Mesh, Node, Material, ...) points into memory owned by its
// Scene and must not be used after Scene.Close. Slices returned by views
// alias that memory directly; copy them to keep data past Close.
//
// A bridge must outlive every import that uses it. Closing a bridge while
// an import is running is a programming error.
//
// # Thread Safety
//
// Importing is safe from multiple goroutines. A Scene may be read
// concurrently but Close and PostProcess must not race with readers.
package assimp
