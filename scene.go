package assimp

/*
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/cfileio.h>
#include <assimp/scene.h>
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/fileio"
)

// SceneFlags are the AI_SCENE_FLAGS_* bits.
type SceneFlags uint32

const (
	SceneIncomplete        SceneFlags = 0x1
	SceneValidated         SceneFlags = 0x2
	SceneValidationWarning SceneFlags = 0x4
	SceneNonVerboseFormat  SceneFlags = 0x8
	SceneTerrain           SceneFlags = 0x10
	SceneAllowShared       SceneFlags = 0x20
)

// Has reports whether every bit of f is set.
func (s SceneFlags) Has(f SceneFlags) bool {
	return s&f == f
}

type importOptions struct {
	io fileio.IO
}

// ImportOption configures Import.
type ImportOption func(*importOptions)

// WithIO makes the importer read every file, the model itself included,
// through io instead of the C runtime. io must stay open until Import
// returns.
func WithIO(io fileio.IO) ImportOption {
	return func(o *importOptions) { o.io = io }
}

// Scene is an imported scene. Its memory belongs to the native library
// and is released by Close; views obtained from it are invalid afterwards.
type Scene struct {
	mu   sync.RWMutex
	ptr  *C.struct_aiScene
	path string
}

// Import reads the file at path and applies flags.
func Import(path string, flags PostProcess, opts ...ImportOption) (*Scene, error) {
	var o importOptions
	for _, opt := range opts {
		opt(&o)
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var ptr *C.struct_aiScene
	if o.io != nil {
		table := o.io.Raw()
		if table == nil {
			return nil, errors.Closed(errors.PhaseImport, "bridge")
		}
		ptr = C.aiImportFileEx(cpath, C.uint(flags), (*C.struct_aiFileIO)(table))
		runtime.KeepAlive(o.io)
	} else {
		ptr = C.aiImportFile(cpath, C.uint(flags))
	}

	Logger().Debug("import",
		zap.String("path", path),
		zap.Stringer("flags", flags),
		zap.Bool("custom_io", o.io != nil),
		zap.Bool("ok", ptr != nil))
	return newScene(ptr, path)
}

// ImportFromMemory imports a model held in data. hint is the file
// extension that selects the importer, such as "obj". Formats that
// reference other files cannot resolve them this way; use Import with a
// stream bridge instead.
func ImportFromMemory(data []byte, hint string, flags PostProcess) (*Scene, error) {
	if len(data) == 0 {
		return nil, errors.InvalidInput(errors.PhaseImport, "empty buffer")
	}
	if uint64(len(data)) > uint64(^C.uint(0)) {
		return nil, errors.TooLarge(errors.PhaseImport, "<memory>", int64(^C.uint(0)))
	}

	buf := C.CBytes(data)
	defer C.free(buf)
	chint := C.CString(hint)
	defer C.free(unsafe.Pointer(chint))

	ptr := C.aiImportFileFromMemory((*C.char)(buf), C.uint(len(data)), C.uint(flags), chint)
	return newScene(ptr, "<memory>."+hint)
}

func newScene(ptr *C.struct_aiScene, path string) (*Scene, error) {
	if ptr == nil {
		return nil, errors.InvalidScene(path, lastError())
	}
	s := &Scene{ptr: ptr, path: path}
	if !s.Valid() {
		flags := uint32(ptr.mFlags)
		C.aiReleaseImport(ptr)
		return nil, errors.Incomplete(path, flags)
	}
	return s, nil
}

// Close releases the scene. Closing twice is a no-op.
func (s *Scene) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ptr != nil {
		C.aiReleaseImport(s.ptr)
		s.ptr = nil
	}
	return nil
}

// PostProcess applies flags to the scene in place. If processing fails the
// native library frees the scene and s is closed.
func (s *Scene) PostProcess(flags PostProcess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ptr == nil {
		return errors.Closed(errors.PhasePostProcess, "scene")
	}

	ptr := C.aiApplyPostProcessing(s.ptr, C.uint(flags))
	if ptr == nil {
		s.ptr = nil
		return errors.New(errors.PhasePostProcess, errors.KindInvalidScene).
			Path(s.path).
			Native(lastError()).
			Detail("post-processing %s failed", flags).
			Build()
	}
	s.ptr = ptr
	return nil
}

func (s *Scene) raw() *C.struct_aiScene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ptr
}

// Path returns the path the scene was imported from.
func (s *Scene) Path() string { return s.path }

// Flags returns the scene flags, or 0 once closed.
func (s *Scene) Flags() SceneFlags {
	p := s.raw()
	if p == nil {
		return 0
	}
	return SceneFlags(p.mFlags)
}

// Valid reports whether the scene is open, complete and has a root node.
func (s *Scene) Valid() bool {
	p := s.raw()
	return p != nil && !SceneFlags(p.mFlags).Has(SceneIncomplete) && p.mRootNode != nil
}

// Root returns the root node.
func (s *Scene) Root() *Node {
	p := s.raw()
	if p == nil {
		return nil
	}
	return newNode(p.mRootNode)
}

// NumMeshes returns the number of meshes.
func (s *Scene) NumMeshes() int {
	p := s.raw()
	if p == nil {
		return 0
	}
	return int(p.mNumMeshes)
}

// Meshes returns all meshes in scene order.
func (s *Scene) Meshes() []*Mesh {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiMesh](p.mMeshes, p.mNumMeshes), newMesh)
}

// Mesh returns the mesh at index, as referenced by nodes.
func (s *Scene) Mesh(index int) (*Mesh, error) {
	p := s.raw()
	if p == nil {
		return nil, errors.Closed(errors.PhaseScene, "scene")
	}
	meshes := slice[*C.struct_aiMesh](p.mMeshes, p.mNumMeshes)
	if index < 0 || index >= len(meshes) {
		return nil, errors.OutOfBounds(errors.PhaseScene, "mesh", index, len(meshes))
	}
	return newMesh(meshes[index]), nil
}

// Materials returns all materials; Mesh.MaterialIndex indexes this slice.
func (s *Scene) Materials() []*Material {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiMaterial](p.mMaterials, p.mNumMaterials), newMaterial)
}

// Textures returns the textures embedded in the model file.
func (s *Scene) Textures() []*Texture {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiTexture](p.mTextures, p.mNumTextures), newTexture)
}

// Cameras returns all cameras.
func (s *Scene) Cameras() []*Camera {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiCamera](p.mCameras, p.mNumCameras), newCamera)
}

// Lights returns all light sources.
func (s *Scene) Lights() []*Light {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiLight](p.mLights, p.mNumLights), newLight)
}

// Animations returns all animations.
func (s *Scene) Animations() []*Animation {
	p := s.raw()
	if p == nil {
		return nil
	}
	return wrap(slice[*C.struct_aiAnimation](p.mAnimations, p.mNumAnimations), newAnimation)
}

// wrap builds a view for every non-nil pointer in ptrs.
func wrap[P any, V any](ptrs []*P, fn func(*P) *V) []*V {
	if len(ptrs) == 0 {
		return nil
	}
	out := make([]*V, 0, len(ptrs))
	for _, p := range ptrs {
		if p != nil {
			out = append(out, fn(p))
		}
	}
	return out
}
