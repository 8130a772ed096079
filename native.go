package assimp

/*
#cgo pkg-config: assimp
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/scene.h>
#include <assimp/version.h>
#include <assimp/anim.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/wippyai/assimp/geom"
)

// goString copies an aiString into Go memory.
func goString(s *C.struct_aiString) string {
	if s == nil || s.length == 0 {
		return ""
	}
	return C.GoStringN(&s.data[0], C.int(s.length))
}

// slice views n elements of C memory at p as a Go slice without copying.
// A nil pointer or zero count gives nil.
func slice[T, P any](p *P, n C.uint) []T {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(p)), int(n))
}

// lastError returns the importer's most recent error text.
func lastError() string {
	return C.GoString(C.aiGetErrorString())
}

// Version reports the linked library version as "major.minor.revision".
func Version() string {
	return fmt.Sprintf("%d.%d.%d",
		uint(C.aiGetVersionMajor()),
		uint(C.aiGetVersionMinor()),
		uint(C.aiGetVersionRevision()))
}

// IsExtensionSupported asks the linked library whether it can import files
// with ext. Both "obj" and ".obj" are accepted.
func IsExtensionSupported(ext string) bool {
	if ext == "" {
		return false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	cext := C.CString(ext)
	defer C.free(unsafe.Pointer(cext))
	return C.aiIsExtensionSupported(cext) != 0
}

// ExtensionList returns the extensions the linked library can import,
// each with its leading dot.
func ExtensionList() []string {
	var s C.struct_aiString
	C.aiGetExtensionList(&s)

	var out []string
	for _, pattern := range strings.Split(goString(&s), ";") {
		ext := strings.TrimPrefix(strings.TrimSpace(pattern), "*")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// layoutMismatches lists geom types whose size differs from the C struct
// they are cast from. Views reinterpret native memory, so this must be
// empty; a build with double-precision ai_real would fail it.
func layoutMismatches() []string {
	checks := []struct {
		name   string
		goSize uintptr
		cSize  uintptr
	}{
		{"Vector2D", unsafe.Sizeof(geom.Vector2D{}), unsafe.Sizeof(C.struct_aiVector2D{})},
		{"Vector3D", unsafe.Sizeof(geom.Vector3D{}), unsafe.Sizeof(C.struct_aiVector3D{})},
		{"Color3D", unsafe.Sizeof(geom.Color3D{}), unsafe.Sizeof(C.struct_aiColor3D{})},
		{"Color4D", unsafe.Sizeof(geom.Color4D{}), unsafe.Sizeof(C.struct_aiColor4D{})},
		{"Quaternion", unsafe.Sizeof(geom.Quaternion{}), unsafe.Sizeof(C.struct_aiQuaternion{})},
		{"Matrix3x3", unsafe.Sizeof(geom.Matrix3x3{}), unsafe.Sizeof(C.struct_aiMatrix3x3{})},
		{"Matrix4x4", unsafe.Sizeof(geom.Matrix4x4{}), unsafe.Sizeof(C.struct_aiMatrix4x4{})},
		{"Texel", unsafe.Sizeof(geom.Texel{}), unsafe.Sizeof(C.struct_aiTexel{})},
		{"VertexWeight", unsafe.Sizeof(geom.VertexWeight{}), unsafe.Sizeof(C.struct_aiVertexWeight{})},
		{"VectorKey", unsafe.Sizeof(geom.VectorKey{}), unsafe.Sizeof(C.struct_aiVectorKey{})},
		{"QuatKey", unsafe.Sizeof(geom.QuatKey{}), unsafe.Sizeof(C.struct_aiQuatKey{})},
		{"MeshKey", unsafe.Sizeof(geom.MeshKey{}), unsafe.Sizeof(C.struct_aiMeshKey{})},
	}
	var bad []string
	for _, c := range checks {
		if c.goSize != c.cSize {
			bad = append(bad, fmt.Sprintf("%s: go %d bytes, C %d bytes", c.name, c.goSize, c.cSize))
		}
	}
	return bad
}
