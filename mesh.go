package assimp

/*
#include <assimp/mesh.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/wippyai/assimp/geom"
)

// MaxColorSets and MaxTextureCoords are the per-mesh channel limits.
const (
	MaxColorSets     = C.AI_MAX_NUMBER_OF_COLOR_SETS
	MaxTextureCoords = C.AI_MAX_NUMBER_OF_TEXTURECOORDS
)

// PrimitiveType is a bit set of the primitive kinds a mesh contains.
type PrimitiveType uint32

const (
	PrimitivePoint    PrimitiveType = 0x1
	PrimitiveLine     PrimitiveType = 0x2
	PrimitiveTriangle PrimitiveType = 0x4
	PrimitivePolygon  PrimitiveType = 0x8
)

func (p PrimitiveType) String() string {
	var s string
	for _, k := range []struct {
		bit  PrimitiveType
		name string
	}{
		{PrimitivePoint, "point"},
		{PrimitiveLine, "line"},
		{PrimitiveTriangle, "triangle"},
		{PrimitivePolygon, "polygon"},
	} {
		if p&k.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += k.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Mesh is a view over one aiMesh.
type Mesh struct {
	raw *C.struct_aiMesh

	indicesOnce sync.Once
	indices     []uint32
}

func newMesh(p *C.struct_aiMesh) *Mesh {
	return &Mesh{raw: p}
}

// Name returns the mesh name, often empty.
func (m *Mesh) Name() string { return goString(&m.raw.mName) }

// PrimitiveTypes returns the kinds of primitives in the mesh.
func (m *Mesh) PrimitiveTypes() PrimitiveType { return PrimitiveType(m.raw.mPrimitiveTypes) }

// MaterialIndex indexes Scene.Materials.
func (m *Mesh) MaterialIndex() int { return int(m.raw.mMaterialIndex) }

// NumVertices returns the vertex count shared by all per-vertex channels.
func (m *Mesh) NumVertices() int { return int(m.raw.mNumVertices) }

// Vertices returns vertex positions.
func (m *Mesh) Vertices() []geom.Vector3D {
	return slice[geom.Vector3D](m.raw.mVertices, m.raw.mNumVertices)
}

// Normals returns per-vertex normals, or nil when the mesh has none.
func (m *Mesh) Normals() []geom.Vector3D {
	return slice[geom.Vector3D](m.raw.mNormals, m.raw.mNumVertices)
}

// Tangents returns per-vertex tangents, or nil.
func (m *Mesh) Tangents() []geom.Vector3D {
	return slice[geom.Vector3D](m.raw.mTangents, m.raw.mNumVertices)
}

// Bitangents returns per-vertex bitangents, or nil.
func (m *Mesh) Bitangents() []geom.Vector3D {
	return slice[geom.Vector3D](m.raw.mBitangents, m.raw.mNumVertices)
}

// UVChannels counts the texture coordinate channels in use.
func (m *Mesh) UVChannels() int {
	n := 0
	for i := range MaxTextureCoords {
		if m.raw.mNumUVComponents[i] > 0 && m.raw.mTextureCoords[i] != nil {
			n++
		}
	}
	return n
}

// UVChannel returns texture coordinate channel i and how many of each
// vector's components are used (1 for U, 2 for UV, 3 for UVW). ok is
// false for an unused or out-of-range channel.
func (m *Mesh) UVChannel(i int) (coords []geom.Vector3D, components int, ok bool) {
	if i < 0 || i >= MaxTextureCoords {
		return nil, 0, false
	}
	n := int(m.raw.mNumUVComponents[i])
	if n == 0 || m.raw.mTextureCoords[i] == nil {
		return nil, 0, false
	}
	return slice[geom.Vector3D](m.raw.mTextureCoords[i], m.raw.mNumVertices), n, true
}

// ColorChannel returns vertex color set i, or nil.
func (m *Mesh) ColorChannel(i int) []geom.Color4D {
	if i < 0 || i >= MaxColorSets {
		return nil
	}
	return slice[geom.Color4D](m.raw.mColors[i], m.raw.mNumVertices)
}

// ColorChannels counts the vertex color sets in use.
func (m *Mesh) ColorChannels() int {
	n := 0
	for i := range MaxColorSets {
		if m.raw.mColors[i] != nil {
			n++
		}
	}
	return n
}

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return int(m.raw.mNumFaces) }

// Face returns the vertex indices of face i.
func (m *Mesh) Face(i int) []uint32 {
	faces := slice[C.struct_aiFace](m.raw.mFaces, m.raw.mNumFaces)
	if i < 0 || i >= len(faces) {
		return nil
	}
	return slice[uint32](faces[i].mIndices, faces[i].mNumIndices)
}

// Faces returns every face's vertex indices.
func (m *Mesh) Faces() [][]uint32 {
	faces := slice[C.struct_aiFace](m.raw.mFaces, m.raw.mNumFaces)
	if faces == nil {
		return nil
	}
	out := make([][]uint32, len(faces))
	for i := range faces {
		out[i] = slice[uint32](faces[i].mIndices, faces[i].mNumIndices)
	}
	return out
}

// Indices flattens all faces into one index list. It is computed on first
// call and cached; unlike the other accessors the result is Go memory.
func (m *Mesh) Indices() []uint32 {
	m.indicesOnce.Do(func() {
		faces := slice[C.struct_aiFace](m.raw.mFaces, m.raw.mNumFaces)
		total := 0
		for i := range faces {
			total += int(faces[i].mNumIndices)
		}
		m.indices = make([]uint32, 0, total)
		for i := range faces {
			m.indices = append(m.indices, slice[uint32](faces[i].mIndices, faces[i].mNumIndices)...)
		}
	})
	return m.indices
}

// Bones returns the mesh's bones.
func (m *Mesh) Bones() []*Bone {
	return wrap(slice[*C.struct_aiBone](m.raw.mBones, m.raw.mNumBones), newBone)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (geom.AABB, bool) {
	return geom.Bounds(m.Vertices())
}

// Bone is a view over one aiBone.
type Bone struct {
	raw *C.struct_aiBone
}

func newBone(p *C.struct_aiBone) *Bone {
	return &Bone{raw: p}
}

// Name returns the bone name, which matches a node in the hierarchy.
func (b *Bone) Name() string { return goString(&b.raw.mName) }

// Weights returns the vertices influenced by the bone.
func (b *Bone) Weights() []geom.VertexWeight {
	return slice[geom.VertexWeight](b.raw.mWeights, b.raw.mNumWeights)
}

// Offset returns the matrix from mesh space to bone space in bind pose.
func (b *Bone) Offset() geom.Matrix4x4 {
	return *(*geom.Matrix4x4)(unsafe.Pointer(&b.raw.mOffsetMatrix))
}
