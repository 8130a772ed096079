package assimp

/*
#include <stdlib.h>
#include <assimp/material.h>
*/
import "C"

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/geom"
)

// TextureType is the aiTextureType a texture slot belongs to.
type TextureType uint32

const (
	TextureNone TextureType = iota
	TextureDiffuse
	TextureSpecular
	TextureAmbient
	TextureEmissive
	TextureHeight
	TextureNormals
	TextureShininess
	TextureOpacity
	TextureDisplacement
	TextureLightmap
	TextureReflection
	TextureBaseColor
	TextureNormalCamera
	TextureEmissionColor
	TextureMetalness
	TextureDiffuseRoughness
	TextureAmbientOcclusion
	TextureUnknown
)

var textureTypeNames = [...]string{
	"none", "diffuse", "specular", "ambient", "emissive", "height", "normals",
	"shininess", "opacity", "displacement", "lightmap", "reflection",
	"base_color", "normal_camera", "emission_color", "metalness",
	"diffuse_roughness", "ambient_occlusion", "unknown",
}

func (t TextureType) String() string {
	if int(t) < len(textureTypeNames) {
		return textureTypeNames[t]
	}
	return "unknown"
}

// PropertyType is the aiPropertyTypeInfo of a material property's data.
type PropertyType uint32

const (
	PropertyFloat   PropertyType = 0x1
	PropertyDouble  PropertyType = 0x2
	PropertyString  PropertyType = 0x3
	PropertyInteger PropertyType = 0x4
	PropertyBuffer  PropertyType = 0x5
)

func (t PropertyType) String() string {
	switch t {
	case PropertyFloat:
		return "float"
	case PropertyDouble:
		return "double"
	case PropertyString:
		return "string"
	case PropertyInteger:
		return "integer"
	case PropertyBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Material is a view over one aiMaterial.
type Material struct {
	raw *C.struct_aiMaterial
}

func newMaterial(p *C.struct_aiMaterial) *Material {
	return &Material{raw: p}
}

// Properties returns every property of the material.
func (m *Material) Properties() []*MaterialProperty {
	if m.raw.mNumAllocated == 0 {
		return nil
	}
	return wrap(slice[*C.struct_aiMaterialProperty](m.raw.mProperties, m.raw.mNumProperties), newMaterialProperty)
}

// Property finds a property by key, semantic and index.
func (m *Material) Property(key string, semantic TextureType, index uint32) (*MaterialProperty, bool) {
	for _, p := range m.Properties() {
		if p.Key() == key && p.Semantic() == semantic && p.Index() == index {
			return p, true
		}
	}
	return nil, false
}

// Name returns the material's "?mat.name" property.
func (m *Material) Name() string {
	key := C.CString("?mat.name")
	defer C.free(unsafe.Pointer(key))

	var s C.struct_aiString
	if C.aiGetMaterialString(m.raw, key, 0, 0, &s) != C.aiReturn_SUCCESS {
		return ""
	}
	return goString(&s)
}

// Color looks up a color property such as "$clr.diffuse".
func (m *Material) Color(key string) (geom.Color4D, bool) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var c C.struct_aiColor4D
	if C.aiGetMaterialColor(m.raw, ckey, 0, 0, &c) != C.aiReturn_SUCCESS {
		return geom.Color4D{}, false
	}
	return *(*geom.Color4D)(unsafe.Pointer(&c)), true
}

// TextureCount returns how many textures of type t the material has.
func (m *Material) TextureCount(t TextureType) int {
	return int(C.aiGetMaterialTextureCount(m.raw, C.enum_aiTextureType(t)))
}

// TexturePath returns the path of texture index of type t. Embedded
// textures are named "*N", indexing Scene.Textures.
func (m *Material) TexturePath(t TextureType, index int) (string, error) {
	n := m.TextureCount(t)
	if index < 0 || index >= n {
		return "", errors.OutOfBounds(errors.PhaseScene, t.String()+" texture", index, n)
	}
	var s C.struct_aiString
	ret := C.aiGetMaterialTexture(m.raw, C.enum_aiTextureType(t), C.uint(index), &s,
		nil, nil, nil, nil, nil, nil)
	if ret != C.aiReturn_SUCCESS {
		return "", errors.New(errors.PhaseScene, errors.KindNotFound).
			Detail("%s texture %d", t, index).
			Native(lastError()).
			Build()
	}
	return goString(&s), nil
}

// MaterialProperty is a view over one aiMaterialProperty.
type MaterialProperty struct {
	raw *C.struct_aiMaterialProperty
}

func newMaterialProperty(p *C.struct_aiMaterialProperty) *MaterialProperty {
	return &MaterialProperty{raw: p}
}

// Key is the property name, such as "$clr.diffuse".
func (p *MaterialProperty) Key() string { return goString(&p.raw.mKey) }

// Semantic is the texture type for texture properties, otherwise TextureNone.
func (p *MaterialProperty) Semantic() TextureType { return TextureType(p.raw.mSemantic) }

// Index is the texture index for texture properties, otherwise 0.
func (p *MaterialProperty) Index() uint32 { return uint32(p.raw.mIndex) }

func (p *MaterialProperty) Type() PropertyType { return PropertyType(p.raw.mType) }

// Data returns the raw property bytes, aliasing native memory.
func (p *MaterialProperty) Data() []byte {
	if p.raw.mData == nil || p.raw.mDataLength == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p.raw.mData)), int(p.raw.mDataLength))
}

// Text decodes a string property, stored as a 32-bit length followed by
// the bytes and a NUL.
func (p *MaterialProperty) Text() (string, bool) {
	data := p.Data()
	if p.Type() != PropertyString || len(data) < 4 {
		return "", false
	}
	n := binary.NativeEndian.Uint32(data)
	if uint64(n) > uint64(len(data)-4) {
		return "", false
	}
	return string(data[4 : 4+n]), true
}

// Floats decodes a float property.
func (p *MaterialProperty) Floats() ([]float32, bool) {
	data := p.Data()
	if p.Type() != PropertyFloat {
		return nil, false
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(data[i*4:]))
	}
	return out, true
}

// Ints decodes an integer property.
func (p *MaterialProperty) Ints() ([]int32, bool) {
	data := p.Data()
	if p.Type() != PropertyInteger {
		return nil, false
	}
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(data[i*4:]))
	}
	return out, true
}
