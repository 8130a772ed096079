package assimp

/*
#include <assimp/light.h>
*/
import "C"

import (
	"github.com/wippyai/assimp/geom"
)

// LightKind is the aiLightSourceType of a light.
type LightKind uint32

const (
	LightUndefined   LightKind = 0x0
	LightDirectional LightKind = 0x1
	LightPoint       LightKind = 0x2
	LightSpot        LightKind = 0x3
	LightAmbient     LightKind = 0x4
	LightArea        LightKind = 0x5
)

func (k LightKind) String() string {
	switch k {
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	case LightAmbient:
		return "ambient"
	case LightArea:
		return "area"
	default:
		return "undefined"
	}
}

// Light is a view over one aiLight.
type Light struct {
	raw *C.struct_aiLight
}

func newLight(p *C.struct_aiLight) *Light {
	return &Light{raw: p}
}

func (l *Light) Name() string    { return goString(&l.raw.mName) }
func (l *Light) Kind() LightKind { return LightKind(l.raw.mType) }

func (l *Light) Position() geom.Vector3D  { return vec3(&l.raw.mPosition) }
func (l *Light) Direction() geom.Vector3D { return vec3(&l.raw.mDirection) }
func (l *Light) Up() geom.Vector3D        { return vec3(&l.raw.mUp) }

// Attenuation returns the constant, linear and quadratic factors.
func (l *Light) Attenuation() (constant, linear, quadratic float32) {
	return float32(l.raw.mAttenuationConstant),
		float32(l.raw.mAttenuationLinear),
		float32(l.raw.mAttenuationQuadratic)
}

func (l *Light) Diffuse() geom.Color3D  { return color3(&l.raw.mColorDiffuse) }
func (l *Light) Specular() geom.Color3D { return color3(&l.raw.mColorSpecular) }
func (l *Light) Ambient() geom.Color3D  { return color3(&l.raw.mColorAmbient) }

// Cone returns the inner and outer spot angles in radians.
func (l *Light) Cone() (inner, outer float32) {
	return float32(l.raw.mAngleInnerCone), float32(l.raw.mAngleOuterCone)
}

// Size is the extent of an area light.
func (l *Light) Size() geom.Vector2D { return vec2(&l.raw.mSize) }
