package assimp

/*
#include <assimp/camera.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/assimp/geom"
)

// Camera is a view over one aiCamera. Vectors are in the space of the
// node with the same name.
type Camera struct {
	raw *C.struct_aiCamera
}

func newCamera(p *C.struct_aiCamera) *Camera {
	return &Camera{raw: p}
}

func (c *Camera) Name() string { return goString(&c.raw.mName) }

func (c *Camera) Position() geom.Vector3D { return vec3(&c.raw.mPosition) }
func (c *Camera) LookAt() geom.Vector3D   { return vec3(&c.raw.mLookAt) }
func (c *Camera) Up() geom.Vector3D       { return vec3(&c.raw.mUp) }

// HorizontalFOV is half the horizontal field of view, in radians.
func (c *Camera) HorizontalFOV() float32 { return float32(c.raw.mHorizontalFOV) }
func (c *Camera) ClipNear() float32      { return float32(c.raw.mClipPlaneNear) }
func (c *Camera) ClipFar() float32       { return float32(c.raw.mClipPlaneFar) }

// Aspect is width/height, or 0 when the importer did not set one.
func (c *Camera) Aspect() float32 { return float32(c.raw.mAspect) }

func vec3(p *C.struct_aiVector3D) geom.Vector3D {
	return *(*geom.Vector3D)(unsafe.Pointer(p))
}

func vec2(p *C.struct_aiVector2D) geom.Vector2D {
	return *(*geom.Vector2D)(unsafe.Pointer(p))
}

func color3(p *C.struct_aiColor3D) geom.Color3D {
	return *(*geom.Color3D)(unsafe.Pointer(p))
}
