// Package compat converts geom values to and from cogentcore's math32
// types.
//
// geom matrices are row-major like assimp's; math32 matrices are stored
// column-major. The conversions here transpose accordingly so that the
// same point transforms the same way on both sides.
package compat

import (
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/wippyai/assimp/geom"
)

func Vector2(v geom.Vector2D) math32.Vector2     { return math32.Vector2{X: v.X, Y: v.Y} }
func FromVector2(v math32.Vector2) geom.Vector2D { return geom.Vector2D{X: v.X, Y: v.Y} }

func Vector3(v geom.Vector3D) math32.Vector3 {
	return math32.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func FromVector3(v math32.Vector3) geom.Vector3D {
	return geom.Vector3D{X: v.X, Y: v.Y, Z: v.Z}
}

// Vectors converts a slice of vertices in one allocation.
func Vectors(vs []geom.Vector3D) []math32.Vector3 {
	out := make([]math32.Vector3, len(vs))
	for i, v := range vs {
		out[i] = Vector3(v)
	}
	return out
}

// Color3 maps RGB onto XYZ.
func Color3(c geom.Color3D) math32.Vector3 {
	return math32.Vector3{X: c.R, Y: c.G, Z: c.B}
}

// Color4 maps RGBA onto XYZW.
func Color4(c geom.Color4D) math32.Vector4 {
	return math32.Vector4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// RGBA clamps a floating-point color into 8-bit channels.
func RGBA(c geom.Color4D) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// TexelRGBA reorders a BGRA texel.
func TexelRGBA(t geom.Texel) color.RGBA {
	return color.RGBA{R: t.R, G: t.G, B: t.B, A: t.A}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Quat reorders W-first into math32's W-last layout.
func Quat(q geom.Quaternion) math32.Quat {
	return math32.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func FromQuat(q math32.Quat) geom.Quaternion {
	return geom.Quaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

func Matrix3(m geom.Matrix3x3) math32.Matrix3 {
	return math32.Matrix3{
		m.A1, m.B1, m.C1,
		m.A2, m.B2, m.C2,
		m.A3, m.B3, m.C3,
	}
}

func FromMatrix3(m math32.Matrix3) geom.Matrix3x3 {
	return geom.Matrix3x3{
		A1: m[0], A2: m[3], A3: m[6],
		B1: m[1], B2: m[4], B3: m[7],
		C1: m[2], C2: m[5], C3: m[8],
	}
}

func Matrix4(m geom.Matrix4x4) math32.Matrix4 {
	return math32.Matrix4{
		m.A1, m.B1, m.C1, m.D1,
		m.A2, m.B2, m.C2, m.D2,
		m.A3, m.B3, m.C3, m.D3,
		m.A4, m.B4, m.C4, m.D4,
	}
}

func FromMatrix4(m math32.Matrix4) geom.Matrix4x4 {
	return geom.Matrix4x4{
		A1: m[0], A2: m[4], A3: m[8], A4: m[12],
		B1: m[1], B2: m[5], B3: m[9], B4: m[13],
		C1: m[2], C2: m[6], C3: m[10], C4: m[14],
		D1: m[3], D2: m[7], D3: m[11], D4: m[15],
	}
}

// Box3 converts a bounding box.
func Box3(b geom.AABB) math32.Box3 {
	return math32.Box3{Min: Vector3(b.Min), Max: Vector3(b.Max)}
}
