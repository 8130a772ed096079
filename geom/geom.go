// Package geom holds the plain value types assimp lays out in memory.
//
// Every type here matches its C counterpart field for field with
// single-precision reals, so slices of them can alias native arrays
// without copying.
package geom

import (
	"fmt"
	"math"
)

// Vector2D is struct aiVector2D.
type Vector2D struct {
	X, Y float32
}

// Vector3D is struct aiVector3D.
type Vector3D struct {
	X, Y, Z float32
}

func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(s float32) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3D) Dot(o Vector3D) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length.
func (v Vector3D) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length; the zero vector is returned as is.
func (v Vector3D) Normalize() Vector3D {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Color3D is struct aiColor3D.
type Color3D struct {
	R, G, B float32
}

// Color4D is struct aiColor4D.
type Color4D struct {
	R, G, B, A float32
}

// Quaternion is struct aiQuaternion. W comes first, as in the C layout.
type Quaternion struct {
	W, X, Y, Z float32
}

// Matrix returns the rotation matrix of a unit quaternion.
func (q Quaternion) Matrix() Matrix3x3 {
	return Matrix3x3{
		A1: 1 - 2*(q.Y*q.Y+q.Z*q.Z), A2: 2 * (q.X*q.Y - q.Z*q.W), A3: 2 * (q.X*q.Z + q.Y*q.W),
		B1: 2 * (q.X*q.Y + q.Z*q.W), B2: 1 - 2*(q.X*q.X+q.Z*q.Z), B3: 2 * (q.Y*q.Z - q.X*q.W),
		C1: 2 * (q.X*q.Z - q.Y*q.W), C2: 2 * (q.Y*q.Z + q.X*q.W), C3: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// Matrix3x3 is struct aiMatrix3x3, row-major: A1 A2 A3 is the first row.
type Matrix3x3 struct {
	A1, A2, A3 float32
	B1, B2, B3 float32
	C1, C2, C3 float32
}

// Matrix4x4 is struct aiMatrix4x4, row-major with the translation in
// A4, B4, C4.
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4x4 {
	return Matrix4x4{A1: 1, B2: 1, C3: 1, D4: 1}
}

func (m Matrix4x4) rows() [4][4]float32 {
	return [4][4]float32{
		{m.A1, m.A2, m.A3, m.A4},
		{m.B1, m.B2, m.B3, m.B4},
		{m.C1, m.C2, m.C3, m.C4},
		{m.D1, m.D2, m.D3, m.D4},
	}
}

func fromRows(r [4][4]float32) Matrix4x4 {
	return Matrix4x4{
		r[0][0], r[0][1], r[0][2], r[0][3],
		r[1][0], r[1][1], r[1][2], r[1][3],
		r[2][0], r[2][1], r[2][2], r[2][3],
		r[3][0], r[3][1], r[3][2], r[3][3],
	}
}

// Mul returns m * o. Applied to a point, o acts first.
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	a, b := m.rows(), o.rows()
	var r [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return fromRows(r)
}

// Transpose returns the transposed matrix.
func (m Matrix4x4) Transpose() Matrix4x4 {
	r := m.rows()
	var t [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = r[j][i]
		}
	}
	return fromRows(t)
}

// TransformPoint applies m to p, including translation.
func (m Matrix4x4) TransformPoint(p Vector3D) Vector3D {
	return Vector3D{
		m.A1*p.X + m.A2*p.Y + m.A3*p.Z + m.A4,
		m.B1*p.X + m.B2*p.Y + m.B3*p.Z + m.B4,
		m.C1*p.X + m.C2*p.Y + m.C3*p.Z + m.C4,
	}
}

// Texel is struct aiTexel: one BGRA8888 pixel.
type Texel struct {
	B, G, R, A uint8
}

// VertexWeight is struct aiVertexWeight.
type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

// VectorKey is struct aiVectorKey.
type VectorKey struct {
	Time  float64
	Value Vector3D
}

// QuatKey is struct aiQuatKey.
type QuatKey struct {
	Time  float64
	Value Quaternion
}

// MeshKey is struct aiMeshKey. Value indexes the mesh's anim meshes.
type MeshKey struct {
	Time  float64
	Value uint32
}

// AABB is struct aiAABB.
type AABB struct {
	Min, Max Vector3D
}

// Bounds returns the box enclosing points. ok is false for no points.
func Bounds(points []Vector3D) (box AABB, ok bool) {
	if len(points) == 0 {
		return AABB{}, false
	}
	box.Min, box.Max = points[0], points[0]
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Min.Z = min(box.Min.Z, p.Z)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
		box.Max.Z = max(box.Max.Z, p.Z)
	}
	return box, true
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() Vector3D {
	return b.Max.Sub(b.Min)
}
