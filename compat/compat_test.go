package compat

import (
	"image/color"
	"testing"

	"github.com/wippyai/assimp/geom"
)

func TestVectorRoundTrip(t *testing.T) {
	v := geom.Vector3D{X: 1, Y: -2, Z: 3.5}
	if got := FromVector3(Vector3(v)); got != v {
		t.Errorf("Vector3 round trip = %v", got)
	}
	w := geom.Vector2D{X: 0.25, Y: 4}
	if got := FromVector2(Vector2(w)); got != w {
		t.Errorf("Vector2 round trip = %v", got)
	}
	if got := Vectors([]geom.Vector3D{v, v}); len(got) != 2 || got[1].Z != 3.5 {
		t.Errorf("Vectors = %v", got)
	}
}

func TestMatrix4Layout(t *testing.T) {
	m := geom.Identity()
	m.A4, m.B4, m.C4 = 7, 8, 9

	cm := Matrix4(m)
	if cm[12] != 7 || cm[13] != 8 || cm[14] != 9 {
		t.Errorf("translation not in column 3: %v", cm)
	}
	if cm[0] != 1 || cm[5] != 1 || cm[10] != 1 || cm[15] != 1 {
		t.Errorf("diagonal lost: %v", cm)
	}
	if got := FromMatrix4(cm); got != m {
		t.Errorf("Matrix4 round trip = %+v", got)
	}
}

func TestMatrix3Layout(t *testing.T) {
	m := geom.Matrix3x3{A1: 1, A2: 2, A3: 3, B1: 4, B2: 5, B3: 6, C1: 7, C2: 8, C3: 9}
	cm := Matrix3(m)
	if cm[0] != 1 || cm[1] != 4 || cm[2] != 7 || cm[3] != 2 {
		t.Errorf("Matrix3 not column-major: %v", cm)
	}
	if got := FromMatrix3(cm); got != m {
		t.Errorf("Matrix3 round trip = %+v", got)
	}
}

func TestQuatOrder(t *testing.T) {
	q := geom.Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	mq := Quat(q)
	if mq.W != 1 || mq.X != 2 || mq.Y != 3 || mq.Z != 4 {
		t.Errorf("Quat = %+v", mq)
	}
	if got := FromQuat(mq); got != q {
		t.Errorf("Quat round trip = %+v", got)
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		in   geom.Color4D
		want color.RGBA
	}{
		{geom.Color4D{R: 1, G: 0, B: 0.5, A: 1}, color.RGBA{255, 0, 128, 255}},
		{geom.Color4D{R: 2, G: -1, B: 0, A: 0}, color.RGBA{255, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := RGBA(tt.in); got != tt.want {
			t.Errorf("RGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := TexelRGBA(geom.Texel{B: 1, G: 2, R: 3, A: 4}); got != (color.RGBA{3, 2, 1, 4}) {
		t.Errorf("TexelRGBA = %v", got)
	}
	if got := Color3(geom.Color3D{R: 0.1, G: 0.2, B: 0.3}); got.X != 0.1 || got.Z != 0.3 {
		t.Errorf("Color3 = %v", got)
	}
	if got := Color4(geom.Color4D{A: 0.5}); got.W != 0.5 {
		t.Errorf("Color4 = %v", got)
	}
}

func TestBox3(t *testing.T) {
	b := Box3(geom.AABB{Min: geom.Vector3D{X: -1}, Max: geom.Vector3D{X: 1, Y: 2, Z: 3}})
	if b.Min.X != -1 || b.Max.Z != 3 {
		t.Errorf("Box3 = %+v", b)
	}
}
