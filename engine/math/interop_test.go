package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestInterop_RoundTrips(t *testing.T) {
	q := Quaternion{0.5, -0.5, 0.5, 0.5}
	assert.Equal(t, q, QuaternionFromMgl(q.Mgl()))

	v := NewVec3d(1, -2, 3)
	assert.Equal(t, v, Vec3dFromMgl(v.Mgl()))

	v4 := NewVec4(1, 2, 3, 4)
	assert.Equal(t, v4, Vec4FromMgl(v4.Mgl()))

	p := MakeProjection(-1.39, 1.24, -1.47, 1.17, 0.1, 100)
	assert.Equal(t, p, Mat44FromMgl(p.Mgl()))

	a := sampleMat34()
	assert.Equal(t, a, Mat34FromMgl(a.Mgl()))
}

func TestInterop_ColumnMajorLayout(t *testing.T) {
	a := sampleMat34()
	g := a.Mgl()
	assert.Equal(t, float32(2), g.At(0, 1))
	assert.Equal(t, float32(10), g.At(0, 3))
	assert.Equal(t, float32(1), g.At(3, 3))
	assert.Equal(t, float32(0), g.At(3, 0))

	v := NewVec3(1, 2, 3)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Mgl())

	moved := g.Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	want := MatMul33Vec3(a, v).Add(a.Translation())
	assert.Equal(t, mgl32.Vec4{want.X, want.Y, want.Z, 1}, moved)
}
