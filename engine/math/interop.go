package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from mathgl, which stores matrices column-major.

func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func QuaternionFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

func (v Vec3d) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3dFromMgl(v mgl64.Vec3) Vec3d {
	return Vec3d{v[0], v[1], v[2]}
}

func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Mgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec4FromMgl(v mgl32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}

func (mt Mat44) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = mt.M[row][col]
		}
	}
	return out
}

func Mat44FromMgl(m mgl32.Mat4) Mat44 {
	var out Mat44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.M[row][col] = m[col*4+row]
		}
	}
	return out
}

// Mgl returns the affine matrix as a 4x4 with (0, 0, 0, 1) as the last row.
func (mt Mat34) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = mt.M[row][col]
		}
	}
	out[15] = 1
	return out
}

// Mat34FromMgl drops the last row of m.
func Mat34FromMgl(m mgl32.Mat4) Mat34 {
	var out Mat34
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			out.M[row][col] = m[col*4+row]
		}
	}
	return out
}
