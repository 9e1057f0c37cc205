package math

import (
	m "math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeProjection_SymmetricUnitFrustum(t *testing.T) {
	p := MakeProjection(-1, 1, -1, 1, 0.1, 100)

	assert.Equal(t, float32(1), p.M[0][0])
	assert.Equal(t, float32(1), p.M[1][1])
	assert.Equal(t, float32(0), p.M[0][2])
	assert.Equal(t, float32(0), p.M[1][2])
	assert.Equal(t, float32(-1), p.M[3][2])
	assert.Equal(t, float32(0), p.M[3][3])

	near, far := float32(0.1), float32(100)
	idz := 1 / (near - far)
	assert.Equal(t, (far+near)*idz, p.M[2][2])
	assert.Equal(t, 2*far*near*idz, p.M[2][3])

	// (100.1 / -99.9) and (20 / -99.9)
	assert.InDelta(t, -1.002002002, p.M[2][2], 1e-6)
	assert.InDelta(t, -0.2002002002, p.M[2][3], 1e-6)
}

func TestMakeProjection_Layout(t *testing.T) {
	left, right, top, bottom := float32(-1.25), float32(0.75), float32(-1.5), float32(0.5)
	near, far := float32(0.05), float32(50)
	p := MakeProjection(left, right, top, bottom, near, far)

	idx := 1 / (right - left)
	idy := 1 / (bottom - top)
	idz := 1 / (near - far)
	want := Mat44{M: [4][4]float32{
		{2 * idx, 0, (right + left) * idx, 0},
		{0, 2 * idy, (bottom + top) * idy, 0},
		{0, 0, (far + near) * idz, 2 * far * near * idz},
		{0, 0, -1, 0},
	}}
	assert.Equal(t, want, p, spew.Sdump(p))
	assert.Equal(t, float32(1), p.M[0][0])
	assert.Equal(t, float32(-0.25), p.M[0][2])
	assert.Equal(t, float32(-0.5), p.M[1][2])
}

func TestMakeProjection_MatchesFrustum(t *testing.T) {
	tests := []struct {
		name                     string
		left, right, top, bottom float32
		near, far                float32
	}{
		{"symmetric", -1, 1, -1, 1, 0.1, 100},
		{"left eye", -1.39, 1.24, -1.47, 1.17, 0.1, 1000},
		{"right eye", -1.24, 1.39, -1.47, 1.17, 0.05, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeProjection(tt.left, tt.right, tt.top, tt.bottom, tt.near, tt.far)
			// tangents scaled by the near distance give the near-plane extents
			want := Mat44FromMgl(mgl32.Frustum(
				tt.left*tt.near, tt.right*tt.near,
				tt.top*tt.near, tt.bottom*tt.near,
				tt.near, tt.far,
			))
			assert.True(t, got.Compare(want, 1e-4), "got\n%swant\n%s", spew.Sdump(got), spew.Sdump(want))
		})
	}
}

func TestMakeProjectionFromRect(t *testing.T) {
	eye := Rect2{
		TopLeft:     NewVec2(-1.39, -1.47),
		BottomRight: NewVec2(1.24, 1.17),
	}
	assert.Equal(t, MakeProjection(-1.39, 1.24, -1.47, 1.17, 0.1, 100), MakeProjectionFromRect(eye, 0.1, 100))
}

func TestMakeProjectionInto_OverwritesEveryElement(t *testing.T) {
	var out Mat44
	for i := range out.M {
		for j := range out.M[i] {
			out.M[i][j] = 42
		}
	}
	MakeProjectionInto(&out, -1, 1, -1, 1, 0.1, 100)
	assert.Equal(t, MakeProjection(-1, 1, -1, 1, 0.1, 100), out)
}

func TestProject(t *testing.T) {
	p := MakeProjection(-1, 1, -1, 1, 0.1, 100)

	tests := []struct {
		name  string
		point Vec4
		want  Vec3
		delta float64
	}{
		{"near plane center", NewVec4(0, 0, -0.1, 1), NewVec3(0, 0, -1), 1e-5},
		{"far plane center", NewVec4(0, 0, -100, 1), NewVec3(0, 0, 1), 1e-4},
		{"frustum corner on near plane", NewVec4(0.1, 0.1, -0.1, 1), NewVec3(1, 1, -1), 1e-5},
		{"frustum edge at depth", NewVec4(-2, 0, -2, 1), NewVec3(-1, 0, 0.9019019), 1e-5},
		{"homogeneous scale is irrelevant", NewVec4(0, 0, -0.2, 2), NewVec3(0, 0, -1), 1e-5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(p, tt.point)
			assert.InDelta(t, tt.want.X, got.X, tt.delta, "x of %v", got)
			assert.InDelta(t, tt.want.Y, got.Y, tt.delta, "y of %v", got)
			assert.InDelta(t, tt.want.Z, got.Z, tt.delta, "z of %v", got)
		})
	}
}

func TestProject_ZeroClipWIsNotAnError(t *testing.T) {
	p := MakeProjection(-1, 1, -1, 1, 0.1, 100)
	var got Vec3
	require.NotPanics(t, func() {
		got = Project(p, NewVec4(1, 0, 0, 0))
	})
	assert.True(t, m.IsInf(float64(got.X), 1), "x = %v", got.X)
	assert.True(t, m.IsNaN(float64(got.Y)), "y = %v", got.Y)
}

func TestProject_MatchesMathgl(t *testing.T) {
	p := MakeProjection(-1.39, 1.24, -1.47, 1.17, 0.1, 100)
	points := []Vec4{
		NewVec4(0.3, -0.2, -1, 1),
		NewVec4(-4, 2, -10, 1),
		NewVec4(0, 0, -99, 1),
	}
	for _, pt := range points {
		clip := Vec4FromMgl(p.Mgl().Mul4x1(pt.Mgl()))
		want := clip.ToVec3().DivScalar(clip.W)
		got := Project(p, pt)
		assert.True(t, got.Compare(want, 1e-5), "point %v: got %v want %v", pt, got, want)
	}
}
