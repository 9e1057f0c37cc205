package math

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewPose(t *testing.T) {
	p := NewPose()
	assert.Equal(t, NewQuatIdentity(), p.Rotation)
	assert.Equal(t, Vec3d{}, p.Position)
	assert.Equal(t, NewMat34Identity(), p.GetLocal())
	assert.False(t, p.IsDirty)
}

func TestPose_TransformPoint(t *testing.T) {
	p := PoseFromPositionRotation(NewVec3d(1, 2, 3), QuaternionFromRotationZ(K_HALF_PI))
	got := p.TransformPoint(NewVec3d(1, 0, 0))
	assert.True(t, got.Compare(NewVec3d(1, 3, 3), 1e-12), "%v", got)

	back := p.InverseTransformPoint(got)
	assert.True(t, back.Compare(NewVec3d(1, 0, 0), 1e-12), "%v", back)
}

func TestPose_Inverse(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for n := 0; n < 100; n++ {
		p := PoseFromPositionRotation(randomVec3d(r), randomUnitQuaternion(r))
		inv := p.Inverse()
		v := randomVec3d(r)

		require.True(t, inv.TransformPoint(p.TransformPoint(v)).Compare(v, 1e-9))
		require.True(t, p.InverseTransformPoint(v).Compare(inv.TransformPoint(v), 1e-9))
	}
}

func TestPose_GetLocalIsCached(t *testing.T) {
	p := PoseFromRotation(QuaternionFromRotationX(0.5))
	require.True(t, p.IsDirty)

	l := p.GetLocal()
	assert.False(t, p.IsDirty)
	assert.Equal(t, QuaternionFromRotationX(0.5).ToRotationMatrix(), l)

	p.Translate(NewVec3d(1, 2, 3))
	assert.True(t, p.IsDirty)
	assert.Equal(t, NewVec3(1, 2, 3), p.GetLocal().Translation())

	p.Rotate(QuaternionFromRotationX(0.5))
	assert.True(t, sameRotation(QuaternionFromRotationMatrix(p.GetLocal()), QuaternionFromRotationX(1.0), 1e-6))
}

func TestPose_GetLocalMatchesTransformPoint(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for n := 0; n < 50; n++ {
		p := PoseFromPositionRotation(randomVec3d(r), randomUnitQuaternion(r))
		v := randomVec3d(r)
		l := p.GetLocal()
		got := MatMul33Vec3d(l, v).Add(l.Translation().ToVec3d())
		require.True(t, got.Compare(p.TransformPoint(v), 1e-4), spew.Sdump(l))
	}
}

func TestPose_GetInverseLocal(t *testing.T) {
	p := PoseFromPositionRotation(NewVec3d(-3, 0.5, 2), QuaternionFromYawPitchRoll(0.3, -0.4, 1.2))
	want := p.Inverse().GetLocal()
	assert.True(t, p.GetInverseLocal().Compare(want, 1e-5), spew.Sdump(p.GetInverseLocal(), want))
}

func TestPose_GetWorld(t *testing.T) {
	parent := PoseFromPositionRotation(NewVec3d(0, 1.6, 0), QuaternionFromRotationY(K_HALF_PI))
	child := PoseFromPositionRotation(NewVec3d(0.032, 0, 0), QuaternionFromRotationX(0.2))
	child.Parent = parent

	v := NewVec3d(0.1, -0.2, -1)
	world := child.GetWorld()
	got := MatMul33Vec3d(world, v).Add(world.Translation().ToVec3d())
	want := parent.TransformPoint(child.TransformPoint(v))
	assert.True(t, got.Compare(want, 1e-5), "got %v want %v", got, want)

	var nilPose *Pose
	assert.Equal(t, NewMat34Identity(), nilPose.GetWorld())
	assert.Equal(t, parent.GetLocal(), parent.GetWorld())
}

func TestPoseFromMat34(t *testing.T) {
	q := QuaternionFromYawPitchRoll(1.1, 0.2, -0.3)
	mat := q.ToRotationMatrix().WithTranslation(NewVec3(4, 5, 6))
	p := PoseFromMat34(mat)
	assert.True(t, sameRotation(p.Rotation, q, 1e-6), "%v vs %v", p.Rotation, q)
	assert.Equal(t, NewVec3d(4, 5, 6), p.Position)
	assert.True(t, p.GetLocal().Compare(mat, 1e-5))
}
