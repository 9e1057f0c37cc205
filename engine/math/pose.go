package math

func NewPose() *Pose {
	p := &Pose{}
	p.SetPositionRotation(Vec3d{}, NewQuatIdentity())
	p.Local = NewMat34Identity()
	p.Parent = nil
	return p
}

func PoseFromPosition(position Vec3d) *Pose {
	p := &Pose{}
	p.SetPositionRotation(position, NewQuatIdentity())
	p.Local = NewMat34Identity()
	return p
}

func PoseFromRotation(rotation Quaternion) *Pose {
	p := &Pose{}
	p.SetPositionRotation(Vec3d{}, rotation)
	p.Local = NewMat34Identity()
	return p
}

func PoseFromPositionRotation(position Vec3d, rotation Quaternion) *Pose {
	p := &Pose{}
	p.SetPositionRotation(position, rotation)
	p.Local = NewMat34Identity()
	return p
}

// PoseFromMat34 recovers a pose from an affine matrix. The rotation block
// is expected to be orthonormal.
func PoseFromMat34(mat Mat34) *Pose {
	return PoseFromPositionRotation(mat.Translation().ToVec3d(), QuaternionFromRotationMatrix(mat))
}

func (p *Pose) SetPosition(position Vec3d) {
	p.Position = position
	p.IsDirty = true
}

func (p *Pose) Translate(translation Vec3d) {
	p.Position = p.Position.Add(translation)
	p.IsDirty = true
}

func (p *Pose) SetRotation(rotation Quaternion) {
	p.Rotation = rotation
	p.IsDirty = true
}

// Rotate applies rotation in the pose's local frame.
func (p *Pose) Rotate(rotation Quaternion) {
	p.Rotation = p.Rotation.Mul(rotation)
	p.IsDirty = true
}

func (p *Pose) SetPositionRotation(position Vec3d, rotation Quaternion) {
	p.Position = position
	p.Rotation = rotation
	p.IsDirty = true
}

// TransformPoint maps a point from the pose's local frame into its parent frame.
func (p *Pose) TransformPoint(point Vec3d) Vec3d {
	return p.Rotation.RotateVector(point, false).Add(p.Position)
}

// InverseTransformPoint maps a point from the parent frame into the pose's local frame.
func (p *Pose) InverseTransformPoint(point Vec3d) Vec3d {
	return p.Rotation.RotateVector(point.Sub(p.Position), true)
}

// Inverse returns the pose that undoes p. The parent is not carried over.
func (p *Pose) Inverse() *Pose {
	inv := p.Rotation.Conjugate()
	position := p.Rotation.RotateVectorWithInverse(inv, p.Position, true).MulScalar(-1)
	return PoseFromPositionRotation(position, inv)
}

func (p *Pose) GetLocal() Mat34 {
	if p != nil {
		if p.IsDirty {
			p.Local = p.Rotation.ToRotationMatrix().WithTranslation(p.Position.ToVec3())
			p.IsDirty = false
		}
		return p.Local
	}
	return NewMat34Identity()
}

// GetInverseLocal returns the inverse of the local matrix, assuming an
// orthonormal rotation block.
func (p *Pose) GetInverseLocal() Mat34 {
	l := p.GetLocal()
	rt := TransposeMul33(l)
	t := MatMul33Vec3(rt, l.Translation()).MulScalar(-1)
	return rt.WithTranslation(t)
}

func (p *Pose) GetWorld() Mat34 {
	if p != nil {
		l := p.GetLocal()
		if p.Parent != nil {
			return composeAffine(p.Parent.GetWorld(), l)
		}
		return l
	}
	return NewMat34Identity()
}

// composeAffine returns the transform applying b first, then a.
func composeAffine(a, b Mat34) Mat34 {
	t := MatMul33Vec3(a, b.Translation()).Add(a.Translation())
	return MatMul33(a, b).WithTranslation(t)
}
