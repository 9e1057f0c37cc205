package math

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{W: 1.0}
}

/**
 * @brief Adds the provided quaternions elementwise. The result is not
 * a meaningful rotation and is only useful as an intermediate value.
 */
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{
		q.W + other.W,
		q.X + other.X,
		q.Y + other.Y,
		q.Z + other.Z,
	}
}

/**
 * @brief Subtracts other from q elementwise.
 */
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{
		q.W - other.W,
		q.X - other.X,
		q.Y - other.Y,
		q.Z - other.Z,
	}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product).
 * q.Mul(other) applies other first, then q.
 *
 * @param other The right-hand quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		(q.W * other.W) - (q.X * other.X) - (q.Y * other.Y) - (q.Z * other.Z),
		(q.W * other.X) + (q.X * other.W) + (q.Y * other.Z) - (q.Z * other.Y),
		(q.W * other.Y) + (q.Y * other.W) + (q.Z * other.X) - (q.X * other.Z),
		(q.W * other.Z) + (q.Z * other.W) + (q.X * other.Y) - (q.Y * other.X),
	}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 * For a unit quaternion this is also the inverse.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

func (q Quaternion) Dot(other Quaternion) float64 {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// NormSquared returns w²+x²+y²+z².
func (q Quaternion) NormSquared() float64 {
	return q.Dot(q)
}

func (q Quaternion) Compare(other Quaternion, tolerance float64) bool {
	return ApproxEqual(q.W, other.W, tolerance) &&
		ApproxEqual(q.X, other.X, tolerance) &&
		ApproxEqual(q.Y, other.Y, tolerance) &&
		ApproxEqual(q.Z, other.Z, tolerance)
}

/**
 * @brief Creates a quaternion from the given angle and axis.
 * The axis is expected to be unit length; a non-unit axis yields
 * a non-unit quaternion.
 *
 * @param angle The angle of rotation in radians.
 * @param ux The x component of the axis.
 * @param uy The y component of the axis.
 * @param uz The z component of the axis.
 * @return A new quaternion.
 */
func QuaternionFromRotationAxis(angle, ux, uy, uz float64) Quaternion {
	ha := angle / 2
	return Quaternion{
		kcos(ha),
		ux * ksin(ha),
		uy * ksin(ha),
		uz * ksin(ha),
	}
}

func QuaternionFromRotationX(angle float64) Quaternion {
	ha := angle / 2
	return Quaternion{kcos(ha), ksin(ha), 0, 0}
}

func QuaternionFromRotationY(angle float64) Quaternion {
	ha := angle / 2
	return Quaternion{kcos(ha), 0, ksin(ha), 0}
}

func QuaternionFromRotationZ(angle float64) Quaternion {
	ha := angle / 2
	return Quaternion{kcos(ha), 0, 0, ksin(ha)}
}

/**
 * @brief Creates a quaternion from yaw (about Y), pitch (about X) and roll (about Z).
 * Composed as RotY(yaw) * RotX(pitch) * RotZ(roll); the order fixes the convention.
 */
func QuaternionFromYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	return QuaternionFromRotationY(yaw).
		Mul(QuaternionFromRotationX(pitch)).
		Mul(QuaternionFromRotationZ(roll))
}

/**
 * @brief Converts the 3x3 rotation block of an affine matrix to a quaternion.
 * The branch is chosen on the largest diagonal element to stay stable near
 * 180 degree rotations. Ties go to the first branch in the order
 * trace, m00, m11, m22.
 *
 * The x, y and z components are negated before returning to match the
 * tracking coordinate convention; do not drop the negation.
 */
func QuaternionFromRotationMatrix(mat Mat34) Quaternion {
	a := &mat.M

	// Sums and differences of elements are formed in single precision and
	// only then widened; the square root arguments are double.
	var q Quaternion
	trace := float64(a[0][0] + a[1][1] + a[2][2])
	if trace > 0 {
		s := 0.5 / ksqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = float64(a[1][2]-a[2][1]) * s
		q.Y = float64(a[2][0]-a[0][2]) * s
		q.Z = float64(a[0][1]-a[1][0]) * s
	} else if a[0][0] > a[1][1] && a[0][0] > a[2][2] {
		s := 2.0 * ksqrt(1.0+float64(a[0][0])-float64(a[1][1])-float64(a[2][2]))
		q.W = float64(a[1][2]-a[2][1]) / s
		q.X = 0.25 * s
		q.Y = float64(a[1][0]+a[0][1]) / s
		q.Z = float64(a[2][0]+a[0][2]) / s
	} else if a[1][1] > a[2][2] {
		s := 2.0 * ksqrt(1.0+float64(a[1][1])-float64(a[0][0])-float64(a[2][2]))
		q.W = float64(a[2][0]-a[0][2]) / s
		q.X = float64(a[1][0]+a[0][1]) / s
		q.Y = 0.25 * s
		q.Z = float64(a[2][1]+a[1][2]) / s
	} else {
		s := 2.0 * ksqrt(1.0+float64(a[2][2])-float64(a[0][0])-float64(a[1][1]))
		q.W = float64(a[0][1]-a[1][0]) / s
		q.X = float64(a[2][0]+a[0][2]) / s
		q.Y = float64(a[2][1]+a[1][2]) / s
		q.Z = 0.25 * s
	}
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The matrix
 * rotates column vectors (MatMul33Vec3d(m, v) == q.RotateVector(v, false))
 * and QuaternionFromRotationMatrix recovers q up to sign.
 * The quaternion is not normalized first. The translation column is zero.
 */
func (q Quaternion) ToRotationMatrix() Mat34 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	out_matrix := Mat34{}
	o := &out_matrix.M
	o[0][0] = float32(1.0 - 2.0*(yy+zz))
	o[0][1] = float32(2.0 * (xy - wz))
	o[0][2] = float32(2.0 * (xz + wy))

	o[1][0] = float32(2.0 * (xy + wz))
	o[1][1] = float32(1.0 - 2.0*(xx+zz))
	o[1][2] = float32(2.0 * (yz - wx))

	o[2][0] = float32(2.0 * (xz - wy))
	o[2][1] = float32(2.0 * (yz + wx))
	o[2][2] = float32(1.0 - 2.0*(xx+yy))
	return out_matrix
}

/**
 * @brief Rotates vector by q using the sandwich product q * (0,v) * conj(q),
 * or conj(q) * (0,v) * q when reverse is set. The w part of the result is
 * discarded unchecked.
 */
func (q Quaternion) RotateVector(vector Vec3d, reverse bool) Vec3d {
	return q.RotateVectorWithInverse(q.Conjugate(), vector, reverse)
}

/**
 * @brief Same as RotateVector, but takes a precomputed conjugate of q so it
 * can be reused across many vectors.
 *
 * @param inv The conjugate of q.
 * @param vector The vector to rotate.
 * @param reverse Apply the inverse rotation.
 * @return The rotated vector.
 */
func (q Quaternion) RotateVectorWithInverse(inv Quaternion, vector Vec3d, reverse bool) Vec3d {
	pin := Quaternion{0.0, vector.X, vector.Y, vector.Z}
	var pout Quaternion
	if reverse {
		pout = inv.Mul(pin).Mul(q)
	} else {
		pout = q.Mul(pin).Mul(inv)
	}
	return Vec3d{pout.X, pout.Y, pout.Z}
}

// RotateArray rotates a plain triple. See RotateVector.
func (q Quaternion) RotateArray(vector [3]float64, reverse bool) Vec3d {
	return q.RotateVector(NewVec3dFromArray(vector), reverse)
}

// RotateArrayWithInverse rotates a plain triple. See RotateVectorWithInverse.
func (q Quaternion) RotateArrayWithInverse(inv Quaternion, vector [3]float64, reverse bool) Vec3d {
	return q.RotateVectorWithInverse(inv, NewVec3dFromArray(vector), reverse)
}
