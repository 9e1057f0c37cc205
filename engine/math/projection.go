package math

/**
 * @brief Creates and returns an asymmetric off-axis perspective projection
 * for a single eye. The bounds are tangents of the half angles on the
 * near plane.
 *
 * @param left The left bound.
 * @param right The right bound.
 * @param top The top bound.
 * @param bottom The bottom bound.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new projection matrix.
 */
func MakeProjection(left, right, top, bottom, near, far float32) Mat44 {
	out_matrix := Mat44{}
	MakeProjectionInto(&out_matrix, left, right, top, bottom, near, far)
	return out_matrix
}

/**
 * @brief Writes the projection built by MakeProjection into out.
 * Every element of out is overwritten.
 */
func MakeProjectionInto(out *Mat44, left, right, top, bottom, near, far float32) {
	idx := 1.0 / (right - left)
	idy := 1.0 / (bottom - top)
	idz := 1.0 / (near - far)
	sx := right + left
	sy := bottom + top

	p := &out.M
	p[0][0] = 2.0 * idx
	p[0][1] = 0.0
	p[0][2] = sx * idx
	p[0][3] = 0.0

	p[1][0] = 0.0
	p[1][1] = 2.0 * idy
	p[1][2] = sy * idy
	p[1][3] = 0.0

	// Row 2 signs are fixed by the depth convention of the compositor.
	p[2][0] = 0.0
	p[2][1] = 0.0
	p[2][2] = (far + near) * idz
	p[2][3] = 2.0 * far * near * idz

	p[3][0] = 0.0
	p[3][1] = 0.0
	p[3][2] = -1.0
	p[3][3] = 0.0
}

/**
 * @brief Creates a projection from the corners of an eye rect.
 */
func MakeProjectionFromRect(eye Rect2, near, far float32) Mat44 {
	return MakeProjection(
		eye.TopLeft.X, eye.BottomRight.X,
		eye.TopLeft.Y, eye.BottomRight.Y,
		near, far,
	)
}

/**
 * @brief Projects the homogeneous point p through proj and performs the
 * perspective divide, returning normalized device coordinates.
 * A clip w of zero yields infinite or NaN components.
 */
func Project(proj Mat44, p Vec4) Vec3 {
	ndcP := MatMul44(p, proj)
	pd := 1.0 / ndcP.W
	return Vec3{
		ndcP.X * pd,
		ndcP.Y * pd,
		ndcP.Z * pd,
	}
}
