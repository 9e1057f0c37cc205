package math

/**
 * @brief Creates and returns an identity affine matrix with no translation.
 */
func NewMat34Identity() Mat34 {
	out_matrix := Mat34{}
	out_matrix.M[0][0] = 1.0
	out_matrix.M[1][1] = 1.0
	out_matrix.M[2][2] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns an identity 4x4 matrix.
 */
func NewMat44Identity() Mat44 {
	out_matrix := Mat44{}
	out_matrix.M[0][0] = 1.0
	out_matrix.M[1][1] = 1.0
	out_matrix.M[2][2] = 1.0
	out_matrix.M[3][3] = 1.0
	return out_matrix
}

// Translation returns column 3 of the matrix.
func (mt Mat34) Translation() Vec3 {
	return Vec3{mt.M[0][3], mt.M[1][3], mt.M[2][3]}
}

// WithTranslation returns a copy of the matrix with column 3 replaced.
func (mt Mat34) WithTranslation(t Vec3) Mat34 {
	mt.M[0][3] = t.X
	mt.M[1][3] = t.Y
	mt.M[2][3] = t.Z
	return mt
}

/**
 * @brief Multiplies the 3x3 rotation blocks of a and b.
 * The translation columns are ignored and the result has none; callers
 * composing transforms must handle translation themselves.
 */
func MatMul33(a, b Mat34) Mat34 {
	result := Mat34{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result.M[i][j] = 0.0
			for k := 0; k < 3; k++ {
				result.M[i][j] += a.M[i][k] * b.M[k][j]
			}
		}
	}
	return result
}

/**
 * @brief Multiplies the 3x3 block of a by the column vector b.
 */
func MatMul33Vec3(a Mat34, b Vec3) Vec3 {
	v := [3]float32{b.X, b.Y, b.Z}
	var result [3]float32
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			result[i] += a.M[i][k] * v[k]
		}
	}
	return Vec3{result[0], result[1], result[2]}
}

/**
 * @brief Double-precision variant of MatMul33Vec3. Matrix elements are
 * widened before multiplying.
 */
func MatMul33Vec3d(a Mat34, b Vec3d) Vec3d {
	v := [3]float64{b.X, b.Y, b.Z}
	var result [3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			result[i] += float64(a.M[i][k]) * v[k]
		}
	}
	return Vec3d{result[0], result[1], result[2]}
}

/**
 * @brief Multiplies the row vector a by the 3x3 block of b,
 * i.e. result[i] = sum_k a[k] * b[k][i].
 */
func Vec3MatMul33(a Vec3, b Mat34) Vec3 {
	v := [3]float32{a.X, a.Y, a.Z}
	var result [3]float32
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			result[i] += v[k] * b.M[k][i]
		}
	}
	return Vec3{result[0], result[1], result[2]}
}

// Vec3dMatMul33 is the double-precision variant of Vec3MatMul33.
func Vec3dMatMul33(a Vec3d, b Mat34) Vec3d {
	v := [3]float64{a.X, a.Y, a.Z}
	var result [3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			result[i] += v[k] * float64(b.M[k][i])
		}
	}
	return Vec3d{result[0], result[1], result[2]}
}

/**
 * @brief Returns a copy of a with the 3x3 block transposed and the
 * translation column copied unchanged. For a pure rotation this is the
 * inverse rotation.
 */
func TransposeMul33(a Mat34) Mat34 {
	result := Mat34{}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			result.M[i][k] = a.M[k][i]
		}
	}
	result.M[0][3] = a.M[0][3]
	result.M[1][3] = a.M[1][3]
	result.M[2][3] = a.M[2][3]
	return result
}

/**
 * @brief Multiplies the 4-vector a against the rows of b:
 * result[i] = sum_k a[k] * b[i][k].
 * Project relies on this indexing.
 */
func MatMul44(a Vec4, b Mat44) Vec4 {
	v := [4]float32{a.X, a.Y, a.Z, a.W}
	var result [4]float32
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			result[i] += v[k] * b.M[i][k]
		}
	}
	return Vec4{result[0], result[1], result[2], result[3]}
}

/**
 * @brief Compares all elements of mt and other and ensures the difference
 * is less than tolerance.
 */
func (mt Mat34) Compare(other Mat34, tolerance float32) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if kabsf(mt.M[i][j]-other.M[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

func (mt Mat44) Compare(other Mat44, tolerance float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if kabsf(mt.M[i][j]-other.M[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}
