package math

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// ------------------------------------------
// Vector 3 (single precision)
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Widens the vector to double precision.
 */
func (v Vec3) ToVec3d() Vec3d {
	return Vec3d{float64(v.X), float64(v.Y), float64(v.Z)}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 * A zero scalar yields infinite or NaN components.
 */
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Length() float32 {
	return ksqrtf(v.Dot(v))
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabsf(v.X-other.X) > tolerance {
		return false
	}
	if kabsf(v.Y-other.Y) > tolerance {
		return false
	}
	if kabsf(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3 (double precision)
// ------------------------------------------

/**
 * @brief Creates and returns a new double-precision 3-element vector.
 */
func NewVec3d(x, y, z float64) Vec3d {
	return Vec3d{x, y, z}
}

/**
 * @brief Creates a double-precision vector from a plain triple.
 */
func NewVec3dFromArray(a [3]float64) Vec3d {
	return Vec3d{a[0], a[1], a[2]}
}

/**
 * @brief Narrows the vector to single precision.
 */
func (v Vec3d) ToVec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec3d) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3d) Add(other Vec3d) Vec3d {
	return Vec3d{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Adds a plain triple to v and returns a copy of the result.
 */
func (v Vec3d) AddArray(other [3]float64) Vec3d {
	return Vec3d{
		v.X + other[0],
		v.Y + other[1],
		v.Z + other[2]}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3d) Sub(other Vec3d) Vec3d {
	return Vec3d{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Subtracts a plain triple from v and returns a copy of the result.
 */
func (v Vec3d) SubArray(other [3]float64) Vec3d {
	return Vec3d{
		v.X - other[0],
		v.Y - other[1],
		v.Z - other[2]}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3d) MulScalar(scalar float64) Vec3d {
	return Vec3d{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 * Dividing by zero is not guarded: the components become +Inf, -Inf or NaN.
 */
func (v Vec3d) DivScalar(scalar float64) Vec3d {
	return Vec3d{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vec3d) Dot(other Vec3d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3d) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec3d) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3d) Compare(other Vec3d, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components,
 * essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabsf(v.X-other.X) > tolerance {
		return false
	}
	if kabsf(v.Y-other.Y) > tolerance {
		return false
	}
	if kabsf(v.Z-other.Z) > tolerance {
		return false
	}
	if kabsf(v.W-other.W) > tolerance {
		return false
	}
	return true
}
