package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a single-precision 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec3d represents a double-precision 3D vector
type Vec3d struct {
	X, Y, Z float64
}

// Vec4 represents a 4D homogeneous coordinate
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A quaternion w + xi + yj + zk, used to represent rotational orientation.
 * Rotation call sites assume unit norm; nothing in this package enforces it.
 */
type Quaternion struct {
	W, X, Y, Z float64
}

/**
 * @brief A 3x4 affine matrix. Columns 0..2 hold the rotation/scale block,
 * column 3 holds the translation.
 */
type Mat34 struct {
	/** @brief The matrix elements, row-major. */
	M [3][4]float32
}

/** @brief A 4x4 matrix, used for projections and generic 4-vector transforms. */
type Mat44 struct {
	/** @brief The matrix elements, row-major. */
	M [4][4]float32
}

/**
 * @brief Describes a frustum slice on the near plane by its
 * top-left and bottom-right corners.
 */
type Rect2 struct {
	TopLeft     Vec2
	BottomRight Vec2
}

/**
 * @brief Represents the pose of a tracked object.
 * Poses can have a parent whose own pose is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the functions in pose.go
 * to ensure proper matrix generation.
 */
type Pose struct {
	/** @brief The position in tracking space. */
	Position Vec3d
	/** @brief The orientation in tracking space. */
	Rotation Quaternion
	/**
	 * @brief Indicates if the position or rotation have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local affine matrix, updated whenever
	 * the position or rotation have changed.
	 */
	Local Mat34
	/** @brief A pointer to a parent pose if one is assigned. Can also be nil. */
	Parent *Pose
}
