package components

import (
	"github.com/spaghettifunk/vrmath/engine/math"
)

const (
	EyeLeft  string = "left"
	EyeRight string = "right"
)

/**
 * @brief Represents the projection of one eye of a stereo display.
 * Ideally, these are created and managed by the projection system.
 */
type EyeCamera struct {
	Name string
	/**
	 * @brief The near-plane rect, as tangents of the half angles.
	 * NOTE: Do not set this directly, use SetRect() instead
	 * so the projection matrix is recalculated when needed.
	 */
	Rect math.Rect2
	/** @brief Near clipping distance. Use SetClip() to change it. */
	Near float32
	/** @brief Far clipping distance. Use SetClip() to change it. */
	Far float32
	/** @brief Internal flag used to determine when the projection matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The projection matrix of this eye.
	 * NOTE: IMPORTANT: Do not get this directly, use GetProjection() instead
	 * so the matrix is recalculated when needed.
	 */
	ProjectionMatrix math.Mat44
}

func NewEyeCamera(name string) *EyeCamera {
	eye := &EyeCamera{Name: name}
	eye.Reset()
	return eye
}

// Reset restores a symmetric 90 degree frustum with 0.1/100 clip planes.
func (c *EyeCamera) Reset() {
	c.Rect = math.Rect2{
		TopLeft:     math.NewVec2(-1, -1),
		BottomRight: math.NewVec2(1, 1),
	}
	c.Near = 0.1
	c.Far = 100.0
	c.IsDirty = true
}

func (c *EyeCamera) GetRect() math.Rect2 {
	return c.Rect
}

func (c *EyeCamera) SetRect(rect math.Rect2) {
	c.Rect = rect
	c.IsDirty = true
}

func (c *EyeCamera) SetClip(near, far float32) {
	c.Near = near
	c.Far = far
	c.IsDirty = true
}

func (c *EyeCamera) GetProjection() math.Mat44 {
	if c.IsDirty {
		c.ProjectionMatrix = math.MakeProjectionFromRect(c.Rect, c.Near, c.Far)
		c.IsDirty = false
	}
	return c.ProjectionMatrix
}

// Project maps an eye-space homogeneous point to normalized device coordinates.
func (c *EyeCamera) Project(p math.Vec4) math.Vec3 {
	return math.Project(c.GetProjection(), p)
}

// ProjectPoint projects an eye-space position (w = 1).
func (c *EyeCamera) ProjectPoint(p math.Vec3) math.Vec3 {
	return c.Project(p.ToVec4(1.0))
}
