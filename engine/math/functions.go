package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float64 = 0.25 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float64 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float64 = 0.70710678118654752440
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Smallest positive number where 1.0 + DOUBLE_EPSILON != 0 */
	K_DOUBLE_EPSILON float64 = 2.2204460492503131e-16
)

/**
 * Note that these are here in order to prevent having to import the
 * entire standard math package everywhere under an alias.
 */
func ksin(x float64) float64 {
	return m.Sin(x)
}

func kcos(x float64) float64 {
	return m.Cos(x)
}

func ksqrt(x float64) float64 {
	return m.Sqrt(x)
}

func ksqrtf(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float64) float64 {
	return m.Abs(x)
}

func kabsf(x float32) float32 {
	return float32(m.Abs(float64(x)))
}
