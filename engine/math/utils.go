package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	Pi float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	TwoPi float32 = 2.0 * Pi
	/** @brief An approximate representation of PI divided by 2. */
	HalfPi float32 = 0.5 * Pi
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2RadMultiplier float32 = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2DegMultiplier float32 = 180.0 / Pi
	/** @brief Smallest positive number where 1.0 + FloatEpsilon != 0 */
	FloatEpsilon float32 = 1.192092896e-07
)

func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func kacos(x float32) float32 {
	return float32(m.Acos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func DegToRad(degrees float32) float32 {
	return degrees * Deg2RadMultiplier
}

func RadToDeg(radians float32) float32 {
	return radians * Rad2DegMultiplier
}
