// Package gem is the engine's linear algebra: fixed-size vectors, a row-major
// 4x4 matrix, quaternions, axis-angle rotations and polar coordinates, all
// generic over the float element type.
package gem

import (
	"errors"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

var (
	// ErrDegenerateMatrix is returned when inverting a matrix whose determinant is zero.
	ErrDegenerateMatrix = errors.New("gem: matrix is not invertible")
	// ErrDegenerateQuaternion is returned when inverting a zero quaternion.
	ErrDegenerateQuaternion = errors.New("gem: quaternion has zero magnitude")
	// ErrDegenerateVector is returned when normalizing a zero vector.
	ErrDegenerateVector = errors.New("gem: vector has zero magnitude")
)

// Epsilon is the default tolerance used by ApproxEqual helpers.
const Epsilon = 1e-5

// float32 instantiations use math32, everything else goes through float64.

func sqrt[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func cos[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func tan[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

func acos[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

func atan2[T constraints.Float](y, x T) T {
	if v, ok := any(y).(float32); ok {
		return T(math32.Atan2(v, any(x).(float32)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

func mod[T constraints.Float](x, y T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Mod(v, any(y).(float32)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Radians converts degrees to radians.
func Radians[T constraints.Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// Degrees converts radians to degrees.
func Degrees[T constraints.Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// Clamp limits x to [lo, hi].
func Clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	return abs(a-b) <= eps
}

// Sqrt, Sin, Cos and Atan2 expose the dispatching kernels to other engine packages.
func Sqrt[T constraints.Float](x T) T     { return sqrt(x) }
func Sin[T constraints.Float](x T) T      { return sin(x) }
func Cos[T constraints.Float](x T) T      { return cos(x) }
func Atan2[T constraints.Float](y, x T) T { return atan2(y, x) }
