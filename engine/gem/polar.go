package gem

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Polar is a 2D point as radius and angle (radians).
type Polar[T constraints.Float] struct {
	R, Theta T
}

type Polarf = Polar[float64]

// Normalize wraps Theta into [0, 2π).
func (p Polar[T]) Normalize() Polar[T] {
	twoPi := T(2 * math.Pi)
	a := mod(p.Theta, twoPi)
	if a < 0 {
		a += twoPi
	}
	return Polar[T]{R: p.R, Theta: a}
}

// Cartesian returns (r·cosθ, r·sinθ).
func (p Polar[T]) Cartesian() Vec2[T] {
	return Vec2[T]{p.R * cos(p.Theta), p.R * sin(p.Theta)}
}

// PolarFromCartesian converts a 2D point, with the angle in [0, 2π).
func PolarFromCartesian[T constraints.Float](v Vec2[T]) Polar[T] {
	return Polar[T]{R: v.Magnitude(), Theta: atan2(v[1], v[0])}.Normalize()
}

// PolarFromXZ converts the horizontal (x, z) projection of a 3D point.
func PolarFromXZ[T constraints.Float](v Vec3[T]) Polar[T] {
	return PolarFromCartesian(v.XZ())
}

// WrapAngle maps a onto (-π, π]. Infinite or NaN input gives NaN.
func WrapAngle[T constraints.Float](a T) T {
	pi := T(math.Pi)
	a = mod(a, 2*pi)
	if a > pi {
		a -= 2 * pi
	} else if a <= -pi {
		a += 2 * pi
	}
	return a
}
