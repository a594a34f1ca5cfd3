package gem

import "golang.org/x/exp/constraints"

// Lerp interpolates between two scalars.
func Lerp[T constraints.Float](a, b, t T) T { return a + (b-a)*t }

// LerpQuat is a normalized linear interpolation between two rotations.
func LerpQuat[T constraints.Float](a, b Quat[T], t T) Quat[T] {
	return a.Scale(1 - t).Add(b.Scale(t)).Normalize()
}

// Slerp interpolates along the shorter great arc between a and b.
// t == 0 and t == 1 return a and b unchanged.
func Slerp[T constraints.Float](a, b Quat[T], t T) Quat[T] {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	d := a.Dot(b)
	if d < 0 {
		b = b.Neg()
		d = -d
	}
	if d > 0.9995 {
		return LerpQuat(a, b, t)
	}

	theta0 := acos(d)
	theta := theta0 * t
	sin0 := sin(theta0)
	s0 := cos(theta) - d*sin(theta)/sin0
	s1 := sin(theta) / sin0
	return a.Scale(s0).Add(b.Scale(s1)).Normalize()
}
