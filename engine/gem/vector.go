package gem

import "golang.org/x/exp/constraints"

// Vec2 is a 2-component vector.
type Vec2[T constraints.Float] [2]T

// Vec3 is a 3-component vector.
type Vec3[T constraints.Float] [3]T

// Vec4 is a 4-component vector.
type Vec4[T constraints.Float] [4]T

// Float64 aliases used throughout the scene layer.
type (
	Vec2f = Vec2[float64]
	Vec3f = Vec3[float64]
	Vec4f = Vec4[float64]
)

func V2[T constraints.Float](x, y T) Vec2[T]       { return Vec2[T]{x, y} }
func V3[T constraints.Float](x, y, z T) Vec3[T]    { return Vec3[T]{x, y, z} }
func V4[T constraints.Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// --- Vec2 ---

func (v Vec2[T]) X() T     { return v[0] }
func (v Vec2[T]) Y() T     { return v[1] }
func (v Vec2[T]) Len() int { return 2 }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

// Mul multiplies componentwise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * o[0], v[1] * o[1]} }

// Div divides componentwise.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] / o[0], v[1] / o[1]} }

func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v[0] * s, v[1] * s} }
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v[0] + s, v[1] + s} }
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return Vec2[T]{v[0] - s, v[1] - s} }
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return Vec2[T]{v[0] / s, v[1] / s} }

// SubFrom returns s - v for each component.
func (v Vec2[T]) SubFrom(s T) Vec2[T] { return Vec2[T]{s - v[0], s - v[1]} }

// DivFrom returns s / v for each component.
func (v Vec2[T]) DivFrom(s T) Vec2[T] { return Vec2[T]{s / v[0], s / v[1]} }

func (v Vec2[T]) Neg() Vec2[T]    { return Vec2[T]{-v[0], -v[1]} }
func (v Vec2[T]) Dot(o Vec2[T]) T { return v[0]*o[0] + v[1]*o[1] }
func (v Vec2[T]) Magnitude() T    { return sqrt(v.Dot(v)) }

// Normalize returns the unit vector. The zero vector normalizes to itself.
func (v Vec2[T]) Normalize() Vec2[T] {
	n, _ := v.TryNormalize()
	return n
}

// TryNormalize is Normalize reporting ErrDegenerateVector for the zero vector.
func (v Vec2[T]) TryNormalize() (Vec2[T], error) {
	m := v.Magnitude()
	if m == 0 {
		return v, ErrDegenerateVector
	}
	return v.DivScalar(m), nil
}

func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] { return v.Add(o.Sub(v).Scale(t)) }

func (v Vec2[T]) ApproxEqual(o Vec2[T], eps T) bool {
	return ApproxEqual(v[0], o[0], eps) && ApproxEqual(v[1], o[1], eps)
}

// Vec3 extends v with z.
func (v Vec2[T]) Vec3(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// --- Vec3 ---

func (v Vec3[T]) X() T     { return v[0] }
func (v Vec3[T]) Y() T     { return v[1] }
func (v Vec3[T]) Z() T     { return v[2] }
func (v Vec3[T]) Len() int { return 3 }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Mul multiplies componentwise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

// Div divides componentwise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2]} }

func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v[0] + s, v[1] + s, v[2] + s} }
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return Vec3[T]{v[0] - s, v[1] - s, v[2] - s} }
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }
func (v Vec3[T]) SubFrom(s T) Vec3[T]   { return Vec3[T]{s - v[0], s - v[1], s - v[2]} }
func (v Vec3[T]) DivFrom(s T) Vec3[T]   { return Vec3[T]{s / v[0], s / v[1], s / v[2]} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v[0], -v[1], -v[2]} }
func (v Vec3[T]) Dot(o Vec3[T]) T       { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }
func (v Vec3[T]) Magnitude() T          { return sqrt(v.Dot(v)) }

// Cross is only defined for 3-vectors.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Normalize returns the unit vector. The zero vector normalizes to itself.
func (v Vec3[T]) Normalize() Vec3[T] {
	n, _ := v.TryNormalize()
	return n
}

// TryNormalize is Normalize reporting ErrDegenerateVector for the zero vector.
func (v Vec3[T]) TryNormalize() (Vec3[T], error) {
	m := v.Magnitude()
	if m == 0 {
		return v, ErrDegenerateVector
	}
	return v.DivScalar(m), nil
}

func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] { return v.Add(o.Sub(v).Scale(t)) }

func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool {
	return ApproxEqual(v[0], o[0], eps) && ApproxEqual(v[1], o[1], eps) && ApproxEqual(v[2], o[2], eps)
}

// Vec4 extends v with w (1 for points, 0 for directions).
func (v Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// XZ drops the vertical component.
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// --- Vec4 ---

func (v Vec4[T]) X() T     { return v[0] }
func (v Vec4[T]) Y() T     { return v[1] }
func (v Vec4[T]) Z() T     { return v[2] }
func (v Vec4[T]) W() T     { return v[3] }
func (v Vec4[T]) Len() int { return 4 }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Mul multiplies componentwise.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// Div divides componentwise.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

func (v Vec4[T]) Scale(s T) Vec4[T]     { return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }
func (v Vec4[T]) AddScalar(s T) Vec4[T] { return Vec4[T]{v[0] + s, v[1] + s, v[2] + s, v[3] + s} }
func (v Vec4[T]) SubScalar(s T) Vec4[T] { return Vec4[T]{v[0] - s, v[1] - s, v[2] - s, v[3] - s} }
func (v Vec4[T]) DivScalar(s T) Vec4[T] { return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s} }
func (v Vec4[T]) SubFrom(s T) Vec4[T]   { return Vec4[T]{s - v[0], s - v[1], s - v[2], s - v[3]} }
func (v Vec4[T]) DivFrom(s T) Vec4[T]   { return Vec4[T]{s / v[0], s / v[1], s / v[2], s / v[3]} }
func (v Vec4[T]) Neg() Vec4[T]          { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }
func (v Vec4[T]) Dot(o Vec4[T]) T       { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3] }
func (v Vec4[T]) Magnitude() T          { return sqrt(v.Dot(v)) }

// Normalize returns the unit vector. The zero vector normalizes to itself.
func (v Vec4[T]) Normalize() Vec4[T] {
	n, _ := v.TryNormalize()
	return n
}

// TryNormalize is Normalize reporting ErrDegenerateVector for the zero vector.
func (v Vec4[T]) TryNormalize() (Vec4[T], error) {
	m := v.Magnitude()
	if m == 0 {
		return v, ErrDegenerateVector
	}
	return v.DivScalar(m), nil
}

func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] { return v.Add(o.Sub(v).Scale(t)) }

func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool {
	for i := range v {
		if !ApproxEqual(v[i], o[i], eps) {
			return false
		}
	}
	return true
}

// Vec3 drops w.
func (v Vec4[T]) Vec3() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }
