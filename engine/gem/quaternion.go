package gem

import "golang.org/x/exp/constraints"

// Quat is a quaternion w + xi + yj + zk. Rotation semantics assume unit
// magnitude, which is not enforced; normalize after composing or interpolating.
type Quat[T constraints.Float] struct {
	W, X, Y, Z T
}

type Quatf = Quat[float64]

// QuatIdentity returns the no-rotation quaternion.
func QuatIdentity[T constraints.Float]() Quat[T] { return Quat[T]{W: 1} }

// QuatFromAxisAngle builds a rotation of angle radians about axis.
// The axis is normalized; a zero axis yields the identity.
func QuatFromAxisAngle[T constraints.Float](axis Vec3[T], angle T) Quat[T] {
	return NewAxisAngle(angle, axis).Quat()
}

// QuatFromEuler composes rotations about X, then Y, then Z, matching Rz*Ry*Rx.
func QuatFromEuler[T constraints.Float](x, y, z T) Quat[T] {
	qx := QuatFromAxisAngle(Vec3[T]{1, 0, 0}, x)
	qy := QuatFromAxisAngle(Vec3[T]{0, 1, 0}, y)
	qz := QuatFromAxisAngle(Vec3[T]{0, 0, 1}, z)
	return qz.Mul(qy).Mul(qx)
}

func (q Quat[T]) Vec4() Vec4[T]   { return Vec4[T]{q.W, q.X, q.Y, q.Z} }
func (q Quat[T]) Vector() Vec3[T] { return Vec3[T]{q.X, q.Y, q.Z} }

func quatFromVec4[T constraints.Float](v Vec4[T]) Quat[T] {
	return Quat[T]{v[0], v[1], v[2], v[3]}
}

func (q Quat[T]) Add(o Quat[T]) Quat[T] { return quatFromVec4(q.Vec4().Add(o.Vec4())) }
func (q Quat[T]) Sub(o Quat[T]) Quat[T] { return quatFromVec4(q.Vec4().Sub(o.Vec4())) }
func (q Quat[T]) AddScalar(s T) Quat[T] { return quatFromVec4(q.Vec4().AddScalar(s)) }
func (q Quat[T]) SubScalar(s T) Quat[T] { return quatFromVec4(q.Vec4().SubScalar(s)) }
func (q Quat[T]) Scale(s T) Quat[T]     { return quatFromVec4(q.Vec4().Scale(s)) }
func (q Quat[T]) Neg() Quat[T]          { return quatFromVec4(q.Vec4().Neg()) }
func (q Quat[T]) Dot(o Quat[T]) T       { return q.Vec4().Dot(o.Vec4()) }
func (q Quat[T]) Magnitude() T          { return q.Vec4().Magnitude() }

// Mul is the Hamilton product q*o (non-commutative): o is applied first.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{q.W, -q.X, -q.Y, -q.Z} }

// Normalize returns the unit quaternion; the zero quaternion stays zero.
func (q Quat[T]) Normalize() Quat[T] { return quatFromVec4(q.Vec4().Normalize()) }

// Inverse returns conj(q)/|q|^2.
func (q Quat[T]) Inverse() (Quat[T], error) {
	m2 := q.Dot(q)
	if m2 == 0 {
		return Quat[T]{}, ErrDegenerateQuaternion
	}
	return q.Conjugate().Scale(1 / m2), nil
}

func (q Quat[T]) ApproxEqual(o Quat[T], eps T) bool {
	return q.Vec4().ApproxEqual(o.Vec4(), eps)
}

// Rotate applies the rotation to v. q must be unit length.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := q.Vector()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Mat4 returns the rotation matrix of the (normalized) quaternion.
func (q Quat[T]) Mat4() Mat4[T] {
	n := q.Normalize()
	w, x, y, z := n.W, n.X, n.Y, n.Z
	return Mat4[T]{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y), 0},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x), 0},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}

// AxisAngle converts to axis-angle form. Rotations too small to yield a
// stable axis return the zero AxisAngle.
func (q Quat[T]) AxisAngle() AxisAngle[T] {
	n := q.Normalize()
	w := n.W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	s := sqrt(1 - w*w)
	if s < 0.001 {
		return AxisAngle[T]{}
	}
	return AxisAngle[T]{
		Angle: 2 * acos(w),
		Axis:  Vec3[T]{n.X / s, n.Y / s, n.Z / s},
	}
}

// Yaw extracts the rotation about the vertical (Y) axis in radians.
func (q Quat[T]) Yaw() T {
	return atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.Y*q.Y+q.Z*q.Z))
}

// AxisAngle is a rotation of Angle radians about Axis.
type AxisAngle[T constraints.Float] struct {
	Angle T
	Axis  Vec3[T]
}

type AxisAnglef = AxisAngle[float64]

// NewAxisAngle normalizes the axis only; the angle is kept as given.
func NewAxisAngle[T constraints.Float](angle T, axis Vec3[T]) AxisAngle[T] {
	return AxisAngle[T]{Angle: angle, Axis: axis.Normalize()}
}

// Quat converts to a quaternion.
func (a AxisAngle[T]) Quat() Quat[T] {
	half := a.Angle / 2
	s := sin(half)
	return Quat[T]{W: cos(half), X: a.Axis[0] * s, Y: a.Axis[1] * s, Z: a.Axis[2] * s}
}
