package gem

import "golang.org/x/exp/constraints"

// Mat4 is a row-major 4x4 matrix: m[row][col]. Points are column vectors,
// so a transform applied first appears rightmost in a product.
type Mat4[T constraints.Float] [4][4]T

type Mat4f = Mat4[float64]

// Identity returns the 4x4 identity matrix
func Identity[T constraints.Float]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a translation matrix
func Translation[T constraints.Float](v Vec3[T]) Mat4[T] {
	m := Identity[T]()
	m[0][3], m[1][3], m[2][3] = v[0], v[1], v[2]
	return m
}

// Scaling returns a non-uniform scale matrix
func Scaling[T constraints.Float](v Vec3[T]) Mat4[T] {
	m := Identity[T]()
	m[0][0], m[1][1], m[2][2] = v[0], v[1], v[2]
	return m
}

// RotationX rotates about the X axis by rad radians
func RotationX[T constraints.Float](rad T) Mat4[T] {
	c, s := cos(rad), sin(rad)
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY rotates about the Y axis by rad radians
func RotationY[T constraints.Float](rad T) Mat4[T] {
	c, s := cos(rad), sin(rad)
	return Mat4[T]{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates about the Z axis by rad radians
func RotationZ[T constraints.Float](rad T) Mat4[T] {
	c, s := cos(rad), sin(rad)
	return Mat4[T]{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// LookAt builds a right-handed view matrix. When the view direction is
// (nearly) parallel to up, world Z is used as up for vertical views and
// world Y otherwise.
func LookAt[T constraints.Float](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize())
	if s.Magnitude() < 1e-3 {
		if abs(f[1]) > 0.99 {
			up = Vec3[T]{0, 0, 1}
		} else {
			up = Vec3[T]{0, 1, 0}
		}
		s = f.Cross(up)
	}
	s = s.Normalize()
	u := s.Cross(f)

	return Mat4[T]{
		{s[0], s[1], s[2], -s.Dot(eye)},
		{u[0], u[1], u[2], -u.Dot(eye)},
		{-f[0], -f[1], -f[2], f.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Perspective builds a GL-style projection. fovDeg is the vertical field of view in degrees.
func Perspective[T constraints.Float](fovDeg, aspect, near, far T) Mat4[T] {
	f := 1 / tan(Radians(fovDeg)/2)
	nf := near - far
	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / nf, 2 * far * near / nf},
		{0, 0, -1, 0},
	}
}

// Orthographic builds a GL-style orthographic projection.
func Orthographic[T constraints.Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl, tb, fn := right-left, top-bottom, far-near
	return Mat4[T]{
		{2 / rl, 0, 0, -(right + left) / rl},
		{0, 2 / tb, 0, -(top + bottom) / tb},
		{0, 0, -2 / fn, -(far + near) / fn},
		{0, 0, 0, 1},
	}
}

func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat4[T]) AddScalar(s T) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += s
		}
	}
	return m
}

func (m Mat4[T]) SubScalar(s T) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= s
		}
	}
	return m
}

// SubFrom returns s - m elementwise.
func (m Mat4[T]) SubFrom(s T) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] = s - m[i][j]
		}
	}
	return m
}

func (m Mat4[T]) Scale(s T) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat4[T]) Neg() Mat4[T] { return m.Scale(-1) }

// Mul returns the matrix product m*o (non-commutative).
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// MulVec4 returns m*v with v as a column vector.
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return r
}

// Vec4MulMat returns v*m with v as a row vector.
func Vec4MulMat[T constraints.Float](v Vec4[T], m Mat4[T]) Vec4[T] {
	var r Vec4[T]
	for j := 0; j < 4; j++ {
		r[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j] + v[3]*m[3][j]
	}
	return r
}

// TransformPoint applies m to a point (w=1) and divides by w when it is not 1.
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	r := m.MulVec4(p.Vec4(1))
	if r[3] != 0 && r[3] != 1 {
		return r.Vec3().DivScalar(r[3])
	}
	return r.Vec3()
}

// TransformDir applies the linear part of m to a direction (w=0).
func (m Mat4[T]) TransformDir(d Vec3[T]) Vec3[T] {
	return m.MulVec4(d.Vec4(0)).Vec3()
}

func (m Mat4[T]) Transpose() Mat4[T] {
	var r Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

func (m Mat4[T]) Row(i int) Vec4[T] { return Vec4[T](m[i]) }

func (m Mat4[T]) Col(j int) Vec4[T] { return Vec4[T]{m[0][j], m[1][j], m[2][j], m[3][j]} }

// minor is the determinant of the 3x3 matrix left after removing row r and column c.
func (m Mat4[T]) minor(r, c int) T {
	var s [3][3]T
	si := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			s[si][sj] = m[i][j]
			sj++
		}
		si++
	}
	return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
}

func (m Mat4[T]) cofactor(r, c int) T {
	if (r+c)%2 == 0 {
		return m.minor(r, c)
	}
	return -m.minor(r, c)
}

// Det computes the determinant by cofactor expansion along the first row.
func (m Mat4[T]) Det() T {
	var d T
	for j := 0; j < 4; j++ {
		d += m[0][j] * m.cofactor(0, j)
	}
	return d
}

// Inverse returns adj(m)/det(m). It fails with ErrDegenerateMatrix when the
// determinant is exactly zero; near-singular input yields a numerically poor result.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	det := m.Det()
	if det == 0 {
		return Mat4[T]{}, ErrDegenerateMatrix
	}
	var r Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m.cofactor(i, j) / det
		}
	}
	return r, nil
}

func (m Mat4[T]) ApproxEqual(o Mat4[T], eps T) bool {
	for i := range m {
		for j := range m[i] {
			if !ApproxEqual(m[i][j], o[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// RowMajor flattens m row by row.
func (m Mat4[T]) RowMajor() [16]T {
	var r [16]T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[i][j]
		}
	}
	return r
}

// ColumnMajor flattens m column by column, the layout GL uniforms expect.
func (m Mat4[T]) ColumnMajor() [16]T {
	return m.Transpose().RowMajor()
}

// Float32s is ColumnMajor converted for uniform upload.
func (m Mat4[T]) Float32s() [16]float32 {
	var r [16]float32
	for i, v := range m.ColumnMajor() {
		r[i] = float32(v)
	}
	return r
}
