package gem

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toMgl(q Quatf) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func assertQuat(t *testing.T, want mgl64.Quat, got Quatf) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, Epsilon)
	assert.InDelta(t, want.V[0], got.X, Epsilon)
	assert.InDelta(t, want.V[1], got.Y, Epsilon)
	assert.InDelta(t, want.V[2], got.Z, Epsilon)
}

func TestHamiltonProduct(t *testing.T) {
	a := Quatf{W: 1, X: 2, Y: 3, Z: 4}
	b := Quatf{W: -0.5, X: 0.25, Y: 2, Z: -1}

	assertQuat(t, toMgl(a).Mul(toMgl(b)), a.Mul(b))
	assertQuat(t, toMgl(b).Mul(toMgl(a)), b.Mul(a))
	assert.False(t, a.Mul(b).ApproxEqual(b.Mul(a), Epsilon))
	assert.Equal(t, a, a.Mul(QuatIdentity[float64]()))
}

func TestConjugateProductIsReal(t *testing.T) {
	for _, q := range []Quatf{{1, 2, 3, 4}, {0.3, -0.1, 0.7, 0.2}, {-2, 0, 0, 5}} {
		p := q.Mul(q.Conjugate())
		assert.InDelta(t, q.Magnitude()*q.Magnitude(), p.W, Epsilon)
		assert.InDelta(t, 0, p.X, Epsilon)
		assert.InDelta(t, 0, p.Y, Epsilon)
		assert.InDelta(t, 0, p.Z, Epsilon)
	}
}

func TestQuatInverse(t *testing.T) {
	q := Quatf{W: 1, X: -2, Y: 0.5, Z: 3}
	inv, err := q.Inverse()
	require.NoError(t, err)
	assert.True(t, q.Mul(inv).ApproxEqual(QuatIdentity[float64](), Epsilon))

	_, err = Quatf{}.Inverse()
	assert.ErrorIs(t, err, ErrDegenerateQuaternion)
}

func TestQuatArithmetic(t *testing.T) {
	q := Quatf{1, 2, 3, 4}
	assert.Equal(t, Quatf{2, 4, 6, 8}, q.Add(q))
	assert.Equal(t, Quatf{}, q.Sub(q))
	assert.Equal(t, Quatf{2, 3, 4, 5}, q.AddScalar(1))
	assert.Equal(t, Quatf{0, 1, 2, 3}, q.SubScalar(1))
	assert.Equal(t, Quatf{-1, -2, -3, -4}, q.Neg())
	assert.InDelta(t, 1, q.Normalize().Magnitude(), Epsilon)
	assert.Equal(t, Quatf{}, Quatf{}.Normalize())
}

func TestAxisAngle(t *testing.T) {
	t.Run("only the axis is normalized", func(t *testing.T) {
		aa := NewAxisAngle(2.5, V3(0.0, 3.0, 0.0))
		assert.Equal(t, 2.5, aa.Angle)
		assert.Equal(t, V3(0.0, 1.0, 0.0), aa.Axis)
	})

	t.Run("round trip", func(t *testing.T) {
		axis := V3(1.0, 2.0, -1.0).Normalize()
		q := QuatFromAxisAngle(axis, 1.3)
		assertQuat(t, mgl64.QuatRotate(1.3, mgl64.Vec3(axis)), q)

		back := q.AxisAngle()
		assert.InDelta(t, 1.3, back.Angle, Epsilon)
		assert.True(t, back.Axis.ApproxEqual(axis, Epsilon))
	})

	t.Run("tiny rotation has no stable axis", func(t *testing.T) {
		assert.Equal(t, AxisAnglef{}, QuatIdentity[float64]().AxisAngle())
		assert.Equal(t, AxisAnglef{}, QuatFromAxisAngle(V3(0.0, 0.0, 1.0), 1e-4).AxisAngle())
	})

	t.Run("zero axis", func(t *testing.T) {
		assert.True(t, QuatFromAxisAngle(Vec3f{}, 1.0).Vector().ApproxEqual(Vec3f{}, Epsilon))
	})
}

func TestQuatMatchesRotationMatrices(t *testing.T) {
	assert.True(t, QuatFromAxisAngle(V3(1.0, 0.0, 0.0), 0.6).Mat4().ApproxEqual(RotationX(0.6), Epsilon))
	assert.True(t, QuatFromAxisAngle(V3(0.0, 1.0, 0.0), -0.9).Mat4().ApproxEqual(RotationY(-0.9), Epsilon))
	assert.True(t, QuatFromAxisAngle(V3(0.0, 0.0, 1.0), 2.2).Mat4().ApproxEqual(RotationZ(2.2), Epsilon))

	x, y, z := math.Pi/4, 0.3, math.Pi/2
	want := RotationZ(z).Mul(RotationY(y)).Mul(RotationX(x))
	assert.True(t, QuatFromEuler(x, y, z).Mat4().ApproxEqual(want, Epsilon))

	q := QuatFromEuler(0.1, 0.2, 0.3)
	v := V3(1.0, -2.0, 0.5)
	assert.True(t, q.Rotate(v).ApproxEqual(q.Mat4().TransformDir(v), Epsilon))
}

func TestYaw(t *testing.T) {
	for _, a := range []float64{0, 0.5, -1.2, 3.0} {
		assert.InDelta(t, a, QuatFromAxisAngle(V3(0.0, 1.0, 0.0), a).Yaw(), Epsilon)
	}
}

func TestSlerp(t *testing.T) {
	a := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.2)
	b := QuatFromAxisAngle(V3(1.0, 1.0, 0.0), 1.9)

	assert.Equal(t, a, Slerp(a, b, 0))
	assert.Equal(t, b, Slerp(a, b, 1))

	mid := Slerp(a, b, 0.5)
	assert.InDelta(t, 1, mid.Magnitude(), Epsilon)
	// equidistant by angle from both ends
	assert.InDelta(t, math.Abs(mid.Dot(a)), math.Abs(mid.Dot(b)), Epsilon)

	assertQuat(t, mgl64.QuatSlerp(toMgl(a), toMgl(b), 0.3), Slerp(a, b, 0.3))

	t.Run("shorter arc", func(t *testing.T) {
		got := Slerp(a, b.Neg(), 0.3)
		assert.True(t, got.ApproxEqual(Slerp(a, b, 0.3), Epsilon))
	})

	t.Run("nearly identical falls back to lerp", func(t *testing.T) {
		c := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.2001)
		got := Slerp(a, c, 0.5)
		assert.True(t, got.ApproxEqual(LerpQuat(a, c, 0.5), 1e-12))
		assert.InDelta(t, 0.20005, got.Yaw(), Epsilon)
	})
}
