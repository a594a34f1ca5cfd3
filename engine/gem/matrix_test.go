package gem

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatches(t *testing.T, want mgl64.Mat4, got Mat4f) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.At(i, j), got[i][j], Epsilon, "element [%d][%d]", i, j)
		}
	}
}

func sample() Mat4f {
	return Translation(V3(1.0, -2.0, 3.0)).
		Mul(RotationY(0.7)).
		Mul(RotationX(-0.3)).
		Mul(Scaling(V3(2.0, 0.5, 1.5)))
}

func TestIdentityIsNeutral(t *testing.T) {
	m := sample()
	m[3] = [4]float64{0.1, 0.2, 0.3, 1.4}
	assert.Equal(t, m, Identity[float64]().Mul(m))
	assert.Equal(t, m, m.Mul(Identity[float64]()))
}

func TestMatrixElementwise(t *testing.T) {
	m := sample()
	assert.True(t, m.Add(m).ApproxEqual(m.Scale(2), Epsilon))
	assert.Equal(t, Mat4f{}, m.Sub(m))
	assert.Equal(t, m.Neg(), m.SubFrom(0))
	assert.True(t, m.ApproxEqual(m.AddScalar(3).SubScalar(3), Epsilon))
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m.Col(2), m.Transpose().Row(2))
}

func TestMatrixMulIsNotCommutative(t *testing.T) {
	a := Translation(V3(1.0, 0.0, 0.0))
	b := RotationZ(math.Pi / 2)
	assert.False(t, a.Mul(b).ApproxEqual(b.Mul(a), Epsilon))
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, Identity[float64]().Det())
	assert.InDelta(t, 24, Scaling(V3(2.0, 3.0, 4.0)).Det(), Epsilon)
	assert.InDelta(t, 1, RotationY(1.1).Det(), Epsilon)

	m := sample()
	m[2] = m[1]
	assert.InDelta(t, 0, m.Det(), 1e-12)
}

func TestInverse(t *testing.T) {
	for name, m := range map[string]Mat4f{
		"affine":      sample(),
		"perspective": Perspective(60.0, 16.0/9.0, 0.1, 100.0),
		"view":        LookAt(V3(3.0, 4.0, 5.0), Vec3f{}, V3(0.0, 1.0, 0.0)),
	} {
		t.Run(name, func(t *testing.T) {
			inv, err := m.Inverse()
			require.NoError(t, err)
			assert.True(t, inv.Mul(m).ApproxEqual(Identity[float64](), Epsilon))
			assert.True(t, m.Mul(inv).ApproxEqual(Identity[float64](), Epsilon))
		})
	}

	t.Run("singular", func(t *testing.T) {
		_, err := Scaling(V3(1.0, 0.0, 1.0)).Inverse()
		assert.ErrorIs(t, err, ErrDegenerateMatrix)
		_, err = Mat4f{}.Inverse()
		assert.ErrorIs(t, err, ErrDegenerateMatrix)
	})
}

func TestFactoriesMatchMathgl(t *testing.T) {
	assertMatches(t, mgl64.Translate3D(1, -2, 3), Translation(V3(1.0, -2.0, 3.0)))
	assertMatches(t, mgl64.Scale3D(2, 3, 4), Scaling(V3(2.0, 3.0, 4.0)))
	assertMatches(t, mgl64.HomogRotate3DX(0.4), RotationX(0.4))
	assertMatches(t, mgl64.HomogRotate3DY(-1.2), RotationY(-1.2))
	assertMatches(t, mgl64.HomogRotate3DZ(2.5), RotationZ(2.5))
	assertMatches(t, mgl64.Perspective(mgl64.DegToRad(45), 4.0/3.0, 0.1, 1000), Perspective(45.0, 4.0/3.0, 0.1, 1000.0))
	assertMatches(t, mgl64.Ortho(-4, 6, -2, 3, 0.5, 50), Orthographic(-4.0, 6.0, -2.0, 3.0, 0.5, 50.0))
	assertMatches(t,
		mgl64.LookAtV(mgl64.Vec3{0, 5, 10}, mgl64.Vec3{1, 0, -1}, mgl64.Vec3{0, 1, 0}),
		LookAt(V3(0.0, 5.0, 10.0), V3(1.0, 0.0, -1.0), V3(0.0, 1.0, 0.0)))
}

func TestOrthographicMapsBoxToClipCube(t *testing.T) {
	m := Orthographic(-4.0, 6.0, -2.0, 3.0, 0.5, 50.0)
	assert.True(t, m.TransformPoint(V3(-4.0, -2.0, -0.5)).ApproxEqual(V3(-1.0, -1.0, -1.0), Epsilon))
	assert.True(t, m.TransformPoint(V3(6.0, 3.0, -50.0)).ApproxEqual(V3(1.0, 1.0, 1.0), Epsilon))
}

func TestLookAtDegenerateUp(t *testing.T) {
	// straight down with Y up: forward is parallel to up
	m := LookAt(V3(0.0, 10.0, 0.0), Vec3f{}, V3(0.0, 1.0, 0.0))
	for _, row := range m {
		for _, v := range row {
			assert.False(t, math.IsNaN(v))
		}
	}
	assert.InDelta(t, 1, m.Det(), Epsilon)
	// the target lands on the view axis
	assert.True(t, m.TransformPoint(Vec3f{}).ApproxEqual(V3(0.0, 0.0, -10.0), Epsilon))
}

func TestTransformPointAndDir(t *testing.T) {
	m := Translation(V3(1.0, 2.0, 3.0)).Mul(Scaling(V3(2.0, 2.0, 2.0)))
	assert.Equal(t, V3(3.0, 4.0, 5.0), m.TransformPoint(V3(1.0, 1.0, 1.0)))
	assert.Equal(t, V3(2.0, 2.0, 2.0), m.TransformDir(V3(1.0, 1.0, 1.0)))

	v := V4(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, m.Transpose().MulVec4(v), Vec4MulMat(v, m))
}

func TestUniformLayoutIsColumnMajor(t *testing.T) {
	m := Translation(V3(7.0, 8.0, 9.0))
	cm := m.ColumnMajor()
	assert.Equal(t, [3]float64{7, 8, 9}, [3]float64{cm[12], cm[13], cm[14]})
	assert.Equal(t, [16]float64(mgl64.Translate3D(7, 8, 9)), cm)

	rm := m.RowMajor()
	assert.Equal(t, 7.0, rm[3])

	f := m.Float32s()
	assert.Equal(t, float32(9), f[14])
}
