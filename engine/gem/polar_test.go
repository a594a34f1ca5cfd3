package gem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolarNormalize(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Polarf{R: 1, Theta: c.in}.Normalize().Theta, Epsilon)
	}
}

func TestPolarCartesian(t *testing.T) {
	p := PolarFromCartesian(V2(0.0, -2.0))
	assert.InDelta(t, 2, p.R, Epsilon)
	assert.InDelta(t, 3*math.Pi/2, p.Theta, Epsilon)
	assert.True(t, p.Cartesian().ApproxEqual(V2(0.0, -2.0), Epsilon))

	// 3D points project onto the XZ plane
	q := PolarFromXZ(V3(1.0, 99.0, 1.0))
	assert.InDelta(t, math.Sqrt2, q.R, Epsilon)
	assert.InDelta(t, math.Pi/4, q.Theta, Epsilon)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), Epsilon)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), Epsilon)
	assert.InDelta(t, 0.5, WrapAngle(0.5+4*math.Pi), Epsilon)
	assert.InDelta(t, 0.5, WrapAngle(0.5-6*math.Pi), Epsilon)
	assert.InDelta(t, math.Remainder(1e12, 2*math.Pi), WrapAngle(1e12), 1e-6)

	assert.True(t, math.IsNaN(WrapAngle(math.Inf(1))))
	assert.True(t, math.IsNaN(WrapAngle(math.Inf(-1))))
	assert.True(t, math.IsNaN(float64(WrapAngle(float32(math.Inf(1))))))
	assert.True(t, math.IsNaN(WrapAngle(math.NaN())))
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180.0), Epsilon)
	assert.InDelta(t, 90, Degrees(math.Pi/2), Epsilon)
	assert.InDelta(t, 1, float64(Sin(float32(math.Pi/2))), 1e-6)
}
