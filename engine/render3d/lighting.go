package render3d

import (
	"math"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Point light attenuation defaults
const (
	DefaultPointConstant  = 1.0
	DefaultPointLinear    = 0.09
	DefaultPointQuadratic = 0.032
)

// LightColors groups the three Phong terms of a light
type LightColors struct {
	Ambient  gem.Vec3f
	Diffuse  gem.Vec3f
	Specular gem.Vec3f
}

// DefaultLightColors returns a bright, game-friendly white light
func DefaultLightColors() LightColors {
	return LightColors{
		Ambient:  gem.V3(0.25, 0.25, 0.28),
		Diffuse:  gem.V3(0.9, 0.88, 0.82),
		Specular: gem.V3(0.6, 0.6, 0.6),
	}
}

// DirectionalLight is a sun-like light shining along its entity's forward axis
type DirectionalLight struct {
	core.Base
	LightColors
}

func NewDirectionalLight(colors LightColors) *DirectionalLight {
	return &DirectionalLight{LightColors: colors}
}

func (l *DirectionalLight) Type() core.ComponentType { return core.CompDirectionalLight }

// Direction is the direction light travels in
func (l *DirectionalLight) Direction() gem.Vec3f {
	if e := l.Entity(); e != nil {
		return e.Forward()
	}
	return gem.V3(0.0, -1.0, 0.0)
}

func (l *DirectionalLight) Light() core.Light {
	return core.Light{
		Kind:      core.LightDirectional,
		Direction: l.Direction(),
		Ambient:   l.Ambient,
		Diffuse:   l.Diffuse,
		Specular:  l.Specular,
	}
}

// PointLight radiates from its entity's world position
type PointLight struct {
	core.Base
	LightColors
	Range     float64
	Constant  float64
	Linear    float64
	Quadratic float64
}

func NewPointLight(colors LightColors, rng float64) *PointLight {
	return &PointLight{
		LightColors: colors,
		Range:       rng,
		Constant:    DefaultPointConstant,
		Linear:      DefaultPointLinear,
		Quadratic:   DefaultPointQuadratic,
	}
}

func (l *PointLight) Type() core.ComponentType { return core.CompPointLight }

func (l *PointLight) Light() core.Light {
	var pos gem.Vec3f
	if e := l.Entity(); e != nil {
		pos = e.WorldPosition()
	}
	return core.Light{
		Kind:      core.LightPoint,
		Position:  pos,
		Ambient:   l.Ambient,
		Diffuse:   l.Diffuse,
		Specular:  l.Specular,
		Range:     l.Range,
		Constant:  l.Constant,
		Linear:    l.Linear,
		Quadratic: l.Quadratic,
	}
}

// Shade computes the Phong-lit color of a surface point: ambient, Lambert
// diffuse and Blinn-Phong specular from the main light plus each attenuated
// point light. Without any light the base color is returned unchanged.
func Shade(rs *core.RenderState, pos, normal gem.Vec3f, mat core.Material) gem.Vec4f {
	base := mat.Color
	if mat.Unlit || (rs.MainLight == nil && len(rs.Lights) == 0) {
		return base
	}

	albedo := base.Vec3()
	view := rs.CameraPos.Sub(pos).Normalize()
	shininess := mat.Shininess
	if shininess <= 0 {
		shininess = 1
	}

	var sum gem.Vec3f
	add := func(l core.Light, toLight gem.Vec3f, att float64) {
		ambient := albedo.Mul(l.Ambient)
		ndotl := math.Max(0, normal.Dot(toLight))
		diffuse := albedo.Mul(l.Diffuse).Scale(ndotl)

		var specular gem.Vec3f
		if ndotl > 0 {
			half := toLight.Add(view).Normalize()
			specular = l.Specular.Scale(math.Pow(math.Max(0, normal.Dot(half)), shininess))
		}
		sum = sum.Add(ambient.Add(diffuse).Add(specular).Scale(att))
	}

	if rs.MainLight != nil {
		add(*rs.MainLight, rs.MainLight.Direction.Neg().Normalize(), 1)
	}
	for _, l := range rs.Lights {
		d := l.Position.Sub(pos)
		dist := d.Magnitude()
		att := l.Attenuation(dist)
		if att == 0 {
			continue
		}
		add(l, d.Normalize(), att)
	}

	return gem.V4(gem.Clamp(sum[0], 0, 1), gem.Clamp(sum[1], 0, 1), gem.Clamp(sum[2], 0, 1), base[3])
}
