package core

import "github.com/1siamBot/arc-engine/engine/gem"

// MaxPointLights bounds the extra lights bound per frame
const MaxPointLights = 4

// Camera provides the view and projection for a frame
type Camera interface {
	ViewMatrix() gem.Mat4f
	ProjectionMatrix() gem.Mat4f
}

// LightKind distinguishes light models
type LightKind uint8

const (
	LightDirectional LightKind = iota
	LightPoint
)

// Light is the per-frame uniform block of one light
type Light struct {
	Kind      LightKind
	Position  gem.Vec3f // world position (point lights)
	Direction gem.Vec3f // normalized direction the light travels (directional lights)
	Ambient   gem.Vec3f
	Diffuse   gem.Vec3f
	Specular  gem.Vec3f

	// attenuation: 1 / (Constant + Linear*d + Quadratic*d²), cut off beyond Range
	Range     float64
	Constant  float64
	Linear    float64
	Quadratic float64
}

// Attenuation returns the light's falloff at distance d
func (l Light) Attenuation(d float64) float64 {
	if l.Kind == LightDirectional {
		return 1
	}
	if l.Range > 0 && d > l.Range {
		return 0
	}
	den := l.Constant + l.Linear*d + l.Quadratic*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// LightSource is implemented by light components
type LightSource interface {
	Light() Light
}

// Material describes how a mesh is shaded
type Material struct {
	Color     gem.Vec4f // RGBA, 0..1
	Shininess float64
	Unlit     bool
	Wireframe bool
}

// Shader consumes draw calls. Implementations decide whether to draw
// immediately or batch until Flush.
type Shader interface {
	Draw(rs *RenderState, mesh *Mesh, mat Material) error
}

// Flusher is implemented by shaders that batch draws over a frame
type Flusher interface {
	Flush() error
}

// RenderState carries the uniforms bound for the entity being drawn
type RenderState struct {
	Model      gem.Mat4f
	View       gem.Mat4f
	Projection gem.Mat4f
	CameraPos  gem.Vec3f
	MainLight  *Light
	Lights     []Light
	Shader     Shader

	shaders map[string]Shader
}

// MVP returns projection * view * model
func (rs *RenderState) MVP() gem.Mat4f {
	return rs.Projection.Mul(rs.View).Mul(rs.Model)
}

// ShaderNamed resolves a registered shader, falling back to the active one
// when name is empty or unknown.
func (rs *RenderState) ShaderNamed(name string) Shader {
	if name != "" {
		if s, ok := rs.shaders[name]; ok {
			return s
		}
	}
	return rs.Shader
}
