package render3d

import (
	"math"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Particle represents a single particle in world space
type Particle struct {
	Pos     gem.Vec3f
	Vel     gem.Vec3f
	Color   gem.Vec4f
	Size    float64
	Life    float64
	MaxLife float64
}

// Alpha fades linearly over the particle's life
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return 1 - p.Life/p.MaxLife
}

// ParticleSystem is a component that simulates and draws short-lived debris.
// Particles live in world space regardless of the owning entity's transform.
type ParticleSystem struct {
	core.Base
	Particles []Particle
	Gravity   float64

	quad *core.Mesh
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		Gravity: 2.0,
		quad:    PlaneMesh(1, 1),
	}
}

func (ps *ParticleSystem) Type() core.ComponentType { return core.CompParticles }

// AddBurst spawns a ring of debris at a world position
func (ps *ParticleSystem) AddBurst(at gem.Vec3f, c gem.Vec4f) {
	for i := 0; i < 20; i++ {
		angle := float64(i) / 20.0 * 2 * math.Pi
		speed := 0.5 + float64(i%5)*0.3
		shade := 0.8 + float64(i%5)*0.05
		ps.Particles = append(ps.Particles, Particle{
			Pos:     at,
			Vel:     gem.V3(math.Cos(angle)*speed, 1.0+float64(i%3)*0.5, math.Sin(angle)*speed),
			Color:   gem.V4(c[0]*shade, c[1]*shade, c[2]*shade, 1.0),
			Size:    0.15 + float64(i%3)*0.05,
			MaxLife: 0.5 + float64(i%4)*0.15,
		})
	}
}

// Update advances particles
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.Particles[:0]
	for i := range ps.Particles {
		p := &ps.Particles[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel[1] -= ps.Gravity * dt
		alive = append(alive, *p)
	}
	ps.Particles = alive
}

// Render draws each particle as a flat unlit quad on the XZ plane
func (ps *ParticleSystem) Render(rs *core.RenderState) error {
	if len(ps.Particles) == 0 {
		return nil
	}
	sh := rs.Shader
	if sh == nil {
		return core.ErrMissingShader
	}

	local := *rs
	for _, p := range ps.Particles {
		a := p.Alpha()
		if a < 0.01 {
			continue
		}
		local.Model = gem.Translation(p.Pos).Mul(gem.Scaling(gem.V3(p.Size, 1.0, p.Size)))
		mat := core.Material{
			Color: gem.V4(p.Color[0], p.Color[1], p.Color[2], p.Color[3]*a),
			Unlit: true,
		}
		if err := sh.Draw(&local, ps.quad, mat); err != nil {
			return err
		}
	}
	return nil
}
