package render3d

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Camera defaults
const (
	DefaultFOV    = 60.0
	DefaultAspect = 16.0 / 9.0
	DefaultNear   = 0.1
	DefaultFar    = 1000.0
)

// Camera looks from its entity's world position along the entity's forward
// axis, or at Target when one is set. The view is recomputed on every Update
// and whenever the matrices are read.
type Camera struct {
	core.Base

	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	// Orthographic mode: OrthoSize world units fit across the screen
	Ortho     bool
	OrthoSize float64

	Target *core.Entity

	view gem.Mat4f
	proj gem.Mat4f
}

// NewCamera creates a perspective camera
func NewCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:       fov,
		Aspect:    aspect,
		Near:      near,
		Far:       far,
		OrthoSize: 20,
	}
	c.refresh()
	return c
}

func DefaultCamera() *Camera {
	return NewCamera(DefaultFOV, DefaultAspect, DefaultNear, DefaultFar)
}

func (c *Camera) Type() core.ComponentType { return core.CompCamera }

// SetViewport updates the aspect ratio from screen dimensions
func (c *Camera) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		c.Aspect = float64(w) / float64(h)
	}
}

func (c *Camera) Update(dt float64) {
	c.refresh()
}

func (c *Camera) refresh() {
	c.view = gem.Identity[float64]()
	if e := c.Entity(); e != nil {
		eye := e.WorldPosition()
		centre := eye.Add(e.Forward())
		if c.Target != nil {
			centre = c.Target.WorldPosition()
		}
		c.view = gem.LookAt(eye, centre, e.Up())
	}

	if c.Ortho {
		hw := c.OrthoSize / 2
		hh := hw / c.Aspect
		c.proj = gem.Orthographic(-hw, hw, -hh, hh, c.Near, c.Far)
	} else {
		c.proj = gem.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	}
}

func (c *Camera) ViewMatrix() gem.Mat4f {
	c.refresh()
	return c.view
}

func (c *Camera) ProjectionMatrix() gem.Mat4f {
	c.refresh()
	return c.proj
}

// ViewProj returns the combined view-projection matrix
func (c *Camera) ViewProj() gem.Mat4f {
	c.refresh()
	return c.proj.Mul(c.view)
}

// ProjectToScreen converts a world point to pixel coordinates on a w x h
// screen. ok is false for points behind the camera.
func (c *Camera) ProjectToScreen(p gem.Vec3f, w, h int) (sx, sy, depth float64, ok bool) {
	clip := c.ViewProj().MulVec4(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	sx, sy = ndcToScreen(clip[0]/clip[3], clip[1]/clip[3], float64(w), float64(h))
	return sx, sy, clip[2] / clip[3], true
}

func ndcToScreen(x, y, w, h float64) (float64, float64) {
	return (x*0.5 + 0.5) * w, (1 - (y*0.5 + 0.5)) * h
}
