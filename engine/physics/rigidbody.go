// Package physics holds the ball simulation: a point-mass rigidbody and the
// broadphase tests of the ball against arc-shaped paddles and bricks.
package physics

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Rigidbody integrates its entity's position with semi-implicit Euler.
// A mass of zero or less makes the body static.
type Rigidbody struct {
	core.Base
	mass     float64
	velocity gem.Vec3f
	force    gem.Vec3f
}

func NewRigidbody(mass float64) *Rigidbody {
	return &Rigidbody{mass: mass}
}

func (rb *Rigidbody) Type() core.ComponentType { return core.CompRigidbody }

func (rb *Rigidbody) Mass() float64               { return rb.mass }
func (rb *Rigidbody) Static() bool                { return rb.mass <= 0 }
func (rb *Rigidbody) Velocity() gem.Vec3f         { return rb.velocity }
func (rb *Rigidbody) SetVelocity(v gem.Vec3f)     { rb.velocity = v }
func (rb *Rigidbody) AccumulatedForce() gem.Vec3f { return rb.force }

// ApplyForce accumulates f until the next Update
func (rb *Rigidbody) ApplyForce(f gem.Vec3f) {
	rb.force = rb.force.Add(f)
}

// ApplyImpulse changes velocity immediately by j/m. Static bodies ignore it.
func (rb *Rigidbody) ApplyImpulse(j gem.Vec3f) {
	if rb.Static() {
		return
	}
	rb.velocity = rb.velocity.Add(j.DivScalar(rb.mass))
}

func (rb *Rigidbody) Update(dt float64) {
	if rb.Static() {
		return
	}
	accel := rb.force.DivScalar(rb.mass)
	rb.velocity = rb.velocity.Add(accel.Scale(dt))
	if e := rb.Entity(); e != nil {
		e.Translate(rb.velocity.Scale(dt))
	}
	rb.force = gem.Vec3f{}
}
