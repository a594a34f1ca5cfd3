package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/1siamBot/arc-engine/engine/render3d"
)

var (
	ErrNoRigidbody = errors.New("physics: ball has no rigidbody")
	ErrNoSphere    = errors.New("physics: ball has no sphere renderer")
	ErrNoArc       = errors.New("physics: entity has no arc renderer")
)

// Contact is the payload of paddle and brick events
type Contact struct {
	Ball     *core.Entity
	Target   *core.Entity
	Position gem.Vec3f // ball position at the time of contact
	Normal   gem.Vec3f
}

// ball caches the components every broadphase test reads from the ball entity
type ball struct {
	entity *core.Entity
	body   *Rigidbody
	shape  *render3d.SphereRenderer
}

func resolveBall(e *core.Entity) (ball, error) {
	body, ok := core.ComponentAs[*Rigidbody](e, core.CompRigidbody)
	if !ok {
		return ball{}, ErrNoRigidbody
	}
	shape, ok := core.ComponentAs[*render3d.SphereRenderer](e, core.CompMeshRenderer)
	if !ok {
		return ball{}, ErrNoSphere
	}
	return ball{entity: e, body: body, shape: shape}, nil
}

func resolveArc(e *core.Entity) (*render3d.ArcRenderer, error) {
	arc, ok := core.ComponentAs[*render3d.ArcRenderer](e, core.CompMeshRenderer)
	if !ok {
		name := "<nil>"
		if e != nil {
			name = e.Name
		}
		return nil, fmt.Errorf("%w: %s", ErrNoArc, name)
	}
	return arc, nil
}

// flat drops the height so tests run in the XZ plane
func flat(v gem.Vec3f) gem.Vec3f {
	return gem.V3(v[0], 0, v[2])
}

// arcContact tests the ball against the annular sector drawn by arc. polar is
// the ball centre relative to the arc's centre; the normal points radially
// away from that centre at the ball's bearing.
func arcContact(b ball, arc *render3d.ArcRenderer) (polar gem.Polarf, n gem.Vec3f, ok bool) {
	e := arc.Entity()
	if e == nil {
		return polar, n, false
	}
	r := b.shape.Radius
	polar = gem.PolarFromXZ(flat(b.entity.WorldPosition()).Sub(flat(e.WorldPosition())))
	if polar.R+r < arc.InnerRadius || polar.R-r > arc.OuterRadius {
		return polar, n, false
	}

	// the arc sweeps [0, Angle] in its own frame; yaw turns that into
	// [-yaw, Angle-yaw] around the world Y axis
	half := arc.Angle / 2
	local := gem.WrapAngle(polar.Theta + e.Orientation.Yaw() - half)
	if math.Abs(local) > half {
		return polar, n, false
	}
	return polar, gem.V3(math.Cos(polar.Theta), 0, math.Sin(polar.Theta)), true
}

// bounce reflects the ball's velocity about n when it moves along n. It
// reports whether an impulse was applied; a static ball never bounces.
func bounce(b ball, n gem.Vec3f) bool {
	vn := b.body.Velocity().Dot(n)
	if vn <= 0 || b.body.Static() {
		return false
	}
	b.body.ApplyImpulse(n.Scale(b.body.Mass() * 2 * -vn))
	return true
}

// At is where the contact happened
func (c Contact) At() gem.Vec3f { return c.Position }
