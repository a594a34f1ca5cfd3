package physics

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Resetter puts an entity back in play
type Resetter interface {
	Reset()
}

// Bounds reports the entity as lost once it leaves a vertical cylinder of
// Radius around Center, then hands it to the Resetter.
type Bounds struct {
	core.Base
	Center gem.Vec3f
	Radius float64
	Events core.Emitter
	Reset  Resetter
}

func NewBounds(radius float64, r Resetter) *Bounds {
	return &Bounds{Radius: radius, Reset: r}
}

func (b *Bounds) Type() core.ComponentType { return core.CompBounds }

// Outside reports whether p lies beyond the bounds in the XZ plane
func (b *Bounds) Outside(p gem.Vec3f) bool {
	return flat(p).Sub(flat(b.Center)).Magnitude() > b.Radius
}

func (b *Bounds) Update(_ float64) {
	e := b.Entity()
	if e == nil || !b.Outside(e.WorldPosition()) {
		return
	}
	core.Emit(b.Events, core.EvtBallLost, e)
	if b.Reset != nil {
		b.Reset.Reset()
	}
}
