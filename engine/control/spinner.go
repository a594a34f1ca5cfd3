package control

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// Spinner turns its entity about Axis at Rate radians per second. Children
// of a spun entity orbit with it.
type Spinner struct {
	core.Base
	Axis gem.Vec3f
	Rate float64
}

func NewSpinner(axis gem.Vec3f, rate float64) *Spinner {
	return &Spinner{Axis: axis, Rate: rate}
}

func (s *Spinner) Type() core.ComponentType { return core.CompSpinner }

func (s *Spinner) Update(dt float64) {
	if e := s.Entity(); e != nil && s.Rate != 0 {
		e.Rotate(gem.NewAxisAngle(s.Rate*dt, s.Axis))
	}
}
