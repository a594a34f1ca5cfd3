package physics

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/render3d"
)

// PaddleCollision bounces the ball off arc paddles. Paddles are tested in
// order and the first one touching the ball ends the check for this tick.
type PaddleCollision struct {
	core.Base
	Events core.Emitter

	ball    ball
	paddles []*render3d.ArcRenderer
}

func NewPaddleCollision(ballEntity *core.Entity, paddles ...*core.Entity) (*PaddleCollision, error) {
	b, err := resolveBall(ballEntity)
	if err != nil {
		return nil, err
	}
	pc := &PaddleCollision{ball: b}
	for _, p := range paddles {
		arc, err := resolveArc(p)
		if err != nil {
			return nil, err
		}
		pc.paddles = append(pc.paddles, arc)
	}
	return pc, nil
}

func (pc *PaddleCollision) Type() core.ComponentType { return core.CompPaddleCollision }

func (pc *PaddleCollision) Update(_ float64) {
	for _, arc := range pc.paddles {
		if e := arc.Entity(); e == nil || !e.Enabled() {
			continue
		}
		_, n, hit := arcContact(pc.ball, arc)
		if !hit {
			continue
		}
		if bounce(pc.ball, n) {
			core.Emit(pc.Events, core.EvtPaddleHit, Contact{
				Ball:     pc.ball.entity,
				Target:   arc.Entity(),
				Position: pc.ball.entity.WorldPosition(),
				Normal:   n,
			})
		}
		return
	}
}
