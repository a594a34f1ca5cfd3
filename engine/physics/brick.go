package physics

import (
	"errors"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/render3d"
)

// Tower layout used by the arena
const (
	DefaultTowerBase  = 6
	DefaultTowerStack = 3
	DefaultTowerBaseY = -0.25
)

var ErrTowerShape = errors.New("physics: brick count does not match the tower shape")

// BrickEvent is the payload of EvtBrickHit and EvtBrickBroken
type BrickEvent struct {
	Contact
	Strength  int // hits the brick still absorbs
	Remaining int // bricks left standing
}

// BrickCollision bounces the ball off the bottom row of an arc tower. Bricks
// are stored row-major: index i sits in column i%base, row i/base. A broken
// brick is disabled and bubbled to the top of its column so the bricks above
// it drop by one row.
type BrickCollision struct {
	core.Base
	Events core.Emitter

	ball      ball
	base      int
	bricks    []*render3d.ArcRenderer
	remaining int
}

func NewBrickCollision(ballEntity *core.Entity, bricks []*core.Entity, base, stack int) (*BrickCollision, error) {
	if base <= 0 || stack <= 0 || len(bricks) != base*stack {
		return nil, ErrTowerShape
	}
	b, err := resolveBall(ballEntity)
	if err != nil {
		return nil, err
	}
	bc := &BrickCollision{ball: b, base: base}
	for _, e := range bricks {
		arc, err := resolveArc(e)
		if err != nil {
			return nil, err
		}
		bc.bricks = append(bc.bricks, arc)
		if e.Enabled() {
			bc.remaining++
		}
	}
	return bc, nil
}

func (bc *BrickCollision) Type() core.ComponentType { return core.CompBrickCollision }

// Remaining returns the number of bricks not yet broken
func (bc *BrickCollision) Remaining() int { return bc.remaining }

// Bricks returns the tower in its current row-major order
func (bc *BrickCollision) Bricks() []*render3d.ArcRenderer {
	return append([]*render3d.ArcRenderer(nil), bc.bricks...)
}

// Restore re-enables every brick at full strength
func (bc *BrickCollision) Restore() {
	for _, arc := range bc.bricks {
		arc.ResetStrength()
		if e := arc.Entity(); e != nil {
			e.SetEnabled(true)
		}
	}
	bc.remaining = len(bc.bricks)
}

func (bc *BrickCollision) Update(_ float64) {
	for i := 0; i < bc.base; i++ {
		arc := bc.bricks[i]
		e := arc.Entity()
		if e == nil || !e.Enabled() {
			continue
		}
		polar, n, hit := arcContact(bc.ball, arc)
		if !hit {
			continue
		}
		// from outside the tower the ball pushes inwards
		if polar.R+bc.ball.shape.Radius-arc.OuterRadius > 0 {
			n = n.Neg()
		}
		if !bounce(bc.ball, n) {
			continue
		}

		ev := BrickEvent{Contact: Contact{
			Ball:     bc.ball.entity,
			Target:   e,
			Position: bc.ball.entity.WorldPosition(),
			Normal:   n,
		}}
		broken := bc.hit(i)
		ev.Remaining = bc.remaining
		if !broken {
			ev.Strength = arc.Strength()
			core.Emit(bc.Events, core.EvtBrickHit, ev)
			continue
		}
		core.Emit(bc.Events, core.EvtBrickBroken, ev)
		if bc.remaining == 0 {
			core.Emit(bc.Events, core.EvtGameWon, bc)
		}
	}
}

// hit wears the brick at index down and reports whether it broke
func (bc *BrickCollision) hit(index int) bool {
	if !bc.bricks[index].BreakOnCollision() {
		return false
	}
	bc.bricks[index].Entity().SetEnabled(false)
	bc.remaining--

	cur := index
	for next := cur + bc.base; next < len(bc.bricks); next += bc.base {
		a, b := bc.bricks[cur].Entity(), bc.bricks[next].Entity()
		a.Position, b.Position = b.Position, a.Position
		bc.bricks[cur], bc.bricks[next] = bc.bricks[next], bc.bricks[cur]
		cur = next
	}
	bc.bricks[cur].ResetStrength()
	return true
}
