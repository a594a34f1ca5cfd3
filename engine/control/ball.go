package control

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/1siamBot/arc-engine/engine/physics"
)

// BallReset puts the ball back at its start when R is pressed or when the
// ball leaves the arena.
type BallReset struct {
	core.Base
	Initial gem.Vec3f
	Launch  gem.Vec3f
	Key     core.Key
	Events  core.Emitter
}

func NewBallReset(initial, launch gem.Vec3f) *BallReset {
	return &BallReset{Initial: initial, Launch: launch, Key: core.KeyR}
}

func (br *BallReset) Type() core.ComponentType { return core.CompBallReset }

func (br *BallReset) HandleKey(ev core.KeyEvent) {
	if ev.Key == br.Key && ev.Down() {
		br.Reset()
	}
}

// Reset moves the ball to Initial and gives it the launch velocity
func (br *BallReset) Reset() {
	e := br.Entity()
	if e == nil {
		return
	}
	e.Position = br.Initial
	if rb, ok := core.ComponentAs[*physics.Rigidbody](e, core.CompRigidbody); ok {
		rb.SetVelocity(br.Launch)
	}
	core.Emit(br.Events, core.EvtBallReset, e)
}
