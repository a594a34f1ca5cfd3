// Package control turns keyboard events into entity motion.
package control

import (
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// DefaultPaddleSpeed is the rotation per key event in radians
const DefaultPaddleSpeed = 0.1

var yAxis = gem.V3(0.0, 1.0, 0.0)

// PaddleController swings its entity about the vertical axis. Every press or
// auto-repeat of a Left key turns it by -Speed, a Right key by +Speed.
type PaddleController struct {
	core.Base
	Speed float64
	Left  []core.Key
	Right []core.Key
}

func NewPaddleController(speed float64) *PaddleController {
	return &PaddleController{
		Speed: speed,
		Left:  []core.Key{core.KeyA, core.KeyLeft},
		Right: []core.Key{core.KeyD, core.KeyRight},
	}
}

func (pc *PaddleController) Type() core.ComponentType { return core.CompPaddleController }

func (pc *PaddleController) HandleKey(ev core.KeyEvent) {
	e := pc.Entity()
	if e == nil || !ev.Down() {
		return
	}
	switch {
	case hasKey(pc.Left, ev.Key):
		e.Rotate(gem.NewAxisAngle(-pc.Speed, yAxis))
	case hasKey(pc.Right, ev.Key):
		e.Rotate(gem.NewAxisAngle(pc.Speed, yAxis))
	}
}

func hasKey(keys []core.Key, k core.Key) bool {
	for _, have := range keys {
		if have == k {
			return true
		}
	}
	return false
}
