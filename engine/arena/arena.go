// Package arena assembles the playfield: a floor, the ball, two arc paddles
// swinging around a central tower of arc bricks, the camera and the lights.
package arena

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/1siamBot/arc-engine/engine/config"
	"github.com/1siamBot/arc-engine/engine/control"
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/1siamBot/arc-engine/engine/physics"
	"github.com/1siamBot/arc-engine/engine/render3d"
)

// Playfield proportions
const (
	TowerInner   = 2.0
	TowerOuter   = 3.0
	BrickHeight  = 0.5
	PaddleWidth  = 0.5
	PaddleHeight = 0.6
	PaddleAngle  = math.Pi / 5
	paddleGap    = 2.0 // between the paddles' outer edge and the arena edge
	arcSegments  = 12
	lampRange    = 15.0
	lampSpin     = 0.5
)

var brickPalette = []gem.Vec4f{
	gem.V4(0.95, 0.55, 0.15, 1.0),
	gem.V4(0.25, 0.65, 0.95, 1.0),
	gem.V4(0.45, 0.85, 0.35, 1.0),
	gem.V4(0.85, 0.35, 0.75, 1.0),
	gem.V4(0.95, 0.85, 0.25, 1.0),
	gem.V4(0.35, 0.85, 0.8, 1.0),
}

var yAxis = gem.V3(0.0, 1.0, 0.0)

// Arena is the built scene plus handles on the entities the game drives
type Arena struct {
	Scene     *core.Scene
	Ball      *core.Entity
	Paddles   []*core.Entity
	Bricks    []*core.Entity
	Camera    *render3d.Camera
	Particles *render3d.ParticleSystem
	Tower     *physics.BrickCollision
	Reset     *control.BallReset
}

// LaunchVelocity aims the ball at the tower, slightly off centre
func LaunchVelocity(speed float64) gem.Vec3f {
	return gem.V3(0.25, 0.0, -1.0).Normalize().Scale(speed)
}

// Build creates the scene for cfg. Events raised during play go to bus.
func Build(cfg config.Config, log *zap.Logger, bus *core.EventBus) (*Arena, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ac := cfg.Arena
	if ac.Radius <= config.MinArenaRadius {
		return nil, fmt.Errorf("arena: %w: radius %g leaves no room for the paddles", config.ErrInvalid, ac.Radius)
	}
	a := &Arena{Scene: core.NewScene(log.Named("scene"))}

	floor := core.NewEntity("floor")
	floor.Position = gem.V3(0.0, -0.5, 0.0)
	floor.AddComponent(render3d.NewPlaneRenderer(2*ac.Radius+4, 8, render3d.FloorGray))
	edge := core.NewEntity("edge")
	edge.Position = gem.V3(0.0, 0.01, 0.0)
	edge.AddComponent(render3d.NewCircleRenderer(ac.Radius, render3d.DefaultCircleSegments, gem.V4(0.2, 0.22, 0.28, 1.0)))
	if err := floor.AddChild(edge); err != nil {
		return nil, err
	}
	a.Scene.AddEntity(floor)

	a.Bricks = buildTower(ac)
	for _, b := range a.Bricks {
		a.Scene.AddEntity(b)
	}

	outer := ac.Radius - paddleGap
	for i, yaw := range []float64{0, math.Pi} {
		p := core.NewEntity(fmt.Sprintf("paddle-%d", i))
		p.Rotate(gem.NewAxisAngle(yaw, yAxis))
		p.AddComponent(render3d.NewArcRenderer(outer-PaddleWidth, outer, arcSegments, PaddleHeight, PaddleAngle, render3d.PaddleRed))
		p.AddComponent(control.NewPaddleController(ac.PaddleSpeed))
		a.Paddles = append(a.Paddles, p)
		a.Scene.AddEntity(p)
	}

	if err := a.buildBall(ac, bus); err != nil {
		return nil, err
	}
	if err := a.buildCamera(cfg); err != nil {
		return nil, err
	}
	if err := a.buildLights(); err != nil {
		return nil, err
	}

	fx := core.NewEntity("particles")
	a.Particles = render3d.NewParticleSystem()
	fx.AddComponent(a.Particles)
	a.Scene.AddEntity(fx)
	bus.On(core.EvtBrickBroken, a.burst)

	log.Info("Arena built",
		zap.Int("bricks", len(a.Bricks)),
		zap.Int("entities", a.Scene.EntityCount()),
		zap.Uint64("seed", ac.Seed))
	return a, nil
}

// buildTower lays bricks out row-major; column k is turned by -k/base of a
// full turn so the columns close into a ring.
func buildTower(ac config.ArenaConfig) []*core.Entity {
	rng := rand.New(rand.NewSource(ac.Seed))
	step := 2 * math.Pi / float64(ac.TowerBase)

	var bricks []*core.Entity
	for row := 0; row < ac.TowerStack; row++ {
		for col := 0; col < ac.TowerBase; col++ {
			b := core.NewEntity(fmt.Sprintf("brick-%d-%d", row, col))
			b.Position = gem.V3(0.0, physics.DefaultTowerBaseY+float64(row)*BrickHeight, 0.0)
			b.Rotate(gem.NewAxisAngle(-float64(col)*step, yAxis))
			arc := render3d.NewArcRenderer(TowerInner, TowerOuter, arcSegments, BrickHeight, step,
				brickPalette[rng.Intn(len(brickPalette))])
			arc.SetStrength(ac.BrickStrength)
			b.AddComponent(arc)
			bricks = append(bricks, b)
		}
	}
	return bricks
}

func (a *Arena) buildBall(ac config.ArenaConfig, bus *core.EventBus) error {
	start := gem.V3(0.0, 0.0, (TowerOuter+ac.Radius-paddleGap-PaddleWidth)/2)
	ball := core.NewEntity("ball")
	ball.Position = start
	body := physics.NewRigidbody(1)
	body.SetVelocity(LaunchVelocity(ac.BallSpeed))
	ball.AddComponent(body)
	ball.AddComponent(render3d.NewSphereRenderer(ac.BallRadius, 16, 8, render3d.BallWhite))

	a.Reset = control.NewBallReset(start, LaunchVelocity(ac.BallSpeed))
	a.Reset.Events = bus
	ball.AddComponent(a.Reset)

	paddles, err := physics.NewPaddleCollision(ball, a.Paddles...)
	if err != nil {
		return err
	}
	paddles.Events = bus
	ball.AddComponent(paddles)

	a.Tower, err = physics.NewBrickCollision(ball, a.Bricks, ac.TowerBase, ac.TowerStack)
	if err != nil {
		return err
	}
	a.Tower.Events = bus
	ball.AddComponent(a.Tower)

	bounds := physics.NewBounds(ac.Radius, a.Reset)
	bounds.Events = bus
	ball.AddComponent(bounds)

	a.Ball = ball
	a.Scene.AddEntity(ball)
	return nil
}

func (a *Arena) buildCamera(cfg config.Config) error {
	cc := cfg.Camera
	e := core.NewEntity("camera")
	e.Position = gem.V3(cc.Position[0], cc.Position[1], cc.Position[2])
	a.Camera = render3d.NewCamera(cc.FOV, float64(cfg.Window.Width)/float64(cfg.Window.Height), cc.Near, cc.Far)
	a.Camera.Ortho = cc.Ortho
	a.Camera.OrthoSize = cc.OrthoSize
	a.Camera.Target = a.Scene.Find("floor")
	e.AddComponent(a.Camera)
	a.Scene.AddEntity(e)
	return a.Scene.SetMainCameraEntity(e)
}

func (a *Arena) buildLights() error {
	sun := core.NewEntityEuler("sun", gem.V3(0.0, 10.0, 0.0), gem.V3(math.Pi/3, 0.0, 0.0), gem.V3(1.0, 1.0, 1.0))
	dl := render3d.NewDirectionalLight(render3d.DefaultLightColors())
	sun.AddComponent(dl)
	a.Scene.AddEntity(sun)
	a.Scene.SetMainLight(dl)

	rig := core.NewEntity("lamps")
	rig.AddComponent(control.NewSpinner(yAxis, lampSpin))
	warm := render3d.LightColors{
		Ambient:  gem.V3(0.0, 0.0, 0.0),
		Diffuse:  gem.V3(0.6, 0.45, 0.3),
		Specular: gem.V3(0.4, 0.3, 0.2),
	}
	for i, x := range []float64{-8, 8} {
		lamp := core.NewEntity(fmt.Sprintf("lamp-%d", i))
		lamp.Position = gem.V3(x, 3.0, 0.0)
		pl := render3d.NewPointLight(warm, lampRange)
		lamp.AddComponent(pl)
		if err := rig.AddChild(lamp); err != nil {
			return err
		}
		if err := a.Scene.AddPointLight(pl); err != nil {
			return err
		}
	}
	a.Scene.AddEntity(rig)
	return nil
}

// burst sprays particles in the colour of a broken brick
func (a *Arena) burst(e core.Event) {
	ev, ok := e.Payload.(physics.BrickEvent)
	if !ok {
		return
	}
	c := render3d.White
	if arc, ok := core.ComponentAs[*render3d.ArcRenderer](ev.Target, core.CompMeshRenderer); ok {
		c = arc.Material.Color
	}
	a.Particles.AddBurst(ev.Position, c)
}

// Restart rebuilds the tower and puts the ball back in play
func (a *Arena) Restart() {
	a.Tower.Restore()
	for _, p := range a.Paddles {
		p.Orientation = gem.QuatIdentity[float64]()
	}
	a.Paddles[1].Rotate(gem.NewAxisAngle(math.Pi, yAxis))
	a.Particles.Particles = nil
	a.Reset.Reset()
}
