package core

import "sync/atomic"

// EntityID is a unique identifier for scene entities
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// ComponentType identifies the kind of a component. Lookups on an entity are
// keyed by this tag.
type ComponentType uint32

const (
	CompCamera ComponentType = iota
	CompMeshRenderer
	CompDirectionalLight
	CompPointLight
	CompRigidbody
	CompPaddleController
	CompBallReset
	CompPaddleCollision
	CompBrickCollision
	CompBounds
	CompSpinner
	CompParticles
	CompScript
	CompMax
)

var componentNames = [...]string{
	CompCamera:           "camera",
	CompMeshRenderer:     "mesh_renderer",
	CompDirectionalLight: "directional_light",
	CompPointLight:       "point_light",
	CompRigidbody:        "rigidbody",
	CompPaddleController: "paddle_controller",
	CompBallReset:        "ball_reset",
	CompPaddleCollision:  "paddle_collision",
	CompBrickCollision:   "brick_collision",
	CompBounds:           "bounds",
	CompSpinner:          "spinner",
	CompParticles:        "particles",
	CompScript:           "script",
}

func (t ComponentType) String() string {
	if int(t) < len(componentNames) {
		return componentNames[t]
	}
	return "unknown"
}

// Component is an attachable unit of behaviour or data owned by one entity.
type Component interface {
	Type() ComponentType
	Entity() *Entity
	Bind(e *Entity)
}

// Base carries the back-reference to the owning entity. Embed it to satisfy
// the Entity/Bind half of Component.
type Base struct {
	entity *Entity
}

func (b *Base) Entity() *Entity { return b.entity }
func (b *Base) Bind(e *Entity)  { b.entity = e }

// Updater components are stepped once per simulation tick
type Updater interface {
	Update(dt float64)
}

// Renderable components draw during the render pass
type Renderable interface {
	Render(rs *RenderState) error
}

// KeyHandler components receive keyboard events
type KeyHandler interface {
	HandleKey(ev KeyEvent)
}

// ComponentAs returns the first component tagged t on e as a T. The second
// result is false when no such component exists or it is not a T.
func ComponentAs[T any](e *Entity, t ComponentType) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	c, ok := e.Component(t).(T)
	if !ok {
		return zero, false
	}
	return c, true
}
