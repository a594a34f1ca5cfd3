package core

import (
	"errors"

	"github.com/1siamBot/arc-engine/engine/gem"
)

// ErrTransformCycle is returned when a re-parenting would make an entity its own ancestor.
var ErrTransformCycle = errors.New("core: entity would become its own ancestor")

// Entity is a node of the scene tree. It owns its children and components;
// the parent link is a back-reference only.
type Entity struct {
	ID          EntityID
	Name        string
	Position    gem.Vec3f
	Orientation gem.Quatf
	Scale       gem.Vec3f

	disabled   bool
	scene      *Scene // set while e is a root of a scene
	parent     *Entity
	children   []*Entity
	components []Component
}

// NewEntity creates an enabled entity at the origin with unit scale
func NewEntity(name string) *Entity {
	return &Entity{
		ID:          NewEntityID(),
		Name:        name,
		Orientation: gem.QuatIdentity[float64](),
		Scale:       gem.V3(1.0, 1.0, 1.0),
	}
}

// NewEntityEuler creates an entity from Euler angles (radians, applied X then Y then Z).
func NewEntityEuler(name string, pos, euler, scale gem.Vec3f) *Entity {
	e := NewEntity(name)
	e.Position = pos
	e.Scale = scale
	e.SetEuler(euler)
	return e
}

func (e *Entity) Enabled() bool      { return !e.disabled }
func (e *Entity) SetEnabled(on bool) { e.disabled = !on }

// SetEuler replaces the orientation with Rz*Ry*Rx.
func (e *Entity) SetEuler(euler gem.Vec3f) {
	e.Orientation = gem.QuatFromEuler(euler[0], euler[1], euler[2])
}

// Rotate applies a local rotation after the current orientation.
func (e *Entity) Rotate(aa gem.AxisAnglef) {
	e.Orientation = e.Orientation.Mul(aa.Quat()).Normalize()
}

func (e *Entity) Translate(d gem.Vec3f) {
	e.Position = e.Position.Add(d)
}

// LocalTransform composes translation * rotation * scale.
func (e *Entity) LocalTransform() gem.Mat4f {
	return gem.Translation(e.Position).
		Mul(e.Orientation.Mat4()).
		Mul(gem.Scaling(e.Scale))
}

// WorldTransform is the parent's world transform times the local one.
func (e *Entity) WorldTransform() gem.Mat4f {
	m := e.LocalTransform()
	for p := e.parent; p != nil; p = p.parent {
		m = p.LocalTransform().Mul(m)
	}
	return m
}

func (e *Entity) InverseLocalTransform() (gem.Mat4f, error) {
	return e.LocalTransform().Inverse()
}

func (e *Entity) InverseWorldTransform() (gem.Mat4f, error) {
	return e.WorldTransform().Inverse()
}

func (e *Entity) WorldPosition() gem.Vec3f {
	return e.WorldTransform().Col(3).Vec3()
}

func (e *Entity) Right() gem.Vec3f   { return e.WorldTransform().Col(0).Vec3().Normalize() }
func (e *Entity) Up() gem.Vec3f      { return e.WorldTransform().Col(1).Vec3().Normalize() }
func (e *Entity) Forward() gem.Vec3f { return e.WorldTransform().Col(2).Vec3().Normalize() }

// root is the top of e's tree
func (e *Entity) root() *Entity {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (e *Entity) Parent() *Entity         { return e.parent }
func (e *Entity) Children() []*Entity     { return e.children }
func (e *Entity) Components() []Component { return e.components }

// AddChild re-parents c under e. It refuses to create a cycle. A scene root
// stops being a root; its camera and lights stay bound only if e is in the
// same scene.
func (e *Entity) AddChild(c *Entity) error {
	for a := e; a != nil; a = a.parent {
		if a == c {
			return ErrTransformCycle
		}
	}
	old := c.root().scene
	if c.scene != nil {
		c.scene.detach(c)
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = e
	e.children = append(e.children, c)
	if old != nil && e.root().scene != old {
		old.unbind(c)
	}
	return nil
}

// RemoveChild detaches c. Removing an entity that is not a child is a no-op.
// A detached subtree leaves the scene along with its camera and lights.
func (e *Entity) RemoveChild(c *Entity) {
	old := e.root().scene
	if e.removeChild(c) && old != nil {
		old.unbind(c)
	}
}

func (e *Entity) removeChild(c *Entity) bool {
	for i, ch := range e.children {
		if ch == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// AddComponent attaches c, detaching it from a previous owner first.
func (e *Entity) AddComponent(c Component) {
	if prev := c.Entity(); prev != nil {
		prev.RemoveComponent(c)
	}
	c.Bind(e)
	e.components = append(e.components, c)
}

// RemoveComponent detaches c. Removing an absent component is a no-op.
func (e *Entity) RemoveComponent(c Component) {
	for i, have := range e.components {
		if have == c {
			e.components = append(e.components[:i], e.components[i+1:]...)
			c.Bind(nil)
			return
		}
	}
}

// Component returns the first component tagged t, or nil
func (e *Entity) Component(t ComponentType) Component {
	for _, c := range e.components {
		if c.Type() == t {
			return c
		}
	}
	return nil
}

// Has checks if the entity has a component tagged t
func (e *Entity) Has(t ComponentType) bool {
	return e.Component(t) != nil
}

// Find returns the first entity named name in this subtree, depth first.
func (e *Entity) Find(name string) *Entity {
	if e.Name == name {
		return e
	}
	for _, c := range e.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// update walks the subtree pre-order: own components first, then children.
func (e *Entity) update(dt float64) {
	if e.disabled {
		return
	}
	for _, c := range e.components {
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
	for _, ch := range e.children {
		ch.update(dt)
	}
}

func (e *Entity) handleKey(ev KeyEvent) {
	if e.disabled {
		return
	}
	for _, c := range e.components {
		if h, ok := c.(KeyHandler); ok {
			h.HandleKey(ev)
		}
	}
	for _, ch := range e.children {
		ch.handleKey(ev)
	}
}
