package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrMissingMainCamera means Render was called before a main camera was set.
	ErrMissingMainCamera = errors.New("scene: no main camera")
	// ErrMissingShader means no shader is active, or a requested one is unknown.
	ErrMissingShader = errors.New("scene: no shader bound")
	// ErrTooManyLights is returned once MaxPointLights point lights are bound.
	ErrTooManyLights = errors.New("scene: too many point lights")
)

// Scene owns the root entities and the per-frame bindings (camera, lights,
// shaders). It is driven by one Update and one Render call per frame.
type Scene struct {
	entities []*Entity

	mainCamera  Camera
	mainLight   LightSource
	pointLights []LightSource

	shaders     map[string]Shader
	shaderOrder []string
	shader      Shader

	log      *zap.Logger
	lastDiag error
}

// NewScene creates an empty scene logging diagnostics to log (nil discards them)
func NewScene(log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		shaders: make(map[string]Shader),
		log:     log,
	}
}

// AddEntity adds a root entity. An entity that currently has a parent is
// detached from it; adding a root that is already present does nothing.
func (s *Scene) AddEntity(e *Entity) {
	if e.scene == s {
		return
	}
	if e.scene != nil {
		e.scene.RemoveEntity(e)
	}
	if e.parent != nil {
		old := e.root().scene
		e.parent.removeChild(e)
		if old != nil && old != s {
			old.unbind(e)
		}
	}
	e.scene = s
	s.entities = append(s.entities, e)
}

// RemoveEntity removes a root entity. It reports whether e was present.
// Camera and light bindings living in e's subtree are dropped with it.
func (s *Scene) RemoveEntity(e *Entity) bool {
	if !s.detach(e) {
		return false
	}
	s.unbind(e)
	return true
}

// detach drops e from the roots without touching the bindings
func (s *Scene) detach(e *Entity) bool {
	for i, have := range s.entities {
		if have == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			e.scene = nil
			return true
		}
	}
	return false
}

// owned is implemented by bindings that are components of an entity
type owned interface {
	Entity() *Entity
}

// boundTo reports whether b is a component of an entity in root's subtree
func boundTo(b interface{}, root *Entity) bool {
	o, ok := b.(owned)
	if !ok {
		return false
	}
	for e := o.Entity(); e != nil; e = e.parent {
		if e == root {
			return true
		}
	}
	return false
}

// unbind clears the camera and lights that live under root
func (s *Scene) unbind(root *Entity) {
	if s.mainCamera != nil && boundTo(s.mainCamera, root) {
		s.mainCamera = nil
	}
	if s.mainLight != nil && boundTo(s.mainLight, root) {
		s.mainLight = nil
	}
	kept := s.pointLights[:0]
	for _, l := range s.pointLights {
		if !boundTo(l, root) {
			kept = append(kept, l)
		}
	}
	s.pointLights = kept
}

func (s *Scene) Entities() []*Entity { return s.entities }
func (s *Scene) EntityCount() int    { return len(s.entities) }

// Entity returns the i-th root entity, or nil when out of range
func (s *Scene) Entity(i int) *Entity {
	if i < 0 || i >= len(s.entities) {
		return nil
	}
	return s.entities[i]
}

// Find searches every tree for an entity by name
func (s *Scene) Find(name string) *Entity {
	for _, e := range s.entities {
		if f := e.Find(name); f != nil {
			return f
		}
	}
	return nil
}

func (s *Scene) SetMainCamera(c Camera) { s.mainCamera = c }
func (s *Scene) MainCamera() Camera     { return s.mainCamera }

// SetMainCameraEntity uses the camera component of e as the main camera
func (s *Scene) SetMainCameraEntity(e *Entity) error {
	c, ok := ComponentAs[Camera](e, CompCamera)
	if !ok {
		return fmt.Errorf("entity %q: %w", e.Name, ErrMissingMainCamera)
	}
	s.mainCamera = c
	return nil
}

func (s *Scene) SetMainLight(l LightSource) { s.mainLight = l }

// AddPointLight binds an extra light, up to MaxPointLights
func (s *Scene) AddPointLight(l LightSource) error {
	if len(s.pointLights) >= MaxPointLights {
		return ErrTooManyLights
	}
	s.pointLights = append(s.pointLights, l)
	return nil
}

// AddShader registers a named shader. The first one registered becomes active.
func (s *Scene) AddShader(name string, sh Shader) {
	if _, ok := s.shaders[name]; !ok {
		s.shaderOrder = append(s.shaderOrder, name)
	}
	s.shaders[name] = sh
	if s.shader == nil {
		s.shader = sh
	}
}

// UseShader activates a registered shader
func (s *Scene) UseShader(name string) error {
	sh, ok := s.shaders[name]
	if !ok {
		return fmt.Errorf("shader %q: %w", name, ErrMissingShader)
	}
	s.shader = sh
	return nil
}

func (s *Scene) Shader(name string) Shader { return s.shaders[name] }

// Update steps every enabled entity depth first, components before children
func (s *Scene) Update(dt float64) {
	for _, e := range s.entities {
		e.update(dt)
	}
}

// HandleKey delivers ev to every KeyHandler in the scene
func (s *Scene) HandleKey(ev KeyEvent) {
	for _, e := range s.entities {
		e.handleKey(ev)
	}
}

// Render draws one frame. Without a main camera or an active shader the frame
// is skipped and the cause is returned; each distinct cause is logged once.
func (s *Scene) Render() error {
	if s.mainCamera == nil {
		return s.skipFrame(ErrMissingMainCamera)
	}
	if s.shader == nil {
		return s.skipFrame(ErrMissingShader)
	}
	s.lastDiag = nil

	rs := &RenderState{
		View:       s.mainCamera.ViewMatrix(),
		Projection: s.mainCamera.ProjectionMatrix(),
		Shader:     s.shader,
		shaders:    s.shaders,
	}
	if c, ok := s.mainCamera.(Component); ok && c.Entity() != nil {
		rs.CameraPos = c.Entity().WorldPosition()
	}
	if s.mainLight != nil {
		l := s.mainLight.Light()
		rs.MainLight = &l
	}
	for _, pl := range s.pointLights {
		rs.Lights = append(rs.Lights, pl.Light())
	}

	for _, e := range s.entities {
		s.renderEntity(e, rs)
	}

	for _, name := range s.shaderOrder {
		f, ok := s.shaders[name].(Flusher)
		if !ok {
			continue
		}
		if err := f.Flush(); err != nil {
			s.log.Error("Flush failed", zap.String("shader", name), zap.Error(err))
		}
	}
	return nil
}

func (s *Scene) renderEntity(e *Entity, rs *RenderState) {
	if e.disabled {
		return
	}
	rs.Model = e.WorldTransform()
	for _, c := range e.components {
		r, ok := c.(Renderable)
		if !ok {
			continue
		}
		if err := r.Render(rs); err != nil {
			s.log.Warn("Render failed",
				zap.String("entity", e.Name),
				zap.Stringer("component", c.Type()),
				zap.Error(err))
		}
	}
	for _, ch := range e.children {
		s.renderEntity(ch, rs)
	}
}

func (s *Scene) skipFrame(cause error) error {
	if !errors.Is(s.lastDiag, cause) {
		s.log.Warn("Skipping frame", zap.Error(cause))
		s.lastDiag = cause
	}
	return cause
}

// LastDiagnostic returns the cause of the most recent skipped frame, or nil
// once a frame renders again.
func (s *Scene) LastDiagnostic() error { return s.lastDiag }
