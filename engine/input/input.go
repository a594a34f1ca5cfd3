// Package input polls the ebiten keyboard and turns it into engine key events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/arc-engine/engine/core"
)

// Auto-repeat timing in ticks
const (
	DefaultRepeatDelay    = 15
	DefaultRepeatInterval = 3
)

// Binding maps one backend key to an engine key
type Binding struct {
	From ebiten.Key
	To   core.Key
}

// DefaultBindings covers the keys the game reacts to
var DefaultBindings = []Binding{
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyP, core.KeyP},
	{ebiten.KeyR, core.KeyR},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyF1, core.KeyF1},
	{ebiten.KeyF2, core.KeyF2},
}

// KeyState is the per-frame keyboard snapshot events are derived from
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	// Duration is how many ticks k has been held, 0 when up
	Duration(k ebiten.Key) int
	Pressed(k ebiten.Key) bool
}

// ebitenState reads the live keyboard
type ebitenState struct{}

func (ebitenState) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenState) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenState) Duration(k ebiten.Key) int      { return inpututil.KeyPressDuration(k) }
func (ebitenState) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// Keyboard produces press, repeat and release events once per tick
type Keyboard struct {
	Bindings       []Binding
	RepeatDelay    int
	RepeatInterval int

	state KeyState
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings:       DefaultBindings,
		RepeatDelay:    DefaultRepeatDelay,
		RepeatInterval: DefaultRepeatInterval,
		state:          ebitenState{},
	}
}

// Poll returns this tick's events in binding order
func (k *Keyboard) Poll() []core.KeyEvent {
	return Events(k.state, k.Bindings, k.RepeatDelay, k.RepeatInterval)
}

// Events derives key events from a snapshot. A held key repeats once it has
// been down for more than delay ticks, then every interval ticks.
func Events(s KeyState, bindings []Binding, delay, interval int) []core.KeyEvent {
	mods := modifiers(s)
	var out []core.KeyEvent
	for _, b := range bindings {
		var action core.KeyAction
		switch {
		case s.JustPressed(b.From):
			action = core.ActionPress
		case s.JustReleased(b.From):
			action = core.ActionRelease
		case repeats(s.Duration(b.From), delay, interval):
			action = core.ActionRepeat
		default:
			continue
		}
		out = append(out, core.KeyEvent{Key: b.To, Action: action, Mods: mods})
	}
	return out
}

func repeats(held, delay, interval int) bool {
	if held <= delay || interval <= 0 {
		return false
	}
	return (held-delay)%interval == 0
}

func modifiers(s KeyState) core.ModifierKey {
	var m core.ModifierKey
	if s.Pressed(ebiten.KeyShift) {
		m |= core.ModShift
	}
	if s.Pressed(ebiten.KeyControl) {
		m |= core.ModControl
	}
	if s.Pressed(ebiten.KeyAlt) {
		m |= core.ModAlt
	}
	return m
}
