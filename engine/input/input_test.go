package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/1siamBot/arc-engine/engine/core"
)

type fakeState struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	held     map[ebiten.Key]int
}

func newFakeState() *fakeState {
	return &fakeState{
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
		held:     map[ebiten.Key]int{},
	}
}

func (f *fakeState) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f *fakeState) JustReleased(k ebiten.Key) bool { return f.released[k] }
func (f *fakeState) Duration(k ebiten.Key) int      { return f.held[k] }
func (f *fakeState) Pressed(k ebiten.Key) bool      { return f.held[k] > 0 }

func TestEvents(t *testing.T) {
	s := newFakeState()
	s.pressed[ebiten.KeyArrowLeft] = true
	s.held[ebiten.KeyArrowLeft] = 1
	s.released[ebiten.KeyR] = true

	got := Events(s, DefaultBindings, 15, 3)
	assert.Equal(t, []core.KeyEvent{
		{Key: core.KeyR, Action: core.ActionRelease},
		{Key: core.KeyLeft, Action: core.ActionPress},
	}, got, "events follow binding order")

	assert.Empty(t, Events(newFakeState(), DefaultBindings, 15, 3))
}

func TestEventsRepeat(t *testing.T) {
	var repeats []int
	s := newFakeState()
	for tick := 2; tick <= 25; tick++ {
		s.held[ebiten.KeyD] = tick
		if len(Events(s, DefaultBindings, 15, 3)) > 0 {
			repeats = append(repeats, tick)
		}
	}
	assert.Equal(t, []int{18, 21, 24}, repeats)

	s.held[ebiten.KeyD] = 100
	assert.Empty(t, Events(s, DefaultBindings, 15, 0), "a zero interval disables repeat")
}

func TestEventsModifiers(t *testing.T) {
	s := newFakeState()
	s.pressed[ebiten.KeyP] = true
	s.held[ebiten.KeyShift] = 4
	s.held[ebiten.KeyAlt] = 4

	got := Events(s, []Binding{{ebiten.KeyP, core.KeyP}}, 15, 3)
	assert.Equal(t, []core.KeyEvent{{Key: core.KeyP, Action: core.ActionPress, Mods: core.ModShift | core.ModAlt}}, got)
	assert.True(t, got[0].Down())
}

func TestKeyboardDefaults(t *testing.T) {
	k := NewKeyboard()
	assert.Equal(t, DefaultRepeatDelay, k.RepeatDelay)
	assert.Equal(t, DefaultRepeatInterval, k.RepeatInterval)
	assert.Len(t, k.Bindings, len(DefaultBindings))

	s := newFakeState()
	s.pressed[ebiten.KeyEscape] = true
	k.state = s
	assert.Equal(t, []core.KeyEvent{{Key: core.KeyEscape, Action: core.ActionPress}}, k.Poll())
}
