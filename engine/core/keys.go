package core

// Key is an engine-level key code, independent of the windowing backend
type Key uint16

const (
	KeyUnknown Key = iota
	KeyA
	KeyD
	KeyP
	KeyR
	KeyS
	KeyW
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
)

// KeyAction is what happened to the key
type KeyAction uint8

const (
	ActionPress KeyAction = iota
	ActionRepeat
	ActionRelease
)

// ModifierKey is a bit set of held modifiers
type ModifierKey uint8

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
)

// KeyEvent is a single keyboard event delivered through the scene
type KeyEvent struct {
	Key    Key
	Action KeyAction
	Mods   ModifierKey
}

// Down reports a press or auto-repeat
func (ev KeyEvent) Down() bool {
	return ev.Action == ActionPress || ev.Action == ActionRepeat
}
