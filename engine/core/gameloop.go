package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateWon
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	}
	return "unknown"
}

// maxFrameTime caps a single frame to avoid the spiral of death
const maxFrameTime = 0.25

// Stepper is advanced by the loop at a fixed timestep
type Stepper interface {
	Update(dt float64)
}

// GameLoop runs the simulation at a fixed timestep regardless of frame rate
type GameLoop struct {
	Sim       Stepper
	State     GameState
	TickRate  float64 // fixed ticks per second
	TickCount uint64

	// Now is the clock; tests replace it
	Now func() time.Time

	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a paused game loop stepping sim at tickRate
func NewGameLoop(sim Stepper, tickRate float64) *GameLoop {
	gl := &GameLoop{
		Sim:      sim,
		State:    StatePaused,
		TickRate: tickRate,
		Now:      time.Now,
	}
	gl.lastTime = gl.Now()
	return gl
}

// Update should be called every render frame. It runs as many fixed ticks as
// the elapsed time allows and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := gl.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.Sim.Update(dt)
			gl.TickCount++
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	if gl.State == StatePlaying {
		gl.State = StatePaused
	}
}

// TogglePause flips between playing and paused; finished games stay finished
func (gl *GameLoop) TogglePause() {
	switch gl.State {
	case StatePlaying:
		gl.Pause()
	case StatePaused:
		gl.Play()
	}
}

// Finish ends the game in state s
func (gl *GameLoop) Finish(s GameState) {
	gl.State = s
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.TickCount
}
