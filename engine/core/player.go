package core

// Points awarded per brick event
const (
	ScoreBrickHit    = 10
	ScoreBrickBroken = 50
)

// Player tracks score and remaining lives
type Player struct {
	Name         string
	Score        int
	Lives        int
	BricksBroken int
}

func NewPlayer(name string, lives int) *Player {
	return &Player{Name: name, Lives: lives}
}

// Reset starts a new game with lives and a clean score
func (p *Player) Reset(lives int) {
	p.Score, p.Lives, p.BricksBroken = 0, lives, 0
}

// Defeated returns true once all lives are spent
func (p *Player) Defeated() bool {
	return p.Lives <= 0
}

// LoseLife removes a life and reports whether the player is now defeated
func (p *Player) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Defeated()
}

// Listen wires the player's score and lives to bus events. Game over is
// announced on the bus when the last life is lost.
func (p *Player) Listen(bus *EventBus) {
	bus.On(EvtBrickHit, func(Event) {
		p.Score += ScoreBrickHit
	})
	bus.On(EvtBrickBroken, func(Event) {
		p.Score += ScoreBrickBroken
		p.BricksBroken++
	})
	bus.On(EvtBallLost, func(e Event) {
		if p.LoseLife() {
			bus.Emit(Event{Type: EvtGameOver, Tick: e.Tick, Payload: p})
		}
	})
}
