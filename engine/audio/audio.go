// Package audio plays short synthesized effects in response to game events.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// SoundID identifies a sound effect
type SoundID string

const (
	SndPaddle   SoundID = "paddle"
	SndBrick    SoundID = "brick"
	SndBreak    SoundID = "break"
	SndLost     SoundID = "lost"
	SndReset    SoundID = "reset"
	SndWin      SoundID = "win"
	SndGameOver SoundID = "game_over"
)

// Tone is a sine beep with a linear fade out
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// DefaultTones is the effect table
var DefaultTones = map[SoundID]Tone{
	SndPaddle:   {Freq: 440, Duration: 60 * time.Millisecond},
	SndBrick:    {Freq: 660, Duration: 50 * time.Millisecond},
	SndBreak:    {Freq: 880, Duration: 120 * time.Millisecond},
	SndLost:     {Freq: 150, Duration: 300 * time.Millisecond},
	SndReset:    {Freq: 330, Duration: 40 * time.Millisecond},
	SndWin:      {Freq: 1320, Duration: 400 * time.Millisecond},
	SndGameOver: {Freq: 110, Duration: 500 * time.Millisecond},
}

// maxDist is where positional effects fade to silence
const maxDist = 30.0

// Beep renders t as 16-bit little endian stereo PCM at sampleRate
func Beep(t Tone, sampleRate int) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		s := math.Sin(2*math.Pi*t.Freq*float64(i)/float64(sampleRate)) * env
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[i*4:], v)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], v)
	}
	return pcm
}

// Player starts one buffered effect at volume (0-1)
type Player interface {
	Play(pcm []byte, volume float64)
}

type ebitenPlayer struct {
	ctx *audio.Context
}

func (p ebitenPlayer) Play(pcm []byte, volume float64) {
	pl := p.ctx.NewPlayerFromBytes(pcm)
	pl.SetVolume(volume)
	pl.Play()
}

// AudioManager handles sound effects
type AudioManager struct {
	MasterVolume float64
	SFXVolume    float64
	Listener     gem.Vec3f

	player Player
	sounds map[SoundID][]byte
	log    *zap.Logger
}

// NewAudioManager opens the ebiten audio context. Only one may exist per
// process.
func NewAudioManager(sampleRate int, volume float64, log *zap.Logger) *AudioManager {
	return newAudioManager(ebitenPlayer{ctx: audio.NewContext(sampleRate)}, sampleRate, volume, log)
}

func newAudioManager(p Player, sampleRate int, volume float64, log *zap.Logger) *AudioManager {
	if log == nil {
		log = zap.NewNop()
	}
	am := &AudioManager{
		SFXVolume: 0.8,
		player:    p,
		sounds:    make(map[SoundID][]byte, len(DefaultTones)),
		log:       log,
	}
	am.SetVolume(volume)
	for id, t := range DefaultTones {
		am.sounds[id] = Beep(t, sampleRate)
	}
	return am
}

// PlaySFX plays a sound effect at full distance volume
func (am *AudioManager) PlaySFX(id SoundID) {
	am.play(id, am.SFXVolume*am.MasterVolume)
}

// PlayAt plays a sound effect attenuated by its distance to the listener
func (am *AudioManager) PlayAt(id SoundID, pos gem.Vec3f) {
	am.play(id, am.calcVolume(pos))
}

func (am *AudioManager) play(id SoundID, vol float64) {
	pcm, ok := am.sounds[id]
	if !ok {
		am.log.Warn("Unknown sound", zap.String("sound", string(id)))
		return
	}
	if vol <= 0 {
		return
	}
	am.player.Play(pcm, vol)
}

// calcVolume computes volume based on distance from the listener
func (am *AudioManager) calcVolume(pos gem.Vec3f) float64 {
	dist := pos.Sub(am.Listener).Magnitude()
	if dist >= maxDist {
		return 0
	}
	return (1.0 - dist/maxDist) * am.SFXVolume * am.MasterVolume
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	am.MasterVolume = gem.Clamp(v, 0, 1)
}

// positioned is implemented by event payloads that happen somewhere
type positioned interface {
	At() gem.Vec3f
}

// Listen plays an effect for each game event on bus
func (am *AudioManager) Listen(bus *core.EventBus) {
	cues := map[core.EventType]SoundID{
		core.EvtPaddleHit:   SndPaddle,
		core.EvtBrickHit:    SndBrick,
		core.EvtBrickBroken: SndBreak,
		core.EvtBallLost:    SndLost,
		core.EvtBallReset:   SndReset,
		core.EvtGameWon:     SndWin,
		core.EvtGameOver:    SndGameOver,
	}
	for t, id := range cues {
		bus.On(t, func(e core.Event) {
			if p, ok := e.Payload.(positioned); ok {
				am.PlayAt(id, p.At())
				return
			}
			am.PlaySFX(id)
		})
	}
}
