package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

type played struct {
	pcm    []byte
	volume float64
}

type fakePlayer struct {
	calls []played
}

func (f *fakePlayer) Play(pcm []byte, volume float64) {
	f.calls = append(f.calls, played{pcm, volume})
}

func sample(pcm []byte, i int) (int16, int16) {
	l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
	r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
	return l, r
}

func TestBeep(t *testing.T) {
	pcm := Beep(Tone{Freq: 1000, Duration: 10 * time.Millisecond}, 8000)
	require.Len(t, pcm, 80*4)

	l, r := sample(pcm, 0)
	assert.Zero(t, l)
	assert.Equal(t, l, r, "both channels carry the same signal")

	// a quarter period in, the sine peaks under an envelope of 1-2/80
	l, _ = sample(pcm, 2)
	assert.InDelta(t, 32767*(1-2.0/80), float64(l), 1)

	// the envelope fades the tail
	var peakHead, peakTail int16
	for i := 0; i < 8; i++ {
		h, _ := sample(pcm, i)
		tl, _ := sample(pcm, 72+i)
		peakHead = max(peakHead, h)
		peakTail = max(peakTail, tl)
	}
	assert.Greater(t, peakHead, 4*peakTail)

	assert.Empty(t, Beep(Tone{Freq: 440}, 44100))
}

type located struct{ p gem.Vec3f }

func (l located) At() gem.Vec3f { return l.p }

func TestAudioManager(t *testing.T) {
	fp := &fakePlayer{}
	am := newAudioManager(fp, 8000, 0.5, nil)
	assert.Equal(t, 0.5, am.MasterVolume)
	assert.Len(t, am.sounds, len(DefaultTones))

	am.PlaySFX(SndPaddle)
	require.Len(t, fp.calls, 1)
	assert.InDelta(t, 0.4, fp.calls[0].volume, 1e-12)
	assert.Equal(t, am.sounds[SndPaddle], fp.calls[0].pcm)

	am.Listener = gem.V3(0.0, 0.0, 0.0)
	am.PlayAt(SndBrick, gem.V3(15.0, 0.0, 0.0))
	require.Len(t, fp.calls, 2)
	assert.InDelta(t, 0.2, fp.calls[1].volume, 1e-12)

	am.PlayAt(SndBrick, gem.V3(0.0, 0.0, 40.0))
	assert.Len(t, fp.calls, 2, "out of earshot")

	am.SetVolume(3)
	assert.Equal(t, 1.0, am.MasterVolume)
	am.SetVolume(-1)
	am.PlaySFX(SndWin)
	assert.Len(t, fp.calls, 2, "muted")
}

func TestAudioManagerUnknownSound(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	fp := &fakePlayer{}
	am := newAudioManager(fp, 8000, 1, zap.New(obs))
	am.PlaySFX("kazoo")
	assert.Empty(t, fp.calls)
	assert.Equal(t, 1, logs.FilterMessage("Unknown sound").Len())
}

func TestAudioManagerListen(t *testing.T) {
	fp := &fakePlayer{}
	am := newAudioManager(fp, 8000, 1, nil)
	bus := core.NewEventBus()
	am.Listen(bus)

	bus.Emit(core.Event{Type: core.EvtBrickBroken, Payload: located{gem.V3(0.0, 0.0, 15.0)}})
	bus.Emit(core.Event{Type: core.EvtBallLost})
	bus.Dispatch()

	require.Len(t, fp.calls, 2)
	assert.Equal(t, am.sounds[SndBreak], fp.calls[0].pcm)
	assert.InDelta(t, 0.4, fp.calls[0].volume, 1e-12)
	assert.Equal(t, am.sounds[SndLost], fp.calls[1].pcm)
	assert.InDelta(t, 0.8, fp.calls[1].volume, 1e-12)
}
