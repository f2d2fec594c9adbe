package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 60 * time.Millisecond
	clickVolume     = 0.25

	openClickHz   = 660.0
	closedClickHz = 880.0
)

// Clicker plays a short blip through the speaker when the switch toggles.
// A nil Clicker is a no-op, which is how the sound.enabled config key is
// honored.
type Clicker struct {
	sr beep.SampleRate
}

func NewClicker() (*Clicker, error) {
	sr := clickSampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Clicker{sr: sr}, nil
}

func (c *Clicker) play(closed bool) {
	if c == nil {
		return
	}
	freq := openClickHz
	if closed {
		freq = closedClickHz
	}
	speaker.Play(newBlip(c.sr, freq, clickDuration))
}

// blip is a beep.Streamer producing a linearly decaying sine burst.
type blip struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

func newBlip(sr beep.SampleRate, freq float64, d time.Duration) *blip {
	return &blip{sr: sr, freq: freq, length: sr.N(d)}
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= b.length {
			break
		}
		t := float64(b.pos) / float64(b.sr)
		env := 1 - float64(b.pos)/float64(b.length)
		v := clickVolume * env * math.Sin(2*math.Pi*b.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *blip) Err() error { return nil }
