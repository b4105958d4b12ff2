package sfx

import (
	"math"
	"time"
	"unicode"

	"github.com/gopxl/beep"
)

// Typewriter turns presenter notifications into sounds.
// Whitespace characters are revealed silently.
type Typewriter struct {
	Player Player

	ClickFrequency float64
	ClickDuration  time.Duration
	BellFrequency  float64
	BellDuration   time.Duration
	Volume         float64 // in [0, 1]
}

func NewTypewriter(player Player) *Typewriter {
	return &Typewriter{
		Player:         player,
		ClickFrequency: 1800,
		ClickDuration:  12 * time.Millisecond,
		BellFrequency:  1320,
		BellDuration:   180 * time.Millisecond,
		Volume:         0.3,
	}
}

func (self *Typewriter) CharRevealed(page int, char rune) {
	if unicode.IsSpace(char) {
		return
	}
	self.Player.Play(self.Click())
}

func (self *Typewriter) PageCompleted(page int) {
	self.Player.Play(self.Bell())
}

func (self *Typewriter) SessionEnded() {}

// Returns a new click streamer.
func (self *Typewriter) Click() beep.Streamer {
	return beep.Take(SampleRate.N(self.ClickDuration), NewToneGenerator(SampleRate, self.ClickFrequency, self.ClickDuration, self.Volume))
}

// Returns a new bell streamer.
func (self *Typewriter) Bell() beep.Streamer {
	return beep.Take(SampleRate.N(self.BellDuration), NewToneGenerator(SampleRate, self.BellFrequency, self.BellDuration, self.Volume))
}

// ToneGenerator produces a sine tone with an exponential decay
// that fades out over the given duration.
type ToneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	decay    float64
	volume   float64
	position int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) *ToneGenerator {
	seconds := max(duration.Seconds(), 0.001)
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		decay:  5.0 / seconds, // ~-43dB at the end of the duration
		volume: min(max(volume, 0), 1),
	}
}

func (self *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(self.position) / float64(self.sr)
		sample := self.volume * math.Exp(-self.decay*t) * math.Sin(2*math.Pi*self.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		self.position++
	}
	return len(samples), true
}

func (self *ToneGenerator) Err() error {
	return nil
}
