// This package provides typing sounds for monologue presenters.
// [Typewriter] implements [monologue.Listener] and plays a short
// click for each revealed character and a bell when a page is
// complete.
package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

// Plays a finite streamer, mixing it with anything already playing.
type Player interface {
	Play(s beep.Streamer)
}

// SpeakerPlayer mixes sounds into the system speaker. Sounds
// played before [SpeakerPlayer.Initialize]() are dropped.
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{mixer: &beep.Mixer{}}
}

// Initializes the speaker. Safe to call multiple times.
func (self *SpeakerPlayer) Initialize() error {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(self.mixer)
	self.initialized = true
	return nil
}

func (self *SpeakerPlayer) Play(s beep.Streamer) {
	self.mu.Lock()
	defer self.mu.Unlock()

	if !self.initialized {
		return
	}
	speaker.Lock()
	self.mixer.Add(s)
	speaker.Unlock()
}

// Stops every sound in progress. The speaker stays initialized.
func (self *SpeakerPlayer) Clear() {
	self.mu.Lock()
	defer self.mu.Unlock()

	if !self.initialized {
		return
	}
	speaker.Lock()
	self.mixer.Clear()
	speaker.Unlock()
}
