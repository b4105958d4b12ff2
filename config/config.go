// This package defines the serializable part of the dialogue
// presentation settings: pacing values, the advance key, offsets
// and the font color. Assets like fonts and images are not part
// of it; see [monologue.Settings] for the runtime bundle that
// combines a [Config] with them.
package config

import (
	"errors"
	"fmt"
	"image/color"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sentinel value for [Config].RevealInterval that makes every page
// show up in full on the first update.
const InstantReveal = -1

// Default values. See [Default]().
const (
	DefaultRevealInterval = 50
	DefaultTextInset      = 20
	DefaultNextViewInset  = 25
)

// Config holds every setting that can be stored on disk.
// All intervals are expressed in milliseconds.
type Config struct {
	// Time each character takes to be revealed. [InstantReveal]
	// disables character by character pacing.
	RevealInterval int

	// Exclusive upper bound of the random delay added to
	// RevealInterval after each revealed character.
	JitterBound int

	// Period for toggling the "page complete" indicator. Zero
	// keeps the indicator on without blinking.
	BlinkInterval int

	// Key that skips the current page reveal or moves on to
	// the next page.
	AdvanceKey ebiten.Key

	// Position of the dialogue box on screen.
	BackgroundOffset ebimath.Vector

	// Text position, relative to BackgroundOffset.
	TextOffset ebimath.Vector

	// Inset of the advance icon from the bottom-right corner
	// of the background.
	NextViewOffset ebimath.Vector

	FontColor color.RGBA
}

// Returns a config with the default values: 50ms reveal interval,
// no jitter, steady indicator, space as the advance key, zero
// background offset, (20, 20) text offset, (25, 25) icon inset
// and black text.
func Default() Config {
	return Config{
		RevealInterval:   DefaultRevealInterval,
		JitterBound:      0,
		BlinkInterval:    0,
		AdvanceKey:       ebiten.KeySpace,
		BackgroundOffset: ebimath.V(0, 0),
		TextOffset:       ebimath.V(DefaultTextInset, DefaultTextInset),
		NextViewOffset:   ebimath.V(DefaultNextViewInset, DefaultNextViewInset),
		FontColor:        color.RGBA{0, 0, 0, 255},
	}
}

// Returns an error if the config values can't drive a presenter.
func (self Config) Validate() error {
	if self.RevealInterval < InstantReveal {
		return fmt.Errorf("reveal interval must be >= %d, got %d", InstantReveal, self.RevealInterval)
	}
	if self.JitterBound < 0 {
		return fmt.Errorf("jitter bound must be >= 0, got %d", self.JitterBound)
	}
	if self.BlinkInterval < 0 {
		return fmt.Errorf("blink interval must be >= 0, got %d", self.BlinkInterval)
	}
	if _, found := keyNames[self.AdvanceKey]; !found {
		return fmt.Errorf("unknown advance key %d", int(self.AdvanceKey))
	}
	return nil
}

// Returns whether the config reveals whole pages at once.
func (self Config) IsInstant() bool {
	return self.RevealInterval == InstantReveal
}

// --- errors ---

// Wrapped by [Error] when a settings file can be read but
// doesn't contain a valid config.
var ErrMalformed = errors.New("malformed settings data")

// Error records a failed [Config.Save]() or [Load]() together
// with the path involved.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (self *Error) Error() string {
	message := "config " + self.Op + " " + self.Path
	if self.Err == nil {
		return message
	}
	return message + ": " + self.Err.Error()
}

func (self *Error) Unwrap() error {
	return self.Err
}
