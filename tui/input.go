package tui

import (
	"strings"
	"time"
	"unicode"

	"github.com/edwinsyarief/monologue/config"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

// Default for [KeyInput.ReleaseDelay]. Longer than the initial
// auto-repeat delay of common terminals and desktops (500-660ms).
const DefaultReleaseDelay = 700 * time.Millisecond

// KeyInput adapts tcell key events to the presenter's Input.
//
// Terminals don't report key releases. A key counts as held until
// no event for it arrives within ReleaseDelay, so the auto-repeat
// events of a held key read as a single press. The flip side is
// that two taps closer than ReleaseDelay also merge into one press.
type KeyInput struct {
	// How long a key stays held after its last event. When zero,
	// each event is a single press consumed by the next IsPressed()
	// poll for the key, and auto-repeat shows up as repeated presses.
	ReleaseDelay time.Duration

	lastSeen map[ebiten.Key]time.Time
	now      func() time.Time
}

func NewKeyInput() *KeyInput {
	return &KeyInput{
		ReleaseDelay: DefaultReleaseDelay,
		lastSeen:     make(map[ebiten.Key]time.Time),
		now:          time.Now,
	}
}

// Records the key carried by the event. Returns false for events
// that aren't keys or keys without an ebiten equivalent.
func (self *KeyInput) HandleEvent(ev tcell.Event) bool {
	keyEvent, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	key, ok := KeyFromEvent(keyEvent)
	if !ok {
		return false
	}
	self.lastSeen[key] = self.now()
	return true
}

// Reports whether the key is held: an event for it arrived less
// than ReleaseDelay ago, or, without a delay, since the last poll.
func (self *KeyInput) IsPressed(key ebiten.Key) bool {
	seen, found := self.lastSeen[key]
	if !found {
		return false
	}
	if self.ReleaseDelay > 0 && self.now().Sub(seen) < self.ReleaseDelay {
		return true
	}
	delete(self.lastSeen, key)
	return self.ReleaseDelay <= 0
}

var specialKeys = map[tcell.Key]ebiten.Key{
	tcell.KeyEnter:      ebiten.KeyEnter,
	tcell.KeyTab:        ebiten.KeyTab,
	tcell.KeyEscape:     ebiten.KeyEscape,
	tcell.KeyBackspace:  ebiten.KeyBackspace,
	tcell.KeyBackspace2: ebiten.KeyBackspace,
	tcell.KeyDelete:     ebiten.KeyDelete,
	tcell.KeyUp:         ebiten.KeyArrowUp,
	tcell.KeyDown:       ebiten.KeyArrowDown,
	tcell.KeyLeft:       ebiten.KeyArrowLeft,
	tcell.KeyRight:      ebiten.KeyArrowRight,
	tcell.KeyHome:       ebiten.KeyHome,
	tcell.KeyEnd:        ebiten.KeyEnd,
	tcell.KeyPgUp:       ebiten.KeyPageUp,
	tcell.KeyPgDn:       ebiten.KeyPageDown,
}

// Maps a tcell key event to the ebiten key with the same meaning.
// Only named keys, space, letters and digits are supported.
func KeyFromEvent(ev *tcell.EventKey) (ebiten.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		key, found := specialKeys[ev.Key()]
		return key, found
	}

	r := ev.Rune()
	switch {
	case r == ' ':
		return ebiten.KeySpace, true
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return config.KeyByName(strings.ToUpper(string(r)))
	case r >= '0' && r <= '9':
		return config.KeyByName("Digit" + string(r))
	default:
		return 0, false
	}
}
