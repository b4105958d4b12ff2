package monologue

import (
	"log/slog"

	"github.com/edwinsyarief/monologue/jitter"
)

// --- presenter ---

// A typewriter dialogue box. Given a sequence of pages, the
// presenter reveals the characters of each page over time,
// waits for the advance key and moves on to the next page,
// until the last page has been acknowledged.
//
// Presenters are driven from a single goroutine, once per
// tick, through [Presenter.Update]() or [Presenter.UpdateFrame]().
// Each presenter owns its session state and jitter sampler, so
// multiple presenters can run side by side.
type Presenter struct {
	controller
}

// Creates a presenter for the given settings. The settings must
// not be modified while a session is active.
//
// Panics if the settings are nil or hold an invalid config.
func NewPresenter(settings *Settings) *Presenter {
	if settings == nil {
		panic(nilSettings)
	}
	if err := settings.Validate(); err != nil {
		panic("monologue: invalid settings: " + err.Error())
	}

	var presenter Presenter
	presenter.settings = settings
	presenter.sampler = jitter.NewRandomFromTime()
	presenter.listener = nopListener{}
	presenter.logger = discardLogger
	return &presenter
}

// Starts a new session with the given pages, discarding any
// session in progress. Returns [ErrNoPages] and leaves the
// current state untouched if no pages are given.
//
// A held advance key carries over to the new session: it has
// to be released before it can advance again.
func (self *Presenter) SetPages(pages []string) error {
	return self.setPages(pages)
}

// Advances the presenter by the given number of milliseconds.
// advancePressed is the current state of the advance key; the
// previous state is tracked internally so that holding the key
// only advances once.
//
// Returns whether a session is still active. Ticks with negative
// elapsed time are ignored.
func (self *Presenter) Update(elapsedMillis int, advancePressed bool) bool {
	return self.update(elapsedMillis, advancePressed)
}

// Equivalent to [Presenter.Update](), but reading the elapsed
// time from the presenter's [Clock] and the advance key state
// from its [Input]. Meant to be called from [ebiten.Game].Update().
func (self *Presenter) UpdateFrame() bool {
	elapsed := self.getInternalClock().ElapsedMillis()
	pressed := self.getInternalInput().IsPressed(self.settings.AdvanceKey)
	return self.update(elapsed, pressed)
}

// Returns whether a session is active.
func (self *Presenter) IsActive() bool {
	return self.pages != nil
}

// Returns what should currently be displayed. When no session
// is active, the zero [Snapshot] is returned.
func (self *Presenter) CurrentSnapshot() Snapshot {
	return self.snapshot()
}

// Returns the settings given to [NewPresenter]().
func (self *Presenter) Settings() *Settings {
	return self.settings
}

// --- snapshot ---

// The renderable state of a presenter on a given tick.
type Snapshot struct {
	// The revealed part of the current page.
	Text string

	// Whether the advance indicator should be drawn. Toggles
	// on each blink while the page is fully revealed.
	PageComplete bool

	// Current page index and total number of pages.
	Page  int
	Pages int

	// False for the zero snapshot returned when no session is active.
	Active bool
}

// --- collaborators ---

// Sets the sampler used for the random delay after each revealed
// character. Passing nil restores a time seeded [jitter.Random].
// Use [jitter.NewRandom]() with a fixed seed for reproducible pacing.
func (self *Presenter) SetSampler(sampler jitter.Sampler) {
	if sampler == nil {
		sampler = jitter.NewRandomFromTime()
	}
	self.sampler = sampler
}

// Sets the input used by [Presenter.UpdateFrame](). By default
// the input is nil and keys are read with [ebiten.IsKeyPressed]().
func (self *Presenter) SetInput(input Input) {
	self.input = input
}

// Sets the clock used by [Presenter.UpdateFrame](). By default
// the clock is nil and the elapsed time is derived from [ebiten.TPS]().
func (self *Presenter) SetClock(clock Clock) {
	self.clock = clock
}

// Sets the listener notified about revealed characters, completed
// pages and finished sessions. Passing nil disables notifications.
func (self *Presenter) SetListener(listener Listener) {
	if listener == nil {
		listener = nopListener{}
	}
	self.listener = listener
}

// Sets the logger for session lifecycle messages. Passing nil
// discards them, which is also the default.
func (self *Presenter) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	self.logger = logger
}
