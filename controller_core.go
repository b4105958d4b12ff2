package monologue

import (
	"log/slog"

	"github.com/edwinsyarief/monologue/jitter"
)

type controller struct {
	settings *Settings

	// session state
	pages        []string // nil when no session is active
	page         []rune   // runes of pages[pageIndex]
	pageIndex    int
	revealed     int
	pageComplete bool
	prevPressed  bool
	pacer        pacer

	// collaborators
	sampler  jitter.Sampler
	input    Input
	clock    Clock
	listener Listener
	logger   *slog.Logger
}

// --- session ---

func (self *controller) setPages(pages []string) error {
	if len(pages) == 0 {
		self.logger.Warn("rejected dialogue session without pages")
		return ErrNoPages
	}

	self.pages = append(make([]string, 0, len(pages)), pages...)
	self.logger.Debug("dialogue session started", slog.Int("pages", len(pages)))
	self.loadPage(0)
	return nil
}

func (self *controller) loadPage(index int) {
	self.pageIndex = index
	self.page = []rune(self.pages[index])
	self.revealed = 0
	self.pageComplete = false
	self.pacer.reset()
	if len(self.page) == 0 {
		self.completePage()
	}
}

func (self *controller) endSession() {
	self.logger.Debug("dialogue session ended", slog.Int("pages", len(self.pages)))
	self.pages = nil
	self.page = nil
	self.pageIndex = 0
	self.revealed = 0
	self.pageComplete = false
	self.pacer.reset()
	self.listener.SessionEnded()
}

// --- update ---

func (self *controller) update(elapsedMillis int, pressed bool) bool {
	if self.pages == nil {
		self.prevPressed = pressed
		return false
	}
	if elapsedMillis < 0 {
		self.logger.Warn("ignored dialogue tick with negative elapsed time", slog.Int("elapsed_ms", elapsedMillis))
		return true
	}

	// the advance key only acts on the press edge
	triggered := pressed && !self.prevPressed
	self.prevPressed = pressed
	if triggered {
		return self.advance()
	}

	cfg := &self.settings.Config
	self.pacer.elapse(elapsedMillis)
	if !self.pacer.due(cfg.RevealInterval) {
		return true
	}

	if self.revealed < len(self.page) {
		if cfg.IsInstant() {
			self.revealAll()
		} else {
			self.revealNext()
		}
	} else if cfg.BlinkInterval > 0 {
		self.pageComplete = !self.pageComplete
		self.pacer.rewind(cfg.BlinkInterval, cfg.RevealInterval)
	}
	return true
}

func (self *controller) advance() bool {
	// skip to the end of the page first
	if self.revealed < len(self.page) {
		self.revealAll()
		return true
	}

	if self.pageIndex >= len(self.pages)-1 {
		self.endSession()
		return false
	}

	self.loadPage(self.pageIndex + 1)
	self.logger.Debug("dialogue page advanced", slog.Int("page", self.pageIndex))
	return true
}

func (self *controller) revealNext() {
	char := self.page[self.revealed]
	self.revealed += 1
	self.pacer.resample(self.sampler, self.settings.JitterBound)
	self.pacer.restart()
	self.listener.CharRevealed(self.pageIndex, char)
	if self.revealed == len(self.page) {
		self.completePage()
	}
}

func (self *controller) revealAll() {
	self.revealed = len(self.page)
	self.pacer.restart()
	self.completePage()
}

func (self *controller) completePage() {
	self.pageComplete = true
	self.pacer.rewind(self.settings.BlinkInterval, self.settings.RevealInterval)
	self.listener.PageCompleted(self.pageIndex)
}

// --- queries ---

func (self *controller) snapshot() Snapshot {
	if self.pages == nil {
		return Snapshot{}
	}
	return Snapshot{
		Text:         string(self.page[:self.revealed]),
		PageComplete: self.pageComplete,
		Page:         self.pageIndex,
		Pages:        len(self.pages),
		Active:       true,
	}
}

// --- collaborators ---

func (self *controller) getInternalInput() Input {
	if self.input != nil {
		return self.input
	}
	return defaultInput
}

func (self *controller) getInternalClock() Clock {
	if self.clock == nil {
		self.clock = &tpsClock{}
	}
	return self.clock
}
