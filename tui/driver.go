package tui

import (
	"context"
	"time"

	"github.com/edwinsyarief/monologue"
	"github.com/gdamore/tcell/v2"
)

// WallClock measures elapsed time between polls with the system
// clock. Sub-millisecond remainders carry over to the next poll.
type WallClock struct {
	last time.Time
}

func (self *WallClock) ElapsedMillis() int {
	now := time.Now()
	if self.last.IsZero() {
		self.last = now
		return 0
	}
	millis := now.Sub(self.last).Milliseconds()
	self.last = self.last.Add(time.Duration(millis) * time.Millisecond)
	return int(millis)
}

// Driver runs a presenter session on a terminal screen: key events
// feed the presenter input and a ticker updates and redraws it.
type Driver struct {
	Screen        tcell.Screen
	Presenter     *monologue.Presenter
	Renderer      *Renderer
	Input         *KeyInput
	FrameInterval time.Duration
}

func NewDriver(screen tcell.Screen, presenter *monologue.Presenter) *Driver {
	return &Driver{
		Screen:        screen,
		Presenter:     presenter,
		Renderer:      NewRenderer(),
		Input:         NewKeyInput(),
		FrameInterval: 16 * time.Millisecond, // ~60 FPS
	}
}

// Runs until the presenter session ends, Ctrl+C is pressed or the
// context is done. The presenter's input and clock are replaced by
// terminal based ones. Returns nil when the session ends normally.
//
// Events are polled on a separate goroutine that is stopped before
// Run returns, so Run can be called again on the same screen.
func (self *Driver) Run(ctx context.Context) error {
	self.Presenter.SetInput(self.Input)
	self.Presenter.SetClock(&WallClock{})

	ticker := time.NewTicker(self.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go self.Screen.ChannelEvents(events, quit)
	defer func() {
		close(quit)
		for range events {
			// wait for ChannelEvents to close the channel
		}
	}()

	// nil once the screen is finalized
	var incoming <-chan tcell.Event = events

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-incoming:
			if !ok {
				incoming = nil
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return context.Canceled
				}
				self.Input.HandleEvent(ev)
			case *tcell.EventResize:
				self.Screen.Sync()
			}

		case <-ticker.C:
			active := self.Presenter.UpdateFrame()
			self.Screen.Clear()
			self.Renderer.Draw(self.Screen, self.Presenter.CurrentSnapshot())
			self.Screen.Show()
			if !active {
				return nil
			}
		}
	}
}
