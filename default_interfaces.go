package monologue

import (
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Reports whether a key is currently held down. The default
// implementation queries [ebiten.IsKeyPressed]().
type Input interface {
	IsPressed(key ebiten.Key) bool
}

// Reports the milliseconds elapsed since the previous call.
// Used by [Presenter.UpdateFrame]().
type Clock interface {
	ElapsedMillis() int
}

// Receives notifications about the progress of a session.
// Methods are invoked synchronously from within the update.
type Listener interface {
	CharRevealed(page int, char rune)
	PageCompleted(page int)
	SessionEnded()
}

var defaultInput Input = ebitenInput{}
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type ebitenInput struct{}

func (ebitenInput) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Derives the elapsed time from the current TPS, carrying
// the fractional milliseconds over to the next tick.
type tpsClock struct {
	carry float64
}

func (self *tpsClock) ElapsedMillis() int {
	var ups float64
	if tps := ebiten.TPS(); tps > 0 {
		ups = float64(tps)
	} else { // ebiten.SyncWithFPS
		ups = ebiten.ActualFPS()
	}
	if ups <= 0 {
		return 0
	}

	millis := 1000.0/ups + self.carry
	whole := int(millis)
	self.carry = millis - float64(whole)
	return whole
}

type nopListener struct{}

func (nopListener) CharRevealed(int, rune) {}
func (nopListener) PageCompleted(int)      {}
func (nopListener) SessionEnded()          {}
