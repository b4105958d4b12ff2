package monologue

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/monologue/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

// Draws the dialogue box into the given target: the background
// at BackgroundOffset, the revealed text at TextOffset within
// it, and the advance icon while the page complete indicator
// is on. Nothing is drawn if no session is active.
//
// Must only be called from [ebiten.Game].Draw() or equivalent.
func (self *Presenter) Draw(target *ebiten.Image) {
	layout := self.layout()
	if !layout.active {
		return
	}
	settings := self.settings

	if layout.background {
		opts := utils.DrawImageOptionsAt(settings.Background, layout.backgroundAt)
		target.DrawImage(settings.Background, &opts)
	}

	if layout.text != "" {
		if settings.Font == nil {
			panic(missingFont)
		}
		metrics := settings.Font.Metrics()
		var opts text.DrawOptions
		opts.GeoM.Translate(layout.textAt.X, layout.textAt.Y)
		opts.ColorScale.ScaleWithColor(settings.FontColor)
		opts.LineSpacing = metrics.HAscent + metrics.HDescent + metrics.HLineGap
		text.Draw(target, layout.text, settings.Font, &opts)
	}

	if layout.icon {
		opts := utils.DrawImageOptionsAt(settings.NextView, layout.iconAt)
		target.DrawImage(settings.NextView, &opts)
	}
}

// --- layout ---

// What [Presenter.Draw]() puts on screen for the current tick.
type drawLayout struct {
	active bool

	background   bool
	backgroundAt ebimath.Vector

	text   string
	textAt ebimath.Vector

	icon   bool
	iconAt ebimath.Vector
}

func (self *controller) layout() drawLayout {
	if self.pages == nil {
		return drawLayout{}
	}
	settings := self.settings
	return drawLayout{
		active:       true,
		background:   settings.Background != nil,
		backgroundAt: settings.BackgroundOffset,
		text:         string(self.page[:self.revealed]),
		textAt:       settings.TextPosition(),
		icon:         self.pageComplete && settings.NextView != nil,
		iconAt:       settings.NextViewPosition(),
	}
}
