package monologue

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/monologue/config"
	"github.com/edwinsyarief/monologue/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Settings bundles a serializable [config.Config] with the
// assets needed to draw the dialogue box.
//
// The background size is captured when the settings are created
// and is used to anchor the advance icon to the bottom-right corner
// of the box. Settings must not be modified while a presenter
// session is running, but they can be shared between presenters.
type Settings struct {
	config.Config

	Font       text.Face
	Background *ebiten.Image
	NextView   *ebiten.Image

	backgroundSize ebimath.Vector
}

// Creates settings with default assets: a translucent background
// as wide as the viewport and [DefaultBackgroundHeight] tall,
// anchored to the bottom of the screen, and a small solid square
// as the advance icon.
func NewDefaultSettings(font text.Face, viewportWidth, viewportHeight int) *Settings {
	if viewportWidth < 1 || viewportHeight < 1 {
		panic("viewport size must be at least (1, 1)")
	}
	background := utils.SolidImage(viewportWidth, DefaultBackgroundHeight, DefaultBackgroundColor)
	nextView := utils.SolidImage(DefaultNextViewSize, DefaultNextViewSize, DefaultNextViewColor)
	settings := NewSettings(font, background, nextView)
	settings.BackgroundOffset = defaultBackgroundOffset(viewportHeight)
	return settings
}

// Creates settings with the given assets and default config values.
func NewSettings(font text.Face, background, nextView *ebiten.Image) *Settings {
	return NewSettingsWithConfig(config.Default(), font, background, nextView)
}

// Combines a config, typically obtained through [config.Load](),
// with freshly loaded assets. Any of the assets can be nil, but
// the presenter can't draw text without a font.
func NewSettingsWithConfig(cfg config.Config, font text.Face, background, nextView *ebiten.Image) *Settings {
	return &Settings{
		Config:         cfg,
		Font:           font,
		Background:     background,
		NextView:       nextView,
		backgroundSize: utils.ImageSize(background),
	}
}

// Loads the config stored at the given path. The returned
// settings have no font or assets; see [Settings.WithAssets]().
func LoadSettings(path string) (*Settings, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSettingsWithConfig(cfg, nil, nil, nil), nil
}

// Returns a copy of the settings with the given assets attached.
// The background size is recomputed from the new background.
func (self *Settings) WithAssets(font text.Face, background, nextView *ebiten.Image) *Settings {
	return NewSettingsWithConfig(self.Config, font, background, nextView)
}

// Returns the background size captured at construction time.
func (self *Settings) BackgroundSize() ebimath.Vector {
	return self.backgroundSize
}

// Returns the position of the advance icon: the bottom-right
// corner of the background, inset by NextViewOffset.
func (self *Settings) NextViewPosition() ebimath.Vector {
	return ebimath.V(
		self.BackgroundOffset.X+self.backgroundSize.X-self.NextViewOffset.X,
		self.BackgroundOffset.Y+self.backgroundSize.Y-self.NextViewOffset.Y,
	)
}

// Returns the position where the dialogue text starts.
func (self *Settings) TextPosition() ebimath.Vector {
	return ebimath.V(
		self.BackgroundOffset.X+self.TextOffset.X,
		self.BackgroundOffset.Y+self.TextOffset.Y,
	)
}

func defaultBackgroundOffset(viewportHeight int) ebimath.Vector {
	return ebimath.V(0, float64(viewportHeight-DefaultBackgroundHeight))
}
