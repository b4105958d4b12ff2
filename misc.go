package monologue

import (
	"errors"

	"github.com/edwinsyarief/monologue/utils"
)

// Height of the background created by [NewDefaultSettings]().
const DefaultBackgroundHeight = 150

// Side of the square advance icon created by [NewDefaultSettings]().
const DefaultNextViewSize = 10

// Colors of the assets created by [NewDefaultSettings]().
var (
	DefaultBackgroundColor = utils.RGBA(160, 160, 160, 160)
	DefaultNextViewColor   = utils.RGB(0, 0, 0)
)

// Returned by [Presenter.SetPages]() when no pages are given.
var ErrNoPages = errors.New("monologue: a session needs at least one page")

// --- errors ---
const nilSettings = "monologue: presenter settings can't be nil"
const missingFont = "monologue: can't draw dialogue text without a font, attach one with Settings.WithAssets()"
