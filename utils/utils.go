package utils

import (
	"image/color"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

// Creates an image of the given size filled with a single color.
// Used for the default dialogue background and advance icon.
func SolidImage(width, height int, fillColor color.Color) *ebiten.Image {
	// safety assertions
	if width <= 0 || height <= 0 {
		panic("expected width > 0 and height > 0")
	}

	img := ebiten.NewImage(width, height)
	img.Fill(fillColor)
	return img
}

// Returns the size of the given image as a vector, or the zero
// vector if the image is nil.
func ImageSize(img *ebiten.Image) ebimath.Vector {
	if img == nil {
		return ebimath.V(0, 0)
	}
	bounds := img.Bounds()
	return ebimath.V(float64(bounds.Dx()), float64(bounds.Dy()))
}

// Returns the image options with a GeoM set up to draw the
// given image at the given target coordinates. Example code:
//
//	opts := utils.DrawImageOptionsAt(myImage, ebimath.V(8, 8))
//	canvas.DrawImage(myImage, &opts)
func DrawImageOptionsAt(source *ebiten.Image, position ebimath.Vector) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	origin := source.Bounds().Min // *
	// * origin is not automatically applied when using
	//   an image as source, so we need to add it manually
	opts.GeoM.Translate(position.X+float64(origin.X), position.Y+float64(origin.Y))
	return opts
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}
