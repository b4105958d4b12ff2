package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// on-disk layout, vectors and colors are flattened into numeric fields
type record struct {
	RevealInterval    int     `yaml:"reveal_interval_ms"`
	JitterBound       int     `yaml:"jitter_bound_ms"`
	BlinkInterval     int     `yaml:"blink_interval_ms"`
	AdvanceKey        string  `yaml:"advance_key"`
	BackgroundOffsetX float64 `yaml:"background_offset_x"`
	BackgroundOffsetY float64 `yaml:"background_offset_y"`
	TextOffsetX       float64 `yaml:"text_offset_x"`
	TextOffsetY       float64 `yaml:"text_offset_y"`
	NextViewOffsetX   float64 `yaml:"next_view_offset_x"`
	NextViewOffsetY   float64 `yaml:"next_view_offset_y"`
	FontColorR        int     `yaml:"font_color_r"`
	FontColorG        int     `yaml:"font_color_g"`
	FontColorB        int     `yaml:"font_color_b"`
	FontColorA        int     `yaml:"font_color_a"`
}

var keyNames map[ebiten.Key]string
var keysByName map[string]ebiten.Key

func init() {
	keyNames = make(map[ebiten.Key]string, int(ebiten.KeyMax)+1)
	keysByName = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		name := key.String()
		keyNames[key] = name
		if _, taken := keysByName[name]; !taken {
			keysByName[name] = key
		}
	}
}

// Returns the key with the given name, as reported by [ebiten.Key.String]().
func KeyByName(name string) (ebiten.Key, bool) {
	key, found := keysByName[name]
	return key, found
}

// Writes the config to the given path as YAML. Fonts and images
// are never stored; they must be attached again after [Load]().
func (self Config) Save(path string) error {
	rec := record{
		RevealInterval:    self.RevealInterval,
		JitterBound:       self.JitterBound,
		BlinkInterval:     self.BlinkInterval,
		AdvanceKey:        self.AdvanceKey.String(),
		BackgroundOffsetX: self.BackgroundOffset.X,
		BackgroundOffsetY: self.BackgroundOffset.Y,
		TextOffsetX:       self.TextOffset.X,
		TextOffsetY:       self.TextOffset.Y,
		NextViewOffsetX:   self.NextViewOffset.X,
		NextViewOffsetY:   self.NextViewOffset.Y,
		FontColorR:        int(self.FontColor.R),
		FontColorG:        int(self.FontColor.G),
		FontColorB:        int(self.FontColor.B),
		FontColorA:        int(self.FontColor.A),
	}

	encoded, err := yaml.Marshal(&rec)
	if err != nil {
		return &Error{Op: "save", Path: path, Err: fmt.Errorf("encode settings: %w", err)}
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Reads a config previously written by [Config.Save]().
//
// Read failures are returned as an [*Error] wrapping the
// underlying I/O error. Files that can be read but don't hold
// a valid config produce an [*Error] wrapping [ErrMalformed].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Op: "load", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, malformed(path, "empty file")
	}

	var rec record
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rec); err != nil {
		return Config{}, malformed(path, err.Error())
	}

	key, found := KeyByName(rec.AdvanceKey)
	if !found {
		return Config{}, malformed(path, fmt.Sprintf("unknown advance key %q", rec.AdvanceKey))
	}
	fontColor, err := rgbaFromChannels(rec.FontColorR, rec.FontColorG, rec.FontColorB, rec.FontColorA)
	if err != nil {
		return Config{}, malformed(path, err.Error())
	}

	cfg := Config{
		RevealInterval:   rec.RevealInterval,
		JitterBound:      rec.JitterBound,
		BlinkInterval:    rec.BlinkInterval,
		AdvanceKey:       key,
		BackgroundOffset: ebimath.V(rec.BackgroundOffsetX, rec.BackgroundOffsetY),
		TextOffset:       ebimath.V(rec.TextOffsetX, rec.TextOffsetY),
		NextViewOffset:   ebimath.V(rec.NextViewOffsetX, rec.NextViewOffsetY),
		FontColor:        fontColor,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, malformed(path, err.Error())
	}
	return cfg, nil
}

func malformed(path string, detail string) *Error {
	return &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: %s", ErrMalformed, detail)}
}

func rgbaFromChannels(r, g, b, a int) (color.RGBA, error) {
	for _, channel := range [4]int{r, g, b, a} {
		if channel < 0 || channel > 255 {
			return color.RGBA{}, fmt.Errorf("color channel %d outside [0, 255]", channel)
		}
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
