// seehuhn.de/go/pathsprite - animate cut-out image regions along drawn paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package style holds the user-facing drawing options: outline colour,
// thickness and line style, zoom, and the loop setting for playback.
package style

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("style: invalid config")

// Limits for the numeric options.
const (
	MinThickness = 1
	MaxThickness = 10
	MinZoom      = 1
	MaxZoom      = 500
)

// Loop controls repeated playback.
type Loop struct {
	Enabled bool `toml:"enabled"`
	Count   int  `toml:"count"`
}

// Iterations returns how often the path is played: Count when looping
// is enabled, once otherwise.
func (l Loop) Iterations() int {
	if !l.Enabled {
		return 1
	}
	return max(l.Count, 1)
}

// Config is a snapshot of the style controls.
type Config struct {
	OutlineColor     string    `toml:"outline_color"`
	OutlineThickness int       `toml:"outline_thickness"`
	LineStyle        LineStyle `toml:"line_style"`
	ShowOutline      bool      `toml:"show_outline"`
	Zoom             int       `toml:"zoom"` // percent
	Loop             Loop      `toml:"loop"`
}

// Default returns the settings used before the user changes anything.
func Default() Config {
	return Config{
		OutlineColor:     "#000000",
		OutlineThickness: 2,
		LineStyle:        Solid,
		ShowOutline:      true,
		Zoom:             100,
		Loop:             Loop{Enabled: false, Count: 1},
	}
}

// Validate checks that all fields are within range.
func (c Config) Validate() error {
	var errs []error
	if _, err := colorful.Hex(c.OutlineColor); err != nil {
		errs = append(errs, fmt.Errorf("%w: outline color %q", ErrInvalid, c.OutlineColor))
	}
	if c.OutlineThickness < MinThickness || c.OutlineThickness > MaxThickness {
		errs = append(errs, fmt.Errorf("%w: outline thickness %d not in [%d, %d]",
			ErrInvalid, c.OutlineThickness, MinThickness, MaxThickness))
	}
	if !c.LineStyle.valid() {
		errs = append(errs, fmt.Errorf("%w: line style %d", ErrInvalid, int(c.LineStyle)))
	}
	if c.Zoom < MinZoom || c.Zoom > MaxZoom {
		errs = append(errs, fmt.Errorf("%w: zoom %d%% not in [%d, %d]", ErrInvalid, c.Zoom, MinZoom, MaxZoom))
	}
	if c.Loop.Count < 1 {
		errs = append(errs, fmt.Errorf("%w: loop count %d", ErrInvalid, c.Loop.Count))
	}
	return errors.Join(errs...)
}

// Normalize returns a copy of c with every field forced into range.
// Unparseable colours and unknown line styles revert to the defaults.
func (c Config) Normalize() Config {
	def := Default()
	if _, err := colorful.Hex(c.OutlineColor); err != nil {
		c.OutlineColor = def.OutlineColor
	}
	c.OutlineThickness = min(max(c.OutlineThickness, MinThickness), MaxThickness)
	if !c.LineStyle.valid() {
		c.LineStyle = def.LineStyle
	}
	c.Zoom = min(max(c.Zoom, MinZoom), MaxZoom)
	c.Loop.Count = max(c.Loop.Count, 1)
	return c
}

// Color returns the outline colour.  An invalid hex string gives black.
func (c Config) Color() color.Color {
	col, err := colorful.Hex(c.OutlineColor)
	if err != nil {
		return color.Black
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Thickness returns the outline thickness in canvas pixels.
func (c Config) Thickness() float64 {
	return float64(c.OutlineThickness)
}
