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

package media

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"
)

// ErrNoFrames is returned when a recording ends before any frame was
// added.
var ErrNoFrames = errors.New("media: recording has no frames")

// DefaultDelay is the time between frames, in 1/100 s.
const DefaultDelay = 2

// framePalette is the web-safe palette plus a transparent entry for the
// canvas background.
var framePalette = func() color.Palette {
	p := make(color.Palette, 0, len(palette.WebSafe)+1)
	p = append(p, palette.WebSafe...)
	return append(p, color.Transparent)
}()

// GIF records frames into an animated GIF.  It has the methods of the
// pathsprite Sink interface.
type GIF struct {
	w io.Writer

	// Delay is the time between frames in 1/100 s.  Zero means
	// DefaultDelay.
	Delay int

	// LoopCount is passed to the GIF encoder: 0 repeats forever, -1
	// plays once.
	LoopCount int

	bounds image.Rectangle
	anim   gif.GIF
}

// NewGIF returns a recorder which writes to w when the recording ends.
func NewGIF(w io.Writer) *GIF {
	return &GIF{w: w}
}

// Begin starts a new recording of width×height frames.
func (g *GIF) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("media: invalid frame size %dx%d", width, height)
	}
	g.bounds = image.Rect(0, 0, width, height)
	g.anim = gif.GIF{LoopCount: g.LoopCount}
	return nil
}

// Frame adds a copy of img, dithered to a fixed palette.
func (g *GIF) Frame(img *image.RGBA) error {
	if g.bounds.Empty() {
		return errors.New("media: Frame called before Begin")
	}
	dst := image.NewPaletted(g.bounds, framePalette)
	draw.FloydSteinberg.Draw(dst, g.bounds, img, img.Rect.Min)

	delay := g.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	g.anim.Image = append(g.anim.Image, dst)
	g.anim.Delay = append(g.anim.Delay, delay)
	g.anim.Disposal = append(g.anim.Disposal, gif.DisposalNone)
	return nil
}

// Frames returns the number of frames recorded so far.
func (g *GIF) Frames() int {
	return len(g.anim.Image)
}

// End encodes the recording.
func (g *GIF) End() error {
	defer func() {
		g.bounds = image.Rectangle{}
		g.anim = gif.GIF{}
	}()
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	g.anim.Config = image.Config{
		ColorModel: framePalette,
		Width:      g.bounds.Dx(),
		Height:     g.bounds.Dy(),
	}
	if err := gif.EncodeAll(g.w, &g.anim); err != nil {
		return fmt.Errorf("media: encoding gif: %w", err)
	}
	return nil
}
