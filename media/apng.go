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
	"io"

	"github.com/kettek/apng"
	"golang.org/x/image/draw"
)

// APNG records frames into an animated PNG.  Unlike [GIF], frames are
// stored without loss of colour.  It has the methods of the pathsprite
// Sink interface.
type APNG struct {
	w io.Writer

	// Delay is the time between frames in 1/100 s.  Zero means
	// DefaultDelay.
	Delay int

	// LoopCount is the number of times the animation is shown.  Zero
	// repeats forever.
	LoopCount uint

	bounds image.Rectangle
	frames []apng.Frame
}

// NewAPNG returns a recorder which writes to w when the recording ends.
func NewAPNG(w io.Writer) *APNG {
	return &APNG{w: w}
}

// Begin starts a new recording of width×height frames.
func (a *APNG) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("media: invalid frame size %dx%d", width, height)
	}
	a.bounds = image.Rect(0, 0, width, height)
	a.frames = a.frames[:0]
	return nil
}

// Frame adds a copy of img.
func (a *APNG) Frame(img *image.RGBA) error {
	if a.bounds.Empty() {
		return errors.New("media: Frame called before Begin")
	}
	dst := image.NewNRGBA(a.bounds)
	draw.Draw(dst, a.bounds, img, img.Rect.Min, draw.Src)

	delay := a.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	a.frames = append(a.frames, apng.Frame{
		Image:            dst,
		DelayNumerator:   uint16(min(delay, 0xffff)),
		DelayDenominator: 100,
		DisposeOp:        apng.DISPOSE_OP_NONE,
		BlendOp:          apng.BLEND_OP_SOURCE,
	})
	return nil
}

// Frames returns the number of frames recorded so far.
func (a *APNG) Frames() int {
	return len(a.frames)
}

// End encodes the recording.
func (a *APNG) End() error {
	defer func() {
		a.bounds = image.Rectangle{}
		a.frames = nil
	}()
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	anim := apng.APNG{Frames: a.frames, LoopCount: a.LoopCount}
	if err := apng.Encode(a.w, anim); err != nil {
		return fmt.Errorf("media: encoding apng: %w", err)
	}
	return nil
}
