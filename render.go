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

package pathsprite

import (
	"image"
	"image/color"

	"seehuhn.de/go/pathsprite/cutter"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/paint"
	"seehuhn.de/go/pathsprite/style"
)

// Snapshot is the state needed to draw a static canvas.
type Snapshot struct {
	Width, Height int
	Background    color.Color
	Image         image.Image
	Mode          Mode
	Style         style.Config
	Path          []geom.Point
	Selection     []geom.Point
	Cutout        *cutter.Cutout
	Phase         float64 // dash offset of the path being drawn
}

// Render draws the canvas for a snapshot.  The result depends only on
// the snapshot.  Out-of-range style values are clamped, as by
// [style.Config.Normalize].
//
// The base image is always drawn first.  In selection mode the loop
// being drawn is shown.  In animation mode the path is shown; if there
// is no path yet but a cut-out exists, the cut-out is shown at rest with
// its outline and a crosshair at its centre.
func Render(snap Snapshot) *image.RGBA {
	snap.Style = snap.Style.Normalize()

	c := paint.NewCanvas(snap.Width, snap.Height)
	c.Background = snap.Background
	c.DrawBase(snap.Image, snap.Style.Zoom)

	switch snap.Mode {
	case Selecting:
		if len(snap.Selection) > 0 {
			c.StrokeSelection(snap.Selection, snap.Style, snap.Phase)
		}
	case Animating:
		switch {
		case len(snap.Path) > 0:
			c.StrokeStyledPath(snap.Path, snap.Style, snap.Phase)
		case snap.Cutout != nil:
			cut := snap.Cutout
			c.DrawCentered(cut.Image, cut.Center)
			c.StrokeOutline(cut.Bounds.Outline, cut.Center, snap.Style)
			c.Crosshair(cut.Center, snap.Style)
		}
	}
	return c.Img
}
