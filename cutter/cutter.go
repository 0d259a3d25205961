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

// Package cutter extracts the part of an image enclosed by a freehand
// selection loop.
package cutter

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/raster"
)

// MinPoints is the smallest selection which encloses an area.
const MinPoints = 3

// Bounds describes the selection in the cut-out's own coordinates.
type Bounds struct {
	// Outline is the closed selection loop, moved so that its bounding
	// box starts at (0, 0).
	Outline []geom.Point

	Width, Height float64
}

// Cutout is the result of a cut.  The three parts always come from the
// same selection.
type Cutout struct {
	// Image holds the selected pixels.  Pixels outside the loop are
	// transparent.  Pixel (0, 0) corresponds to the integer point at or
	// above and left of the selection's bounding box.
	Image *image.RGBA

	Bounds Bounds

	// Center is the midpoint of the selection's bounding box, in canvas
	// coordinates.
	Center geom.Point
}

// Cut copies the part of src inside the closed loop through selection.
// It reports false, and does nothing, if the selection has fewer than
// MinPoints points.  Neither src nor selection is modified.
func Cut(src image.Image, selection []geom.Point) (*Cutout, bool) {
	if len(selection) < MinPoints {
		return nil, false
	}

	box := geom.BoundingBox(selection)
	outline := geom.ClosePolygon(geom.Translate(selection, -box.MinX, -box.MinY))

	// The raster covers whole pixels.  For integer selections its size
	// equals the bounding box exactly.
	x0 := int(math.Floor(box.MinX))
	y0 := int(math.Floor(box.MinY))
	w := max(int(math.Ceil(box.MaxX()))-x0, 1)
	h := max(int(math.Ceil(box.MaxY()))-y0, 1)

	// The clip mask is filled in raster coordinates, where the selection
	// is shifted by (-x0, -y0).
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	local := geom.Translate(selection, -float64(x0), -float64(y0))
	r.FillNonZero(raster.Polygon(local), raster.MaskAlpha(mask))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(img, img.Rect, src, image.Pt(x0, y0), mask, image.Point{}, draw.Src)

	return &Cutout{
		Image:  img,
		Bounds: Bounds{Outline: outline, Width: box.Width, Height: box.Height},
		Center: box.Center(),
	}, true
}

// Size returns the dimensions of the cut-out image.
func (c *Cutout) Size() (w, h int) {
	return c.Image.Rect.Dx(), c.Image.Rect.Dy()
}
